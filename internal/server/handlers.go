package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ratneshsingh30/study-assistant/internal/db"
	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/studykit"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// handleGenerate produces a single section of the requested shape.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	shape, err := types.ParseShape(req.Shape)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	topic := req.Topic
	if topic == "" {
		topic = studykit.ExtractTopic(req.Text)
	}

	section := s.builder.GenerateSection(r.Context(), shape, topic, req.Text)

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		Shape:    section.Shape,
		Topic:    topic,
		Provider: section.Provider,
		Fallback: section.Fallback,
		Content:  section.Content,
	})
}

// handleCreateKit builds a full study kit and, when a database is
// configured, persists it.
func (s *Server) handleCreateKit(w http.ResponseWriter, r *http.Request) {
	var req types.KitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	topic := req.Topic
	if topic == "" {
		topic = studykit.ExtractTopic(req.Text)
	}

	kit := s.builder.BuildKit(r.Context(), topic, req.Text)

	if s.store != nil {
		id, err := s.store.CreateKit(r.Context(), topic)
		if err != nil {
			log.Printf("Error persisting kit: %v", err)
		} else {
			kit.ID = id
			for _, section := range kit.Sections() {
				if err := s.store.SaveSection(r.Context(), id, section); err != nil {
					log.Printf("Error persisting section %s: %v", section.Shape, err)
				}
			}
			if err := s.store.CompleteKit(r.Context(), id); err != nil {
				log.Printf("Error completing kit %s: %v", id, err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, kit)
}

// handleListKits returns recent kits, newest first.
func (s *Server) handleListKits(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "history requires a configured database")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	kits, err := s.store.ListKits(r.Context(), limit)
	if err != nil {
		log.Printf("Error listing kits: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list kits")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"kits": kits})
}

// handleGetKit returns one kit with all of its sections.
func (s *Server) handleGetKit(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "history requires a configured database")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid kit id")
		return
	}

	record, sections, err := s.store.GetKit(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "kit not found")
			return
		}
		log.Printf("Error fetching kit %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch kit")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"kit":      record,
		"sections": sections,
	})
}

// handleProviders reports which credentials are present and the resulting
// selection order.
func (s *Server) handleProviders(w http.ResponseWriter, _ *http.Request) {
	order := make([]string, 0, len(s.order)+1)
	for _, id := range s.order {
		order = append(order, string(id))
	}
	order = append(order, string(provider.IDStatic))

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"openai_configured":      s.creds.HasOpenAI(),
		"huggingface_configured": s.creds.HasHuggingFace(),
		"order":                  order,
	})
}
