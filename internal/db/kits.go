package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// ErrNotFound is returned when a kit does not exist.
var ErrNotFound = errors.New("kit not found")

// KitRecord is one row of kit history.
type KitRecord struct {
	ID          uuid.UUID  `json:"id"`
	Topic       string     `json:"topic"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CreateKit creates a new kit record and returns its ID.
func (db *DB) CreateKit(ctx context.Context, topic string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO kits (topic, status) VALUES ($1, 'running') RETURNING id`,
		topic,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create kit: %w", err)
	}
	return id, nil
}

// SaveSection stores one generated section of a kit.
func (db *DB) SaveSection(ctx context.Context, kitID uuid.UUID, section types.Section) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO kit_sections (kit_id, shape, provider, fallback, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (kit_id, shape) DO UPDATE
		 SET provider = $3, fallback = $4, content = $5, created_at = NOW()`,
		kitID, string(section.Shape), section.Provider, section.Fallback, section.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to save section %s: %w", section.Shape, err)
	}
	return nil
}

// CompleteKit marks a kit as completed.
func (db *DB) CompleteKit(ctx context.Context, kitID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE kits SET status = 'completed', completed_at = NOW() WHERE id = $1`,
		kitID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete kit: %w", err)
	}
	return nil
}

// GetKit loads a kit record and its sections.
func (db *DB) GetKit(ctx context.Context, kitID uuid.UUID) (*KitRecord, []types.Section, error) {
	var rec KitRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, topic, status, created_at, completed_at FROM kits WHERE id = $1`,
		kitID,
	).Scan(&rec.ID, &rec.Topic, &rec.Status, &rec.CreatedAt, &rec.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get kit: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT shape, provider, fallback, content FROM kit_sections WHERE kit_id = $1 ORDER BY created_at`,
		kitID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []types.Section
	for rows.Next() {
		var s types.Section
		var shape string
		if err := rows.Scan(&shape, &s.Provider, &s.Fallback, &s.Content); err != nil {
			return nil, nil, fmt.Errorf("failed to scan section: %w", err)
		}
		s.Shape = types.Shape(shape)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read sections: %w", err)
	}

	return &rec, sections, nil
}

// ListKits returns kit records, newest first.
func (db *DB) ListKits(ctx context.Context, limit int) ([]KitRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, topic, status, created_at, completed_at
		 FROM kits ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list kits: %w", err)
	}
	defer rows.Close()

	var kits []KitRecord
	for rows.Next() {
		var rec KitRecord
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.Status, &rec.CreatedAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan kit: %w", err)
		}
		kits = append(kits, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read kits: %w", err)
	}

	return kits, nil
}
