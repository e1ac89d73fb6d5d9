// Package huggingface adapts the Hugging Face Inference API as the chain's
// secondary backend. There is no official Go SDK, so the client is a plain
// net/http implementation.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
)

// DefaultBaseURL is the hosted inference endpoint prefix.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

// DefaultModels is the ordered candidate list. The strongest instruction
// model comes first; the rest are tried in fixed order when it is
// unavailable or overloaded.
var DefaultModels = []string{
	"meta-llama/Meta-Llama-4-Maverick",
	"google/flan-t5-xxl",
	"facebook/bart-large-cnn",
	"google/flan-ul2",
	"microsoft/DialoGPT-large",
	"EleutherAI/gpt-neo-2.7B",
}

const (
	requestTimeout     = 30 * time.Second
	maxRetriesPerModel = 3
)

// Parameters is the fixed generation parameter block sent with every
// inference request.
type Parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

// InferenceRequest is the wire payload for a text generation call.
type InferenceRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// BuildPayload shapes the outgoing request body for a prompt. It is pure and
// never fails: the parameter block is the same for every prompt, up to 1024
// newly generated tokens with sampling enabled and the prompt not echoed back.
func BuildPayload(prompt string) InferenceRequest {
	return InferenceRequest{
		Inputs: prompt,
		Parameters: Parameters{
			MaxNewTokens:   1024,
			Temperature:    0.7,
			TopP:           0.9,
			DoSample:       true,
			ReturnFullText: false,
		},
	}
}

// Config holds configuration for the Hugging Face adapter.
type Config struct {
	APIKey  string
	BaseURL string   // defaults to DefaultBaseURL
	Models  []string // defaults to DefaultModels
}

// Client implements provider.Client for the Hugging Face Inference API.
type Client struct {
	apiKey  string
	baseURL string
	models  []string
	http    *http.Client
}

// New creates a Hugging Face adapter. A missing API key is allowed; Generate
// then reports ErrCredentialMissing and the chain moves on.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	models := cfg.Models
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		models:  models,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Name returns the backend identifier.
func (c *Client) Name() provider.ID { return provider.IDHuggingFace }

// Generate tries each configured model in order until one returns usable
// text. Rate-limited calls are retried with exponential backoff before the
// next model is tried.
func (c *Client) Generate(ctx context.Context, req provider.Request) (string, error) {
	if c.apiKey == "" {
		return "", provider.ErrCredentialMissing
	}

	body, err := json.Marshal(BuildPayload(req.Prompt))
	if err != nil {
		// Marshaling a plain struct of strings and numbers cannot fail.
		return "", &provider.TransportError{Provider: provider.IDHuggingFace, Err: err}
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.callModel(ctx, model, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

// callModel posts the payload to one model endpoint, retrying on HTTP 429.
func (c *Client) callModel(ctx context.Context, model string, body []byte) (string, error) {
	url := c.baseURL + "/" + model

	var lastErr error
	for attempt := 0; attempt < maxRetriesPerModel; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return "", &provider.TransportError{Provider: provider.IDHuggingFace, Err: err}
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.http.Do(httpReq)
		if err != nil {
			return "", &provider.TransportError{Provider: provider.IDHuggingFace, Err: err}
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return "", &provider.TransportError{Provider: provider.IDHuggingFace, Err: readErr}
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return parseResponse(respBody)
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &provider.TransportError{
				Provider: provider.IDHuggingFace,
				Status:   resp.StatusCode,
				Err:      fmt.Errorf("model %s rate limited", model),
			}
			wait := time.Duration(1<<attempt) * time.Second
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", &provider.TransportError{Provider: provider.IDHuggingFace, Err: ctx.Err()}
			}
		default:
			return "", &provider.TransportError{
				Provider: provider.IDHuggingFace,
				Status:   resp.StatusCode,
				Err:      fmt.Errorf("model %s returned %s", model, resp.Status),
			}
		}
	}
	return "", lastErr
}

// parseResponse extracts generated text. The inference API answers either
// with a list of objects or a single object carrying generated_text.
func parseResponse(body []byte) (string, error) {
	var list []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) > 0 && list[0].GeneratedText != "" {
			return list[0].GeneratedText, nil
		}
		return "", &provider.MalformedResponseError{Provider: provider.IDHuggingFace, Reason: "empty generated_text in list response"}
	}

	var single struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}

	return "", &provider.MalformedResponseError{Provider: provider.IDHuggingFace, Reason: "unrecognized response shape"}
}
