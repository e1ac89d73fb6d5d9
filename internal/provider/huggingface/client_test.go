package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
)

func TestBuildPayload(t *testing.T) {
	payload := BuildPayload("Explain photosynthesis")

	assert.Equal(t, "Explain photosynthesis", payload.Inputs)
	assert.Equal(t, 1024, payload.Parameters.MaxNewTokens)
	assert.Equal(t, 0.7, payload.Parameters.Temperature)
	assert.Equal(t, 0.9, payload.Parameters.TopP)
	assert.True(t, payload.Parameters.DoSample)
	assert.False(t, payload.Parameters.ReturnFullText)

	// Same prompt always yields the same payload.
	assert.Equal(t, payload, BuildPayload("Explain photosynthesis"))
}

func TestBuildPayloadWireFormat(t *testing.T) {
	data, err := json.Marshal(BuildPayload("hi"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"inputs": "hi",
		"parameters": {
			"max_new_tokens": 1024,
			"temperature": 0.7,
			"top_p": 0.9,
			"do_sample": true,
			"return_full_text": false
		}
	}`, string(data))
}

func TestGenerateMissingKey(t *testing.T) {
	client := New(Config{})

	_, err := client.Generate(context.Background(), provider.Request{Prompt: "hi"})

	assert.ErrorIs(t, err, provider.ErrCredentialMissing)
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/model-a", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req InferenceRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "prompt text", req.Inputs)

		w.Write([]byte(`[{"generated_text": "the answer"}]`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "hf-token", BaseURL: srv.URL, Models: []string{"model-a"}})

	text, err := client.Generate(context.Background(), provider.Request{Prompt: "prompt text"})
	require.NoError(t, err)
	assert.Equal(t, "the answer", text)
}

func TestGenerateRetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"generated_text": "after retry"}]`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", BaseURL: srv.URL, Models: []string{"model-a"}})

	text, err := client.Generate(context.Background(), provider.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "after retry", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateTriesNextModelOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/model-a" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"generated_text": "from model-b"}]`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", BaseURL: srv.URL, Models: []string{"model-a", "model-b"}})

	text, err := client.Generate(context.Background(), provider.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "from model-b", text)
}

func TestGenerateAllModelsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", BaseURL: srv.URL, Models: []string{"model-a", "model-b"}})

	_, err := client.Generate(context.Background(), provider.Request{Prompt: "hi"})
	require.Error(t, err)

	var terr *provider.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
	assert.Equal(t, provider.IDHuggingFace, terr.Provider)
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "list form", body: `[{"generated_text": "hello"}]`, want: "hello"},
		{name: "object form", body: `{"generated_text": "hello"}`, want: "hello"},
		{name: "empty list", body: `[]`, wantErr: true},
		{name: "empty text", body: `[{"generated_text": ""}]`, wantErr: true},
		{name: "error object", body: `{"error": "model loading"}`, wantErr: true},
		{name: "garbage", body: `not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResponse([]byte(tt.body))
			if tt.wantErr {
				var merr *provider.MalformedResponseError
				require.True(t, errors.As(err, &merr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
