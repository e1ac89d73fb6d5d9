// Package openai adapts the OpenAI chat completions API as the chain's
// primary backend.
package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o"

// Config holds configuration for the OpenAI adapter.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // override for OpenAI-compatible endpoints and tests
}

// Client implements provider.Client for the OpenAI API.
type Client struct {
	client openai.Client
	model  string
	hasKey bool
}

// New creates an OpenAI adapter. A missing API key is allowed; Generate then
// reports ErrCredentialMissing and the chain moves on.
func New(cfg Config) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
		hasKey: cfg.APIKey != "",
	}
}

// Name returns the backend identifier.
func (c *Client) Name() provider.ID { return provider.IDOpenAI }

// Generate sends the prompt as a single user message. Structured shapes
// request the JSON object response format so the model returns parseable
// output.
func (c *Client) Generate(ctx context.Context, req provider.Request) (string, error) {
	if !c.hasKey {
		return "", provider.ErrCredentialMissing
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxTokens: openai.Int(maxTokens(req.Shape)),
	}
	if req.Shape.Structured() {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &provider.MalformedResponseError{Provider: provider.IDOpenAI, Reason: "no choices in response"}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &provider.MalformedResponseError{Provider: provider.IDOpenAI, Reason: "empty message content"}
	}
	return content, nil
}

// maxTokens returns the completion budget per shape: structured guides and
// quizzes get the larger budget, prose summaries the smaller one.
func maxTokens(shape types.Shape) int64 {
	switch shape {
	case types.ShapeStudyGuide, types.ShapeQuiz, types.ShapeInsights:
		return 2000
	default:
		return 1000
	}
}

func wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &provider.TransportError{Provider: provider.IDOpenAI, Status: apiErr.StatusCode, Err: err}
	}
	return &provider.TransportError{Provider: provider.IDOpenAI, Err: err}
}
