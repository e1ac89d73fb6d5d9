// Package provider implements the content generation fallback chain.
// A request is attempted against an ordered list of backends and always
// terminates in exactly one tagged result; when every eligible backend
// fails, the canned static responder supplies the result.
package provider

import (
	"context"

	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// ID identifies one backend in the chain.
type ID string

// Backend identifiers.
const (
	// IDOpenAI is the primary commercial provider.
	IDOpenAI ID = "openai"
	// IDHuggingFace is the secondary open-model provider.
	IDHuggingFace ID = "huggingface"
	// IDStatic tags results served from the canned fallback catalog.
	IDStatic ID = "static"
)

// Request is a single content generation request. It is consumed by exactly
// one pass through the chain.
type Request struct {
	Shape  types.Shape
	Topic  string
	Prompt string
}

// Result is the outcome of a chain pass. Exactly one backend's output is
// carried; Fallback is true only for static results.
type Result struct {
	Text     string
	Provider ID
	Fallback bool
}

// Client is a transport adapter for one backend. Generate returns the raw
// generated text or an error; it must never panic on ordinary transport
// failures.
type Client interface {
	Name() ID
	Generate(ctx context.Context, req Request) (string, error)
}

// Credentials holds the API keys read from the environment at startup.
// Absence of a key is an expected state, not an error; it only removes the
// corresponding backend from the attempt order.
type Credentials struct {
	OpenAIKey      string
	HuggingFaceKey string
}

// HasOpenAI reports whether the primary credential is present.
func (c Credentials) HasOpenAI() bool { return c.OpenAIKey != "" }

// HasHuggingFace reports whether the secondary credential is present.
func (c Credentials) HasHuggingFace() bool { return c.HuggingFaceKey != "" }

// SelectOrder returns the deterministic sequence of backends to attempt for
// the given credentials: the primary first when its key is present, the
// secondary after it (or first when only its key is present), and an empty
// sequence when neither key is set, in which case callers resolve directly
// to the static fallback.
func SelectOrder(creds Credentials) []ID {
	var order []ID
	if creds.HasOpenAI() {
		order = append(order, IDOpenAI)
	}
	if creds.HasHuggingFace() {
		order = append(order, IDHuggingFace)
	}
	return order
}
