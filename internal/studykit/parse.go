package studykit

import (
	"encoding/json"
	"strings"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/schemas"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// CleanJSONBlock removes markdown code fences that models wrap around JSON.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Validate is the chain's per-attempt output check. Free-form shapes accept
// any non-empty text; structured shapes must parse as JSON and satisfy their
// schema. Failures are reported as malformed responses so the chain advances
// to the next candidate.
func Validate(req provider.Request, text string) error {
	if strings.TrimSpace(text) == "" {
		return &provider.MalformedResponseError{Provider: "", Reason: "empty output"}
	}
	if !req.Shape.Structured() {
		return nil
	}

	doc := CleanJSONBlock(text)
	if !json.Valid([]byte(doc)) {
		return &provider.MalformedResponseError{Provider: "", Reason: "output is not valid JSON"}
	}
	if err := schemas.Validate(req.Shape, []byte(doc)); err != nil {
		return err
	}
	return nil
}

// Canonicalize normalizes chain output for storage and API responses:
// structured shapes are stripped of code fences, free-form shapes are
// whitespace-trimmed.
func Canonicalize(shape types.Shape, text string) string {
	if shape.Structured() {
		return CleanJSONBlock(text)
	}
	return strings.TrimSpace(text)
}
