// Package studykit turns source material into study kit sections by building
// per-shape prompts, running them through the provider chain and validating
// what comes back.
package studykit

import (
	"strconv"

	"github.com/ratneshsingh30/study-assistant/internal/prompts"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

const promptFile = "studykit.json"

// Defaults for section sizing, matching the prompts' expectations.
const (
	DefaultMaxBullets   = 7
	DefaultMaxResources = 3
	DefaultNumQuestions = 5
	DefaultMaxSections  = 3

	// maxInputRunes caps the source text included in a prompt.
	maxInputRunes = 10000
)

// BuildPrompt renders the prompt for a shape. It is total: every known shape
// has an embedded template, and unknown shapes fall back to the summary
// template rather than failing.
func BuildPrompt(shape types.Shape, topic, text string) string {
	template, err := prompts.Get(promptFile, string(shape))
	if err != nil {
		template = prompts.MustGet(promptFile, string(types.ShapeSummary))
	}

	return prompts.Format(template, map[string]string{
		"Text":         Truncate(text),
		"Topic":        topic,
		"MaxBullets":   strconv.Itoa(DefaultMaxBullets),
		"MaxResources": strconv.Itoa(DefaultMaxResources),
		"NumQuestions": strconv.Itoa(DefaultNumQuestions),
		"MaxSections":  strconv.Itoa(DefaultMaxSections),
	})
}

// Truncate caps source text at the prompt input limit, marking the cut.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxInputRunes {
		return text
	}
	return string(runes[:maxInputRunes]) + "..."
}
