// Package types provides type definitions for structured data used throughout the study assistant.
package types

import "fmt"

// Shape identifies the kind of study material a generation request produces.
type Shape string

// Shape constants define the supported study material kinds.
const (
	// ShapeSummary is a markdown summary of key concepts.
	ShapeSummary Shape = "summary"
	// ShapeResources is a list of recommended study resources.
	ShapeResources Shape = "resources"
	// ShapeStudyGuide is key terms, important concepts and flashcards.
	ShapeStudyGuide Shape = "study_guide"
	// ShapeQuiz is a set of multiple-choice questions.
	ShapeQuiz Shape = "quiz"
	// ShapeNotes is detailed topic notes with examples.
	ShapeNotes Shape = "notes"
	// ShapeInsights is personalized learning insights.
	ShapeInsights Shape = "insights"
)

// AllShapes lists every supported shape in kit generation order.
var AllShapes = []Shape{ShapeSummary, ShapeResources, ShapeStudyGuide, ShapeQuiz, ShapeNotes, ShapeInsights}

// ParseShape converts a string into a Shape, rejecting unknown values.
func ParseShape(s string) (Shape, error) {
	for _, shape := range AllShapes {
		if string(shape) == s {
			return shape, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q", s)
}

// Structured reports whether the shape's output is JSON that must satisfy a schema,
// as opposed to free-form markdown.
func (s Shape) Structured() bool {
	switch s {
	case ShapeResources, ShapeStudyGuide, ShapeQuiz:
		return true
	default:
		return false
	}
}
