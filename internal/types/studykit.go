package types

import (
	"time"

	"github.com/google/uuid"
)

// Resource is one recommended study resource.
type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ResourceList is the structured output of the resources shape.
type ResourceList struct {
	Resources []Resource `json:"resources"`
}

// KeyTerm pairs a term with its definition.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Flashcard is a question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StudyGuide is the structured output of the study guide shape.
type StudyGuide struct {
	KeyTerms          []KeyTerm   `json:"key_terms"`
	ImportantConcepts []string    `json:"important_concepts"`
	Flashcards        []Flashcard `json:"flashcards"`
}

// QuizQuestion is one multiple-choice question with four options keyed A-D.
type QuizQuestion struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// Quiz is the structured output of the quiz shape.
type Quiz struct {
	Questions []QuizQuestion `json:"quiz"`
}

// Section is one generated piece of a study kit, tagged with the provider
// that produced it.
type Section struct {
	Shape    Shape  `json:"shape"`
	Provider string `json:"provider"`
	Fallback bool   `json:"fallback"`
	Content  string `json:"content"`
}

// StudyKit is the complete output of a kit generation run.
type StudyKit struct {
	ID         uuid.UUID `json:"id,omitempty"`
	Topic      string    `json:"topic"`
	Summary    Section   `json:"summary"`
	Resources  Section   `json:"resources"`
	StudyGuide Section   `json:"study_guide"`
	Quiz       Section   `json:"quiz"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Sections returns the kit sections in generation order.
func (k *StudyKit) Sections() []Section {
	return []Section{k.Summary, k.Resources, k.StudyGuide, k.Quiz}
}
