// Package static provides the terminal canned responses used when no AI
// backend can service a request. Responses are deterministic per shape so a
// study kit is never left without content.
package static

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// Responder implements provider.Responder with fixed per-shape content.
type Responder struct{}

// New returns the canned responder.
func New() *Responder { return &Responder{} }

// Respond returns the canned response for the request's shape. It always
// succeeds; structured shapes are returned as JSON matching their schema.
func (r *Responder) Respond(req provider.Request) string {
	topic := req.Topic
	if topic == "" {
		topic = "this topic"
	}

	switch req.Shape {
	case types.ShapeResources:
		return mustJSON(resourceCatalog(topic))
	case types.ShapeStudyGuide:
		return mustJSON(studyGuide(topic))
	case types.ShapeQuiz:
		return mustJSON(quiz(topic))
	case types.ShapeNotes:
		return notes(topic)
	case types.ShapeInsights:
		return insights(topic)
	default:
		return summary(topic)
	}
}

func summary(topic string) string {
	return fmt.Sprintf(`## Key Concepts: %s

AI-generated content is currently unavailable, so this summary is a starting framework rather than an analysis of your material.

- Identify the central definitions in your material and restate each in your own words.
- Group related ideas under headings and note how they depend on each other.
- Mark terms that appear repeatedly in **bold**; they are usually the load-bearing vocabulary.
- For every concept, write down at least one concrete example from the material.
- Note any diagrams or figures referenced; redrawing them from memory is an effective check.`, topic)
}

// resourceCatalog returns search links into established learning platforms.
// Query construction mirrors each platform's search URL format.
func resourceCatalog(topic string) types.ResourceList {
	q := strings.ReplaceAll(topic, " ", "+")
	return types.ResourceList{Resources: []types.Resource{
		{
			Title:       "Khan Academy: " + topic,
			Type:        "Learning Platform",
			Description: fmt.Sprintf("Free video lessons and practice exercises on %s with a personalized learning dashboard.", topic),
			URL:         "https://www.khanacademy.org/search?page_search_query=" + q,
		},
		{
			Title:       "Coursera Courses on " + topic,
			Type:        "Online Courses",
			Description: fmt.Sprintf("University-level courses on %s from top institutions, many with free auditing options.", topic),
			URL:         "https://www.coursera.org/search?query=" + q,
		},
		{
			Title:       topic + " on MIT OpenCourseWare",
			Type:        "Academic Resource",
			Description: fmt.Sprintf("Free lecture notes, videos and assignments from MIT courses related to %s.", topic),
			URL:         "https://ocw.mit.edu/search/?q=" + q,
		},
	}}
}

func studyGuide(topic string) types.StudyGuide {
	return types.StudyGuide{
		KeyTerms: []types.KeyTerm{
			{Term: topic, Definition: fmt.Sprintf("The central subject of this study kit. Review your source material for the precise definition of %s.", topic)},
			{Term: "Key concept", Definition: "An idea the rest of the material builds on; usually introduced early and referenced throughout."},
		},
		ImportantConcepts: []string{
			fmt.Sprintf("Work through your material on %s section by section, summarizing each in one sentence before moving on.", topic),
			"Definitions that appear more than once are usually examinable; collect them in one place.",
		},
		Flashcards: []types.Flashcard{
			{Question: fmt.Sprintf("What is the main idea of %s?", topic), Answer: "State the central claim of your material in one sentence, then list the evidence it rests on."},
			{Question: "Which terms in the material can you not yet define without looking?", Answer: "Those terms are your highest-priority flashcards; write a definition for each from the source text."},
		},
	}
}

func quiz(topic string) types.Quiz {
	return types.Quiz{Questions: []types.QuizQuestion{
		{
			Question: fmt.Sprintf("Which study strategy is most effective when first learning %s?", topic),
			Options: map[string]string{
				"A": "Active recall: closing the material and writing down what you remember",
				"B": "Rereading the material repeatedly without pausing",
				"C": "Highlighting every sentence",
				"D": "Skipping directly to practice exams",
			},
			CorrectAnswer: "A",
			Explanation:   "Retrieval practice strengthens memory far more than passive rereading or highlighting.",
		},
		{
			Question: "What should you do with a concept you answered incorrectly?",
			Options: map[string]string{
				"A": "Ignore it and move on",
				"B": "Return to the source material, restate the concept, and retest it later",
				"C": "Memorize the answer letter",
				"D": "Remove it from your notes",
			},
			CorrectAnswer: "B",
			Explanation:   "Spaced re-study of missed items closes the gap between recognition and recall.",
		},
	}}
}

func notes(topic string) string {
	return fmt.Sprintf(`## Study Notes: %s

AI-generated notes are currently unavailable. Use this structure with your source material:

1. **Definition**: write the precise definition of each major idea.
2. **Key points**: list 3-5 claims the material makes about it.
3. **Example**: record at least one worked example per idea.
4. **Connections**: note where each idea is used later in the material.`, topic)
}

func insights(topic string) string {
	return fmt.Sprintf(`## Learning Insights

Personalized insights are currently unavailable. General guidance for %s:

- **Career relevance**: look up role descriptions that mention this subject to see how it is applied in practice.
- **Skill development**: identify the prerequisite skills your material assumes and close any gaps first.
- **Learning path**: alternate between studying the material and applying it in a small project.
- **Project ideas**: build the smallest possible working example that uses the core concept end to end.`, topic)
}

// mustJSON marshals canned structured content. The inputs are fixed structs,
// so marshaling cannot fail.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("static content marshal: %v", err))
	}
	return string(b)
}
