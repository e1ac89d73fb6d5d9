package schemas

import (
	_ "embed"

	"github.com/ratneshsingh30/study-assistant/internal/types"
)

//go:embed resources.schema.json
var resourcesSchema []byte

//go:embed study_guide.schema.json
var studyGuideSchema []byte

//go:embed quiz.schema.json
var quizSchema []byte

// schemaFor returns the embedded schema for a structured shape.
func schemaFor(shape types.Shape) ([]byte, bool) {
	switch shape {
	case types.ShapeResources:
		return resourcesSchema, true
	case types.ShapeStudyGuide:
		return studyGuideSchema, true
	case types.ShapeQuiz:
		return quizSchema, true
	default:
		return nil, false
	}
}
