package studykit

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

func TestBuildPromptIncludesTextAndTopic(t *testing.T) {
	prompt := BuildPrompt(types.ShapeSummary, "Photosynthesis", "Plants convert light into energy.")

	assert.Contains(t, prompt, "Plants convert light into energy.")
	assert.NotContains(t, prompt, "{{.Text}}")
	assert.NotContains(t, prompt, "{{.MaxBullets}}")
}

func TestBuildPromptAllShapes(t *testing.T) {
	for _, shape := range types.AllShapes {
		prompt := BuildPrompt(shape, "topic", "some text")
		assert.NotEmpty(t, prompt, "shape %s", shape)
		assert.NotContains(t, prompt, "{{.", "shape %s left unexpanded placeholders", shape)
	}
}

func TestBuildPromptUnknownShapeFallsBack(t *testing.T) {
	prompt := BuildPrompt(types.Shape("bogus"), "topic", "some text")
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "some text")
}

func TestTruncate(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("a", maxInputRunes+100)
	got := Truncate(long)
	assert.Len(t, got, maxInputRunes+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  {\"a\":1}\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.in))
		})
	}
}

func TestValidateFreeFormShapes(t *testing.T) {
	req := provider.Request{Shape: types.ShapeSummary}

	assert.NoError(t, Validate(req, "## Summary\n- point one"))
	assert.Error(t, Validate(req, "   "))
}

func TestValidateStructuredShapes(t *testing.T) {
	req := provider.Request{Shape: types.ShapeQuiz}

	valid := `{"quiz":[{"question":"?","options":{"A":"1","B":"2","C":"3","D":"4"},"correct_answer":"A","explanation":"because"}]}`
	assert.NoError(t, Validate(req, valid))
	assert.NoError(t, Validate(req, "```json\n"+valid+"\n```"))

	assert.Error(t, Validate(req, "not json at all"))
	assert.Error(t, Validate(req, `{"quiz":[{"question":"?"}]}`))
}

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "explicit marker",
			text: "Topic: Linear Algebra\nMatrices are rectangular arrays.",
			want: "Linear Algebra",
		},
		{
			name: "first sentence keywords",
			text: "The French Revolution began in 1789 with the storming of the Bastille. It lasted a decade.",
			want: "French Revolution began 1789 storming",
		},
		{
			name: "short text",
			text: "Photosynthesis basics",
			want: "Photosynthesis basics",
		},
		{
			name: "uppercase marker",
			text: "TOPIC: Algebra\nMore material follows.",
			want: "Algebra",
		},
		{
			name: "marker after runes that grow when lowercased",
			text: strings.Repeat("Ⱥ", 10) + "topic: Algebra",
			want: "Algebra",
		},
		{
			name: "marker after runes that shrink when lowercased",
			text: strings.Repeat("İ", 10) + "topic: Algebra",
			want: "Algebra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTopic(tt.text))
		})
	}
}

type stubGenerator struct {
	mu       sync.Mutex
	requests []provider.Request
	result   func(req provider.Request) provider.Result
}

func (s *stubGenerator) Generate(_ context.Context, req provider.Request) provider.Result {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.result != nil {
		return s.result(req)
	}
	return provider.Result{Text: "generated " + string(req.Shape), Provider: provider.IDOpenAI}
}

func TestGenerateSection(t *testing.T) {
	stub := &stubGenerator{}
	builder := NewBuilder(stub)

	section := builder.GenerateSection(context.Background(), types.ShapeNotes, "", "Topic: Thermodynamics\nHeat flows from hot to cold.")

	assert.Equal(t, types.ShapeNotes, section.Shape)
	assert.Equal(t, string(provider.IDOpenAI), section.Provider)
	assert.False(t, section.Fallback)
	assert.Equal(t, "generated notes", section.Content)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "Thermodynamics", stub.requests[0].Topic)
}

func TestGenerateSectionStripsFences(t *testing.T) {
	stub := &stubGenerator{
		result: func(req provider.Request) provider.Result {
			return provider.Result{Text: "```json\n{\"resources\":[]}\n```", Provider: provider.IDHuggingFace}
		},
	}
	builder := NewBuilder(stub)

	section := builder.GenerateSection(context.Background(), types.ShapeResources, "topic", "text")

	assert.Equal(t, `{"resources":[]}`, section.Content)
}

func TestBuildKit(t *testing.T) {
	stub := &stubGenerator{
		result: func(req provider.Request) provider.Result {
			if req.Shape == types.ShapeQuiz {
				return provider.Result{Text: "canned quiz", Provider: provider.IDStatic, Fallback: true}
			}
			return provider.Result{Text: "generated " + string(req.Shape), Provider: provider.IDOpenAI}
		},
	}
	builder := NewBuilder(stub)

	kit := builder.BuildKit(context.Background(), "Thermodynamics", "Heat flows from hot to cold.")

	assert.Equal(t, "Thermodynamics", kit.Topic)
	assert.False(t, kit.CreatedAt.IsZero())
	assert.Equal(t, "generated summary", kit.Summary.Content)
	assert.Equal(t, "generated resources", kit.Resources.Content)
	assert.Equal(t, "generated study_guide", kit.StudyGuide.Content)
	assert.True(t, kit.Quiz.Fallback)
	assert.Equal(t, "canned quiz", kit.Quiz.Content)

	require.Len(t, stub.requests, 4)
	// Summary is always the first pass through the chain.
	assert.Equal(t, types.ShapeSummary, stub.requests[0].Shape)
}
