package studykit

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// Generator resolves one generation request to a tagged result. Satisfied by
// *provider.Chain.
type Generator interface {
	Generate(ctx context.Context, req provider.Request) provider.Result
}

// Builder produces study kit sections through a provider chain.
type Builder struct {
	chain Generator
}

// NewBuilder creates a Builder on top of the given chain.
func NewBuilder(chain Generator) *Builder {
	return &Builder{chain: chain}
}

// GenerateSection produces one section. It cannot fail: the chain resolves
// every request to some result, static fallback included.
func (b *Builder) GenerateSection(ctx context.Context, shape types.Shape, topic, text string) types.Section {
	if topic == "" {
		topic = ExtractTopic(text)
	}

	req := provider.Request{
		Shape:  shape,
		Topic:  topic,
		Prompt: BuildPrompt(shape, topic, text),
	}
	result := b.chain.Generate(ctx, req)

	return types.Section{
		Shape:    shape,
		Provider: string(result.Provider),
		Fallback: result.Fallback,
		Content:  Canonicalize(shape, result.Text),
	}
}

// BuildKit generates a complete study kit. The summary runs first; the
// remaining sections are independent requests and run concurrently. Each
// section is a separate pass through the chain, so per-request provider
// ordering is unaffected.
func (b *Builder) BuildKit(ctx context.Context, topic, text string) *types.StudyKit {
	if topic == "" {
		topic = ExtractTopic(text)
	}

	kit := &types.StudyKit{Topic: topic, CreatedAt: time.Now().UTC()}
	kit.Summary = b.GenerateSection(ctx, types.ShapeSummary, topic, text)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kit.Resources = b.GenerateSection(gCtx, types.ShapeResources, topic, text)
		return nil
	})
	g.Go(func() error {
		kit.StudyGuide = b.GenerateSection(gCtx, types.ShapeStudyGuide, topic, text)
		return nil
	})
	g.Go(func() error {
		kit.Quiz = b.GenerateSection(gCtx, types.ShapeQuiz, topic, text)
		return nil
	})
	// Sections never error; Wait only synchronizes.
	_ = g.Wait()

	return kit
}
