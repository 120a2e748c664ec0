package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
)

// Logger is the minimal leveled logger the generator reports progress to.
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

// GenerationResult reports where the generated artifacts were written.
type GenerationResult struct {
	ID       string                  `json:"id"`
	Paths    map[string]string       `json:"paths"`
	Renders  []ports.RenderResult    `json:"renders"`
	Slides   []entities.SlideContent `json:"slides"`
	Warnings []string                `json:"warnings,omitempty"`
}

// GeneratorService orchestrates the full generation flow: content
// acquisition, outlining, image attachment, and rendering.
type GeneratorService struct {
	pipeline    ports.ContentPipeline
	transcriber ports.Transcriber
	expander    ports.Expander
	renderers   []ports.DeckRenderer
	localizer   ports.Localizer
	logger      Logger
}

// NewGeneratorService wires the generator with its collaborators. The
// renderer list determines which artifacts a run produces.
func NewGeneratorService(
	pipeline ports.ContentPipeline,
	transcriber ports.Transcriber,
	expander ports.Expander,
	renderers []ports.DeckRenderer,
	localizer ports.Localizer,
	logger Logger,
) *GeneratorService {
	return &GeneratorService{
		pipeline:    pipeline,
		transcriber: transcriber,
		expander:    expander,
		renderers:   renderers,
		localizer:   localizer,
		logger:      logger,
	}
}

// Generate runs the complete flow for a validated spec and writes one
// artifact per registered renderer into the spec's output directory.
func (g *GeneratorService) Generate(ctx context.Context, spec *entities.Spec) (*GenerationResult, error) {
	if spec == nil {
		return nil, errors.New("spec cannot be nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", g.localizer.Get("invalid_spec"), err)
	}

	text, err := g.acquireText(ctx, spec)
	if err != nil {
		return nil, err
	}

	g.logger.Info("%s...", g.localizer.Get("summarizing"))
	g.logger.Info("%s...", g.localizer.Get("structuring"))

	slides, err := g.pipeline.SummarizeAndOutline(text, spec.SlidesCount, spec.LengthTarget.SummaryWords)
	if err != nil {
		return nil, fmt.Errorf("outlining content: %w", err)
	}

	attachImages(slides, spec.Input.Images)

	g.logger.Info("%s...", g.localizer.Get("validating"))
	ok, warnings := g.pipeline.ValidateContent(slides, spec)
	if !ok {
		for _, w := range warnings {
			g.logger.Warn("%s", w)
		}
	}

	if err := os.MkdirAll(spec.OutputDir, 0750); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", spec.OutputDir, err)
	}

	result := &GenerationResult{
		ID:       uuid.New().String(),
		Paths:    make(map[string]string, len(g.renderers)),
		Slides:   slides,
		Warnings: warnings,
	}

	for _, renderer := range g.renderers {
		outPath := filepath.Join(spec.OutputDir, "presentation."+renderer.Format())

		render, err := renderer.Render(ctx, spec, slides, outPath)
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", g.localizer.Get("generation_failed"), renderer.Format(), err)
		}

		g.logger.Info("%s: %s", g.localizer.Get("file_saved"), outPath)
		result.Paths[renderer.Format()] = outPath
		result.Renders = append(result.Renders, *render)
	}

	return result, nil
}

// Check validates the spec and runs a dry outline pass, returning the
// advisory content warnings without writing any artifact.
func (g *GeneratorService) Check(ctx context.Context, spec *entities.Spec) ([]string, error) {
	if spec == nil {
		return nil, errors.New("spec cannot be nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", g.localizer.Get("invalid_spec"), err)
	}

	text, err := g.acquireText(ctx, spec)
	if err != nil {
		return nil, err
	}

	slides, err := g.pipeline.SummarizeAndOutline(text, spec.SlidesCount, spec.LengthTarget.SummaryWords)
	if err != nil {
		return nil, fmt.Errorf("outlining content: %w", err)
	}
	attachImages(slides, spec.Input.Images)

	g.logger.Info("%s...", g.localizer.Get("validating"))
	ok, warnings := g.pipeline.ValidateContent(slides, spec)
	if !ok {
		for _, w := range warnings {
			g.logger.Warn("%s", w)
		}
	}

	return warnings, nil
}

// acquireText produces the source text for outlining: audio transcription
// when audio inputs exist, otherwise the description, optionally expanded
// toward the summary word target.
func (g *GeneratorService) acquireText(ctx context.Context, spec *entities.Spec) (string, error) {
	if len(spec.Input.AudioPaths) > 0 {
		g.logger.Info("%s...", g.localizer.Get("transcribing"))

		text, err := g.transcriber.Transcribe(ctx, spec.Input.AudioPaths)
		if err != nil {
			return "", fmt.Errorf("%s: %w", g.localizer.Get("transcription_failed"), err)
		}
		return text, nil
	}

	text := spec.Input.Description
	if spec.EnableResearch {
		g.logger.Info("%s...", g.localizer.Get("researching"))

		expanded, err := g.expander.Expand(ctx, text, spec.LengthTarget.SummaryWords)
		if err != nil {
			return "", fmt.Errorf("expanding description: %w", err)
		}
		text = expanded
	}

	return text, nil
}

// attachImages assigns user images to content slides by position: the
// first image goes on the first content slide and so on. Extra images are
// ignored.
func attachImages(slides []entities.SlideContent, images []entities.ImageRef) {
	for i, img := range images {
		if i >= len(slides) {
			break
		}
		slides[i].ImagePath = img.Path
		slides[i].Alt = img.Alt
	}
}
