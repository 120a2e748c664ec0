package ports

import (
	"context"

	"github.com/deckgen/deckgen/internal/domain/entities"
)

// RenderResult describes one rendered artifact.
type RenderResult struct {
	Format     string `json:"format"`
	OutputPath string `json:"output_path"`
	FileSize   int64  `json:"file_size"`
	SlideCount int    `json:"slide_count"`
}

// DeckRenderer renders a structured deck into one concrete artifact (PPTX
// file, HTML replica). All registered renderers receive the identical slide
// sequence and lay it out independently.
type DeckRenderer interface {
	// Render writes the deck to outPath: a cover slide, the content
	// slides, and a conclusion slide.
	Render(ctx context.Context, spec *entities.Spec, slides []entities.SlideContent, outPath string) (*RenderResult, error)

	// Format returns the artifact format identifier ("pptx", "html").
	Format() string
}
