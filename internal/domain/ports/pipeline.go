package ports

import "github.com/deckgen/deckgen/internal/domain/entities"

// ContentPipeline structures raw text into ordered slide content. It is the
// core of the generation flow; everything else is acquisition or rendering
// around it.
type ContentPipeline interface {
	// SplitIntoSentences splits text on terminal punctuation, preserving
	// source order and discarding empty results.
	SplitIntoSentences(text string) []string

	// SummarizeAndOutline distributes the text's sentences across at most
	// slidesCount-2 content slides.
	SummarizeAndOutline(text string, slidesCount, targetWords int) ([]entities.SlideContent, error)

	// ExtractKeyIdeas returns up to count leading sentences verbatim.
	ExtractKeyIdeas(text string, count int) []string

	// ValidateContent checks slides against the spec's length rules and
	// image references. Advisory: warnings, not errors.
	ValidateContent(slides []entities.SlideContent, spec *entities.Spec) (bool, []string)
}
