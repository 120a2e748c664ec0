package services

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
)

// Outlining limits. Every slide groups at least MinSentencesPerSlide
// sentences and carries at most MaxBulletsPerSlide bullets.
const (
	MinSentencesPerSlide = 3
	MaxBulletsPerSlide   = 6
	TitleWords           = 5
	maxValidBulletLength = 150
)

// ErrInvalidSlideCount is returned when a deck has no room for content
// slides between the cover and the conclusion.
var ErrInvalidSlideCount = errors.New("slides count must be at least 3")

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// OutlineService structures raw text into ordered slide content. It is a
// deterministic splitter standing in for a real summarizer; swap the
// pipeline port implementation to plug one in.
type OutlineService struct {
	localizer ports.Localizer
}

// NewOutlineService creates an outline service emitting localized labels
// through the given localizer.
func NewOutlineService(localizer ports.Localizer) *OutlineService {
	return &OutlineService{localizer: localizer}
}

// SplitIntoSentences splits text on runs of terminal punctuation, trimming
// whitespace and dropping empty results. Text without any terminal
// punctuation comes back as a single sentence.
func (s *OutlineService) SplitIntoSentences(text string) []string {
	parts := sentenceTerminators.Split(text, -1)

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	return sentences
}

// SummarizeAndOutline distributes the text's sentences across at most
// slidesCount-2 content slides, in source order. Sparse input produces
// fewer slides; generation stops at the first empty window rather than
// padding. targetWords is threaded through for future summarizers and is
// not used by the splitting logic.
func (s *OutlineService) SummarizeAndOutline(text string, slidesCount, targetWords int) ([]entities.SlideContent, error) {
	contentSlides := slidesCount - 2
	if contentSlides < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlideCount, slidesCount)
	}

	sentences := s.SplitIntoSentences(text)

	perSlide := len(sentences) / contentSlides
	if perSlide < MinSentencesPerSlide {
		perSlide = MinSentencesPerSlide
	}

	slides := make([]entities.SlideContent, 0, contentSlides)
	for i := 0; i < contentSlides; i++ {
		start := i * perSlide
		end := start + perSlide
		if start >= len(sentences) {
			break
		}
		if end > len(sentences) {
			end = len(sentences)
		}

		window := sentences[start:end]
		slides = append(slides, entities.SlideContent{
			Title:   s.slideTitle(i+1, window),
			Bullets: s.slideBullets(window),
		})
	}

	return slides, nil
}

// slideTitle derives a slide title from the first window sentence: its
// first TitleWords words, with "..." appended when the sentence is longer.
// An empty window falls back to a localized "Section N" label.
func (s *OutlineService) slideTitle(sectionNum int, window []string) string {
	if len(window) == 0 {
		return fmt.Sprintf("%s %d", s.localizer.Get("section"), sectionNum)
	}

	words := strings.Fields(window[0])
	if len(words) <= TitleWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:TitleWords], " ") + "..."
}

// slideBullets turns up to MaxBulletsPerSlide window sentences into
// length-capped bullets.
func (s *OutlineService) slideBullets(window []string) []string {
	count := len(window)
	if count > MaxBulletsPerSlide {
		count = MaxBulletsPerSlide
	}

	bullets := make([]string, 0, count)
	for _, sentence := range window[:count] {
		bullets = append(bullets, entities.TruncateBullet(sentence))
	}

	return bullets
}

// ExtractKeyIdeas returns up to count leading sentences verbatim. A
// non-positive count yields no ideas.
func (s *OutlineService) ExtractKeyIdeas(text string, count int) []string {
	if count < 0 {
		count = 0
	}

	sentences := s.SplitIntoSentences(text)
	if count < len(sentences) {
		sentences = sentences[:count]
	}
	return sentences
}

// ValidateContent checks slides against the spec's length rules and image
// references. The check is advisory and never mutates its input; warnings
// never block generation.
func (s *OutlineService) ValidateContent(slides []entities.SlideContent, spec *entities.Spec) (bool, []string) {
	maxBullets := spec.LengthTarget.BulletsPerSlideMax
	if maxBullets <= 0 {
		maxBullets = MaxBulletsPerSlide
	}

	var warnings []string
	for i, slide := range slides {
		if len(slide.Bullets) > maxBullets {
			warnings = append(warnings, fmt.Sprintf("slide %d has %d bullets (max: %d)", i+1, len(slide.Bullets), maxBullets))
		}

		for j, bullet := range slide.Bullets {
			// Counted in runes to match TruncateBullet; byte length would
			// spuriously flag accented Spanish text.
			if length := utf8.RuneCountInString(bullet); length > maxValidBulletLength {
				warnings = append(warnings, fmt.Sprintf("slide %d, bullet %d is too long (%d chars)", i+1, j+1, length))
			}
		}

		if slide.HasImage() {
			if _, err := os.Stat(slide.ImagePath); err != nil {
				warnings = append(warnings, fmt.Sprintf("slide %d: %s: %s", i+1, s.localizer.Get("file_not_found"), slide.ImagePath))
			}
		}
	}

	return len(warnings) == 0, warnings
}

// Ensure OutlineService implements ports.ContentPipeline.
var _ ports.ContentPipeline = (*OutlineService)(nil)
