package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/internal/adapters/secondary/i18n"
	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/test/builders"
)

func newTestOutlineService() *OutlineService {
	return NewOutlineService(i18n.New("en"))
}

func TestOutlineService_SplitIntoSentences(t *testing.T) {
	s := newTestOutlineService()

	t.Run("splits on terminal punctuation runs", func(t *testing.T) {
		sentences := s.SplitIntoSentences("First. Second! Third? Fourth... Fifth")
		assert.Equal(t, []string{"First", "Second", "Third", "Fourth", "Fifth"}, sentences)
	})

	t.Run("preserves source order and trims whitespace", func(t *testing.T) {
		sentences := s.SplitIntoSentences("  one .  two .  three . ")
		assert.Equal(t, []string{"one", "two", "three"}, sentences)
	})

	t.Run("no terminal punctuation yields one sentence", func(t *testing.T) {
		sentences := s.SplitIntoSentences("just a fragment with no ending")
		assert.Equal(t, []string{"just a fragment with no ending"}, sentences)
	})

	t.Run("empty text yields no sentences", func(t *testing.T) {
		assert.Empty(t, s.SplitIntoSentences(""))
		assert.Empty(t, s.SplitIntoSentences("   .  ! ?  "))
	})

	t.Run("never returns empty or untrimmed entries", func(t *testing.T) {
		sentences := s.SplitIntoSentences("a.. b!! c?? .. !!")
		for _, sentence := range sentences {
			assert.NotEmpty(t, sentence)
			assert.Equal(t, strings.TrimSpace(sentence), sentence)
		}
	})
}

func TestOutlineService_SummarizeAndOutline(t *testing.T) {
	s := newTestOutlineService()

	t.Run("distributes sentences across content slides", func(t *testing.T) {
		slides, err := s.SummarizeAndOutline("A. B. C. D. E. F.", 5, 500)
		require.NoError(t, err)

		// Six sentences over three content slides gives three per
		// slide; the third window is empty so generation stops early.
		require.Len(t, slides, 2)
		assert.Equal(t, []string{"A", "B", "C"}, slides[0].Bullets)
		assert.Equal(t, []string{"D", "E", "F"}, slides[1].Bullets)
	})

	t.Run("empty text produces no slides", func(t *testing.T) {
		slides, err := s.SummarizeAndOutline("", 10, 500)
		require.NoError(t, err)
		assert.Empty(t, slides)
	})

	t.Run("result never exceeds the content slide budget", func(t *testing.T) {
		text := strings.Repeat("Sentence here. ", 100)
		slides, err := s.SummarizeAndOutline(text, 6, 500)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(slides), 4)
	})

	t.Run("title uses first five words with ellipsis", func(t *testing.T) {
		slides, err := s.SummarizeAndOutline("one two three four five six seven. b. c.", 3, 500)
		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.Equal(t, "one two three four five...", slides[0].Title)
	})

	t.Run("short first sentence becomes title without ellipsis", func(t *testing.T) {
		slides, err := s.SummarizeAndOutline("Quarterly results. More detail here. Final note.", 3, 500)
		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.Equal(t, "Quarterly results", slides[0].Title)
	})

	t.Run("caps bullets per slide at six", func(t *testing.T) {
		text := "a. b. c. d. e. f. g. h."
		slides, err := s.SummarizeAndOutline(text, 3, 500)
		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.Len(t, slides[0].Bullets, 6)
	})

	t.Run("truncates overlong bullets", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		slides, err := s.SummarizeAndOutline(long+". b. c.", 3, 500)
		require.NoError(t, err)
		require.Len(t, slides, 1)

		bullet := slides[0].Bullets[0]
		assert.Len(t, bullet, 120)
		assert.True(t, strings.HasSuffix(bullet, "..."))
	})

	t.Run("bullets at the limit are unchanged", func(t *testing.T) {
		exact := strings.Repeat("y", 120)
		slides, err := s.SummarizeAndOutline(exact+". b. c.", 3, 500)
		require.NoError(t, err)
		require.Len(t, slides, 1)
		assert.Equal(t, exact, slides[0].Bullets[0])
	})

	t.Run("sparse input groups at least three sentences", func(t *testing.T) {
		slides, err := s.SummarizeAndOutline("a. b. c. d.", 10, 500)
		require.NoError(t, err)

		// Eight content slides but only four sentences: one full
		// window of three plus the remainder.
		require.Len(t, slides, 2)
		assert.Equal(t, []string{"a", "b", "c"}, slides[0].Bullets)
		assert.Equal(t, []string{"d"}, slides[1].Bullets)
	})

	t.Run("image fields start unset", func(t *testing.T) {
		slides, err := s.SummarizeAndOutline("a. b. c.", 4, 500)
		require.NoError(t, err)
		for _, slide := range slides {
			assert.Empty(t, slide.ImagePath)
			assert.Empty(t, slide.Alt)
		}
	})

	t.Run("rejects decks without room for content", func(t *testing.T) {
		_, err := s.SummarizeAndOutline("a. b. c.", 2, 500)
		assert.ErrorIs(t, err, ErrInvalidSlideCount)

		_, err = s.SummarizeAndOutline("a. b. c.", 0, 500)
		assert.ErrorIs(t, err, ErrInvalidSlideCount)
	})
}

func TestOutlineService_ExtractKeyIdeas(t *testing.T) {
	s := newTestOutlineService()

	t.Run("returns a prefix of the sentences", func(t *testing.T) {
		ideas := s.ExtractKeyIdeas("a. b. c. d. e.", 3)
		assert.Equal(t, []string{"a", "b", "c"}, ideas)
	})

	t.Run("returns all sentences when count exceeds them", func(t *testing.T) {
		ideas := s.ExtractKeyIdeas("a. b.", 5)
		assert.Equal(t, []string{"a", "b"}, ideas)
	})

	t.Run("empty text yields no ideas", func(t *testing.T) {
		assert.Empty(t, s.ExtractKeyIdeas("", 5))
	})

	t.Run("non-positive count yields no ideas", func(t *testing.T) {
		assert.Empty(t, s.ExtractKeyIdeas("a. b. c.", 0))
		assert.Empty(t, s.ExtractKeyIdeas("a. b. c.", -3))
	})
}

func TestOutlineService_ValidateContent(t *testing.T) {
	s := newTestOutlineService()

	t.Run("valid slides produce no warnings", func(t *testing.T) {
		spec := builders.NewSpecBuilder().Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().Build(),
		}

		ok, warnings := s.ValidateContent(slides, spec)
		assert.True(t, ok)
		assert.Empty(t, warnings)
	})

	t.Run("flags slides over the bullet budget", func(t *testing.T) {
		spec := builders.NewSpecBuilder().WithBulletsPerSlideMax(6).Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				WithBullets("a", "b", "c", "d", "e", "f", "g").
				Build(),
		}

		ok, warnings := s.ValidateContent(slides, spec)
		assert.False(t, ok)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "7")
		assert.Contains(t, warnings[0], "6")
	})

	t.Run("flags overlong bullets", func(t *testing.T) {
		spec := builders.NewSpecBuilder().Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				WithBullets(strings.Repeat("z", 151)).
				Build(),
		}

		ok, warnings := s.ValidateContent(slides, spec)
		assert.False(t, ok)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "too long")
	})

	t.Run("measures bullet length in runes, not bytes", func(t *testing.T) {
		spec := builders.NewSpecBuilder().Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				// 140 characters but 280 bytes; must not be flagged.
				WithBullets(strings.Repeat("ñ", 140)).
				Build(),
		}

		ok, warnings := s.ValidateContent(slides, spec)
		assert.True(t, ok)
		assert.Empty(t, warnings)

		slides[0].Bullets = []string{strings.Repeat("ñ", 151)}
		ok, warnings = s.ValidateContent(slides, spec)
		assert.False(t, ok)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "151 chars")
	})

	t.Run("flags missing images", func(t *testing.T) {
		spec := builders.NewSpecBuilder().Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				WithImage("/nonexistent/image.png", "alt").
				Build(),
		}

		ok, warnings := s.ValidateContent(slides, spec)
		assert.False(t, ok)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "/nonexistent/image.png")
	})

	t.Run("accepts existing images", func(t *testing.T) {
		imagePath := filepath.Join(t.TempDir(), "chart.png")
		require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0600))

		spec := builders.NewSpecBuilder().Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().WithImage(imagePath, "chart").Build(),
		}

		ok, warnings := s.ValidateContent(slides, spec)
		assert.True(t, ok)
		assert.Empty(t, warnings)
	})

	t.Run("never mutates its input", func(t *testing.T) {
		spec := builders.NewSpecBuilder().Build()
		slide := builders.NewSlideBuilder().WithBullets("a", "b").Build()
		slides := []entities.SlideContent{slide}

		_, _ = s.ValidateContent(slides, spec)
		assert.Equal(t, []string{"a", "b"}, slides[0].Bullets)
	})
}
