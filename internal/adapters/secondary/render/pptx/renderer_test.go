package pptx

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
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

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(msg, args...))
}

// pngBytes is a tiny valid PNG header, enough for embedding tests.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func renderDeck(t *testing.T, language string, spec *entities.Spec, slides []entities.SlideContent) (string, *zip.ReadCloser) {
	t.Helper()

	renderer := NewRenderer(i18n.New(language), &recordingLogger{})
	outPath := filepath.Join(t.TempDir(), "presentation.pptx")

	result, err := renderer.Render(context.Background(), spec, slides, outPath)
	require.NoError(t, err)
	assert.Equal(t, "pptx", result.Format)
	assert.Equal(t, len(slides)+2, result.SlideCount)
	assert.Positive(t, result.FileSize)

	zr, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = zr.Close() })

	return outPath, zr
}

func partNames(zr *zip.ReadCloser) map[string]bool {
	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func readPart(t *testing.T, zr *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestRenderer_Render(t *testing.T) {
	t.Run("produces a complete package", func(t *testing.T) {
		spec := builders.NewSpecBuilder().
			WithSlidesCount(4).
			WithDescription("Launch plan.").
			Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().WithTitle("Section One").WithBullets("First point").Build(),
			builders.NewSlideBuilder().WithTitle("Section Two").WithBullets("Second point").Build(),
		}

		_, zr := renderDeck(t, "en", spec, slides)
		names := partNames(zr)

		for _, want := range []string{
			"[Content_Types].xml",
			"_rels/.rels",
			"ppt/presentation.xml",
			"ppt/_rels/presentation.xml.rels",
			"ppt/slideMasters/slideMaster1.xml",
			"ppt/slideLayouts/slideLayout1.xml",
			"ppt/theme/theme1.xml",
			"ppt/slides/slide1.xml",
			"ppt/slides/slide2.xml",
			"ppt/slides/slide3.xml",
			"ppt/slides/slide4.xml",
			"ppt/slides/_rels/slide1.xml.rels",
			"ppt/slides/_rels/slide4.xml.rels",
		} {
			assert.True(t, names[want], "missing part %s", want)
		}
		assert.False(t, names["ppt/slides/slide5.xml"])

		presentation := readPart(t, zr, "ppt/presentation.xml")
		assert.Contains(t, presentation, `r:id="rId2"`)
		assert.Contains(t, presentation, `r:id="rId5"`)
		assert.Contains(t, presentation, fmt.Sprintf(`<p:sldSz cx="%d" cy="%d"/>`, slideWidth, slideHeight))

		contentTypes := readPart(t, zr, "[Content_Types].xml")
		assert.Contains(t, contentTypes, "/ppt/slides/slide4.xml")
	})

	t.Run("cover shows brand, subtitle, and footer", func(t *testing.T) {
		spec := builders.NewSpecBuilder().
			WithSlidesCount(3).
			WithDescription("The plan.").
			Build()
		spec.Footer = entities.FooterSpec{Text: "Confidential", ShowSlideNumbers: true}

		_, zr := renderDeck(t, "en", spec, nil)
		cover := readPart(t, zr, "ppt/slides/slide1.xml")

		assert.Contains(t, cover, "Test Brand")
		assert.Contains(t, cover, "The plan.")
		assert.Contains(t, cover, "Confidential  |  1/3")
	})

	t.Run("conclusion slide is localized", func(t *testing.T) {
		spec := builders.NewSpecBuilder().
			WithLanguage("es").
			WithSlidesCount(3).
			WithDescription("El plan.").
			Build()

		_, zr := renderDeck(t, "es", spec, nil)
		conclusion := readPart(t, zr, "ppt/slides/slide2.xml")

		assert.Contains(t, conclusion, "Conclusiones y próximos pasos")
		assert.Contains(t, conclusion, "Resumen de aprendizajes")
		assert.Contains(t, conclusion, `lang="es"`)
	})

	t.Run("escapes XML in slide text", func(t *testing.T) {
		spec := builders.NewSpecBuilder().
			WithSlidesCount(3).
			WithDescription("Plan.").
			Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				WithTitle(`Q&A <session> "live"`).
				WithBullets("a < b").
				Build(),
		}

		_, zr := renderDeck(t, "en", spec, slides)
		slide := readPart(t, zr, "ppt/slides/slide2.xml")

		assert.Contains(t, slide, "Q&amp;A &lt;session&gt; &quot;live&quot;")
		assert.Contains(t, slide, "a &lt; b")
		assert.NotContains(t, slide, "<session>")
	})

	t.Run("embeds existing images with package-wide unique names", func(t *testing.T) {
		dir := t.TempDir()
		imgPath := filepath.Join(dir, "chart.png")
		require.NoError(t, os.WriteFile(imgPath, pngBytes, 0600))
		logoPath := filepath.Join(dir, "logo.png")
		require.NoError(t, os.WriteFile(logoPath, pngBytes, 0600))

		spec := builders.NewSpecBuilder().
			WithSlidesCount(3).
			WithDescription("Plan.").
			Build()
		spec.User.LogoPath = logoPath
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				WithBullets("Chart below").
				WithImage(imgPath, "Sales").
				Build(),
		}

		_, zr := renderDeck(t, "en", spec, slides)
		names := partNames(zr)

		// Logo on cover, chart plus logo on the content slide, logo on
		// the conclusion: four media parts in total.
		assert.True(t, names["ppt/media/image1.png"])
		assert.True(t, names["ppt/media/image2.png"])
		assert.True(t, names["ppt/media/image3.png"])
		assert.True(t, names["ppt/media/image4.png"])

		rels := readPart(t, zr, "ppt/slides/_rels/slide2.xml.rels")
		assert.Contains(t, rels, `Id="rId2"`)
		assert.Contains(t, rels, `Id="rId3"`)
		assert.Contains(t, rels, "../media/image2.png")
		assert.Contains(t, rels, "../media/image3.png")

		slide := readPart(t, zr, "ppt/slides/slide2.xml")
		assert.Contains(t, slide, `r:embed="rId2"`)
		assert.Contains(t, slide, `r:embed="rId3"`)
	})

	t.Run("missing images are skipped with a warning", func(t *testing.T) {
		log := &recordingLogger{}
		renderer := NewRenderer(i18n.New("en"), log)

		spec := builders.NewSpecBuilder().
			WithSlidesCount(3).
			WithDescription("Plan.").
			Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().
				WithBullets("No chart").
				WithImage("/no/such/chart.png", "").
				Build(),
		}

		outPath := filepath.Join(t.TempDir(), "presentation.pptx")
		_, err := renderer.Render(context.Background(), spec, slides, outPath)
		require.NoError(t, err)

		require.Len(t, log.warnings, 1)
		assert.Contains(t, log.warnings[0], "/no/such/chart.png")

		zr, err := zip.OpenReader(outPath)
		require.NoError(t, err)
		defer func() { _ = zr.Close() }()
		for _, f := range zr.File {
			assert.NotContains(t, f.Name, "ppt/media/")
		}
	})

	t.Run("caps bullets at the spec maximum", func(t *testing.T) {
		spec := builders.NewSpecBuilder().
			WithSlidesCount(3).
			WithDescription("Plan.").
			WithBulletsPerSlideMax(2).
			Build()
		slides := []entities.SlideContent{
			builders.NewSlideBuilder().WithBullets("one", "two", "three").Build(),
		}

		_, zr := renderDeck(t, "en", spec, slides)
		slide := readPart(t, zr, "ppt/slides/slide2.xml")

		assert.Contains(t, slide, "<a:t>one</a:t>")
		assert.Contains(t, slide, "<a:t>two</a:t>")
		assert.NotContains(t, slide, "<a:t>three</a:t>")
	})

	t.Run("long subtitles are truncated", func(t *testing.T) {
		spec := builders.NewSpecBuilder().
			WithSlidesCount(3).
			WithDescription(strings.Repeat("x", 300)).
			Build()

		_, zr := renderDeck(t, "en", spec, nil)
		cover := readPart(t, zr, "ppt/slides/slide1.xml")

		assert.Contains(t, cover, strings.Repeat("x", subtitleMaxLength)+"...")
		assert.NotContains(t, cover, strings.Repeat("x", subtitleMaxLength+1))
	})
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips the hash", "#2979FF", "2979FF"},
		{"uppercases", "#2979ff", "2979FF"},
		{"bare value passes", "1F2D3D", "1F2D3D"},
		{"wrong length falls back to black", "#FFF", "000000"},
		{"non-hex falls back to black", "#GGGGGG", "000000"},
		{"empty falls back to black", "", "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hexColor(tt.in))
		})
	}
}
