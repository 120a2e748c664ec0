// Package pptx writes the deck as a PowerPoint file. The OOXML package is
// assembled directly (archive/zip plus hand-built part XML): a minimal
// presentation with one slide master, one blank layout, and one slide part
// per deck slide.
package pptx

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
)

// subtitleMaxLength caps the cover subtitle, matching the HTML replica.
const subtitleMaxLength = 150

// Logger is the minimal logger the renderer reports skipped images to.
type Logger interface {
	Warn(msg string, args ...interface{})
}

// Renderer implements ports.DeckRenderer for PPTX files.
type Renderer struct {
	localizer ports.Localizer
	logger    Logger
}

// NewRenderer creates the PPTX renderer for a presentation language.
func NewRenderer(localizer ports.Localizer, logger Logger) *Renderer {
	return &Renderer{localizer: localizer, logger: logger}
}

// media is an image embedded into the package.
type media struct {
	// Name is the part name under ppt/media/.
	Name string
	// Data is the raw image bytes.
	Data []byte
	// Ext is the lowercased extension without the dot.
	Ext string
}

// Render writes the PPTX file to outPath.
func (r *Renderer) Render(ctx context.Context, spec *entities.Spec, slides []entities.SlideContent, outPath string) (*ports.RenderResult, error) {
	deck := r.buildDeck(spec, slides)

	outputFile, err := os.Create(outPath) // #nosec G304 - path is built by the generator
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	defer func() { _ = outputFile.Close() }()

	zw := zip.NewWriter(outputFile)

	parts := deck.packageParts()
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating package part %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("writing package part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing package: %w", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return nil, fmt.Errorf("stat output file: %w", err)
	}

	return &ports.RenderResult{
		Format:     r.Format(),
		OutputPath: outPath,
		FileSize:   info.Size(),
		SlideCount: len(deck.slides),
	}, nil
}

// Format returns "pptx".
func (r *Renderer) Format() string {
	return "pptx"
}

// deck is the fully assembled package content before zipping.
type deck struct {
	slides []slidePart
	lang   string
}

// slidePart is one slide's XML plus its embedded media.
type slidePart struct {
	xml    string
	images []media
}

// buildDeck lays out the cover slide, the content slides, and the
// conclusion slide.
func (r *Renderer) buildDeck(spec *entities.Spec, slides []entities.SlideContent) *deck {
	theme := spec.Theme
	footer := spec.Footer
	total := spec.SlidesCount
	maxBullets := spec.LengthTarget.BulletsPerSlideMax
	if maxBullets <= 0 {
		maxBullets = entities.DefaultBulletsPerSlideMax
	}

	d := &deck{lang: r.localizer.Language()}

	// Cover slide.
	cover := newSlideBuilder(r.localizer.Language(), theme)
	cover.addTitle(spec.User.DisplayName())
	if desc := spec.Input.Description; desc != "" {
		cover.addSubtitle(truncateRunes(desc, subtitleMaxLength))
	}
	r.addLogo(cover, spec.User.LogoPath)
	cover.addFooter(footer.Text, footer.ShowSlideNumbers, 1, total)
	d.slides = append(d.slides, cover.build())

	// Content slides.
	for i, sc := range slides {
		sb := newSlideBuilder(r.localizer.Language(), theme)
		sb.addTitle(sc.Title)

		bullets := sc.Bullets
		if len(bullets) > maxBullets {
			bullets = bullets[:maxBullets]
		}
		sb.addBullets(bullets)

		if sc.HasImage() {
			r.addImage(sb, sc.ImagePath)
		}
		r.addLogo(sb, spec.User.LogoPath)
		sb.addFooter(footer.Text, footer.ShowSlideNumbers, i+2, total)
		d.slides = append(d.slides, sb.build())
	}

	// Conclusion slide.
	conclusion := newSlideBuilder(r.localizer.Language(), theme)
	conclusion.addTitle(r.localizer.Get("conclusions"))
	conclusion.addBullets([]string{
		r.localizer.Get("summary_learnings"),
		r.localizer.Get("immediate_actions"),
		r.localizer.Get("responsible_deadlines"),
	})
	r.addLogo(conclusion, spec.User.LogoPath)
	conclusion.addFooter(footer.Text, footer.ShowSlideNumbers, total, total)
	d.slides = append(d.slides, conclusion.build())

	return d
}

// addImage embeds a content image if it exists on disk; missing or
// unreadable images are logged and skipped, never fatal.
func (r *Renderer) addImage(sb *slideBuilder, path string) {
	m, ok := r.loadMedia(path)
	if !ok {
		return
	}
	sb.addPicture(m, imageOffX, imageOffY, imageWidth, imageHeight)
}

// addLogo embeds the brand logo in the top-right corner.
func (r *Renderer) addLogo(sb *slideBuilder, path string) {
	if path == "" {
		return
	}
	m, ok := r.loadMedia(path)
	if !ok {
		return
	}
	sb.addPicture(m, logoOffX, logoOffY, logoWidth, logoHeight)
}

func (r *Renderer) loadMedia(path string) (media, bool) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the user spec
	if err != nil {
		r.logger.Warn("%s: %s", r.localizer.Get("file_not_found"), path)
		return media{}, false
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "png", "jpg", "jpeg", "gif":
	default:
		r.logger.Warn("unsupported image type %q: %s", ext, path)
		return media{}, false
	}

	return media{Data: data, Ext: ext}, true
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return s
}
