// Package html renders the deck into a standalone HTML replica with the
// same cover/content/conclusion structure as the PPTX artifact.
package html

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
)

// subtitleMaxLength caps the cover subtitle derived from the description.
const subtitleMaxLength = 150

// Renderer implements ports.DeckRenderer for static HTML.
type Renderer struct {
	template  *template.Template
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
	localizer ports.Localizer
}

// NewRenderer creates the HTML renderer for a presentation language.
func NewRenderer(localizer ports.Localizer) (*Renderer, error) {
	tmpl, err := template.New("deck").Parse(deckTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing deck template: %w", err)
	}

	return &Renderer{
		template:  tmpl,
		markdown:  goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
		localizer: localizer,
	}, nil
}

// templateData is the flattened view handed to the deck template.
type templateData struct {
	Lang             string
	BrandName        string
	TitleText        string
	Subtitle         template.HTML
	FontFamily       string
	PrimaryColor     string
	AccentColor      string
	BgColor          string
	LogoPath         string
	FooterText       string
	ShowNumbers      bool
	Total            int
	Slides           []slideView
	ConclusionTitle  string
	ConclusionPoints []string
}

// slideView carries per-slide data plus its 1-based deck position.
type slideView struct {
	entities.SlideContent
	Number int
}

// Render writes the HTML replica to outPath.
func (r *Renderer) Render(ctx context.Context, spec *entities.Spec, slides []entities.SlideContent, outPath string) (*ports.RenderResult, error) {
	views := make([]slideView, len(slides))
	for i, s := range slides {
		views[i] = slideView{SlideContent: s, Number: i + 2}
	}

	data := templateData{
		Lang:         r.localizer.Language(),
		BrandName:    spec.User.DisplayName(),
		TitleText:    r.localizer.Get("cover"),
		Subtitle:     r.subtitle(spec.Input.Description),
		FontFamily:   spec.Theme.FontFamily,
		PrimaryColor: spec.Theme.PrimaryColor,
		AccentColor:  spec.Theme.AccentOrPrimary(),
		BgColor:      spec.Theme.BgColor,
		LogoPath:     spec.User.LogoPath,
		FooterText:   spec.Footer.Text,
		ShowNumbers:  spec.Footer.ShowSlideNumbers,
		Total:        spec.SlidesCount,
		Slides:       views,
		ConclusionTitle: r.localizer.Get("conclusions"),
		ConclusionPoints: []string{
			r.localizer.Get("summary_learnings"),
			r.localizer.Get("immediate_actions"),
			r.localizer.Get("responsible_deadlines"),
		},
	}

	outputFile, err := os.Create(outPath) // #nosec G304 - path is built by the generator
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	defer func() { _ = outputFile.Close() }()

	if err := r.template.Execute(outputFile, data); err != nil {
		return nil, fmt.Errorf("executing deck template: %w", err)
	}

	info, err := outputFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat output file: %w", err)
	}

	return &ports.RenderResult{
		Format:     r.Format(),
		OutputPath: outPath,
		FileSize:   info.Size(),
		SlideCount: len(slides) + 2,
	}, nil
}

// Format returns "html".
func (r *Renderer) Format() string {
	return "html"
}

// subtitle renders the description as markdown, sanitizes the result, and
// caps it at subtitleMaxLength characters before markup expansion.
func (r *Renderer) subtitle(description string) template.HTML {
	if description == "" {
		return ""
	}

	runes := []rune(description)
	if len(runes) > subtitleMaxLength {
		description = string(runes[:subtitleMaxLength]) + "..."
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(description), &buf); err != nil {
		// Fall back to the raw description; the template escapes it.
		return template.HTML(template.HTMLEscapeString(description)) // #nosec G203
	}

	return template.HTML(r.sanitizer.SanitizeBytes(buf.Bytes())) // #nosec G203 - sanitized by bluemonday
}

// Ensure Renderer implements ports.DeckRenderer.
var _ ports.DeckRenderer = (*Renderer)(nil)
