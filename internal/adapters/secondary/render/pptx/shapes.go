package pptx

import (
	"fmt"
	"strings"

	"github.com/deckgen/deckgen/internal/domain/entities"
)

// EMU geometry. One inch is 914400 EMU; the layout mirrors the classic
// 10x7.5in slide with the title band on top, bullets on the left, and the
// image column on the right.
const (
	emuPerInch = 914400

	slideWidth  = 10 * emuPerInch
	slideHeight = 7*emuPerInch + emuPerInch/2

	titleOffX   = emuPerInch / 2
	titleOffY   = 548640 // 0.6in
	titleWidth  = 9 * emuPerInch
	titleHeight = emuPerInch

	subtitleOffY = 2 * emuPerInch

	bodyOffX   = emuPerInch / 2
	bodyOffY   = 1554480 // 1.7in
	bodyWidth  = 4754880 // 5.2in
	bodyHeight = 4114800 // 4.5in

	imageOffX   = 5579640 // 6.1in
	imageOffY   = 1554480 // 1.7in
	imageWidth  = 2926080 // 3.2in
	imageHeight = 2194560 // 2.4in

	logoOffX   = 7772400 // 8.5in
	logoOffY   = 274320  // 0.3in
	logoWidth  = 1371600 // 1.5in
	logoHeight = 457200  // 0.5in

	footerOffY   = 6217920 // 6.8in
	footerWidth  = 9 * emuPerInch
	footerHeight = 274320 // 0.3in

	titleFontSize    = 2800 // centipoints
	subtitleFontSize = 1600
	bulletFontSize   = 1800
	footerFontSize   = 1000
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// slideBuilder accumulates the shape tree of one slide.
type slideBuilder struct {
	lang   string
	theme  entities.ThemeSpec
	shapes []string
	images []media
	nextID int
}

func newSlideBuilder(lang string, theme entities.ThemeSpec) *slideBuilder {
	// Shape IDs start at 2; id 1 is the group shape holding the tree.
	return &slideBuilder{lang: lang, theme: theme, nextID: 2}
}

// addTitle places the bold slide title band.
func (b *slideBuilder) addTitle(title string) {
	b.addTextBox("Title", title, titleOffX, titleOffY, titleWidth, titleHeight,
		titleFontSize, true, hexColor(b.theme.PrimaryColor))
}

// addSubtitle places the accent-colored description line on the cover.
func (b *slideBuilder) addSubtitle(subtitle string) {
	b.addTextBox("Subtitle", subtitle, titleOffX, subtitleOffY, titleWidth, titleHeight,
		subtitleFontSize, false, hexColor(b.theme.AccentOrPrimary()))
}

// addFooter places the footer line, appending "n/total" when slide numbers
// are enabled.
func (b *slideBuilder) addFooter(text string, showNumbers bool, current, total int) {
	if showNumbers {
		text = fmt.Sprintf("%s  |  %d/%d", text, current, total)
	}
	b.addTextBox("Footer", text, titleOffX, footerOffY, footerWidth, footerHeight,
		footerFontSize, false, hexColor(b.theme.PrimaryColor))
}

// addBullets places the bullet list body, one paragraph per bullet.
func (b *slideBuilder) addBullets(bullets []string) {
	if len(bullets) == 0 {
		return
	}

	var paragraphs strings.Builder
	for _, bullet := range bullets {
		fmt.Fprintf(&paragraphs,
			`<a:p><a:r><a:rPr lang="%s" sz="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p>`,
			b.lang, bulletFontSize, hexColor(b.theme.PrimaryColor),
			xmlEscaper.Replace(b.theme.FontFamily), xmlEscaper.Replace(bullet))
	}

	id := b.nextShapeID()
	shape := fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Body"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr wrap="square"/><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, bodyOffX, bodyOffY, bodyWidth, bodyHeight, paragraphs.String())

	b.shapes = append(b.shapes, shape)
}

// addPicture embeds an image shape. Relationship IDs for media start at
// rId2; rId1 is the slide layout.
func (b *slideBuilder) addPicture(m media, offX, offY, width, height int) {
	relID := fmt.Sprintf("rId%d", len(b.images)+2)
	m.Name = fmt.Sprintf("image%d.%s", len(b.images)+1, m.Ext)
	b.images = append(b.images, m)

	id := b.nextShapeID()
	shape := fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`+
		`<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
		id, m.Name, relID, offX, offY, width, height)

	b.shapes = append(b.shapes, shape)
}

// addTextBox places a single-paragraph text box.
func (b *slideBuilder) addTextBox(name, text string, offX, offY, width, height, fontSize int, bold bool, color string) {
	boldAttr := ""
	if bold {
		boldAttr = ` b="1"`
	}

	id := b.nextShapeID()
	shape := fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr wrap="square"/><a:lstStyle/>`+
		`<a:p><a:r><a:rPr lang="%s" sz="%d"%s><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p>`+
		`</p:txBody></p:sp>`,
		id, name, offX, offY, width, height,
		b.lang, fontSize, boldAttr, color,
		xmlEscaper.Replace(b.theme.FontFamily), xmlEscaper.Replace(text))

	b.shapes = append(b.shapes, shape)
}

func (b *slideBuilder) nextShapeID() int {
	id := b.nextID
	b.nextID++
	return id
}

// build wraps the accumulated shapes into a complete slide part.
func (b *slideBuilder) build() slidePart {
	return slidePart{
		xml:    fmt.Sprintf(slideTemplate, strings.Join(b.shapes, "")),
		images: b.images,
	}
}

// hexColor normalizes "#RRGGBB" to the bare "RRGGBB" OOXML expects. Bad
// input falls back to black rather than producing invalid XML.
func hexColor(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) != 6 {
		return "000000"
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'F':
		default:
			return "000000"
		}
	}
	return hex
}
