package entities

// SpecBuilder assembles a Spec programmatically with a fluent API. The
// builder starts from the language defaults; Build returns a copy so the
// builder can keep being used afterwards.
type SpecBuilder struct {
	spec *Spec
}

// NewSpecBuilder creates a builder seeded with the defaults for language.
func NewSpecBuilder(language string) *SpecBuilder {
	return &SpecBuilder{spec: DefaultSpec(language)}
}

// SlidesCount sets the total number of slides, including cover and
// conclusion.
func (b *SpecBuilder) SlidesCount(count int) *SpecBuilder {
	b.spec.SlidesCount = count
	return b
}

// User sets the presenter information. Empty arguments leave the current
// value untouched.
func (b *SpecBuilder) User(name, brandName, logoPath string) *SpecBuilder {
	if name != "" {
		b.spec.User.Name = name
	}
	if brandName != "" {
		b.spec.User.BrandName = brandName
	}
	if logoPath != "" {
		b.spec.User.LogoPath = logoPath
	}
	return b
}

// Footer sets the footer text and slide number visibility.
func (b *SpecBuilder) Footer(text string, showNumbers bool) *SpecBuilder {
	b.spec.Footer.Text = text
	b.spec.Footer.ShowSlideNumbers = showNumbers
	return b
}

// Theme overrides theme fields. Empty arguments keep the defaults.
func (b *SpecBuilder) Theme(fontFamily, primaryColor, accentColor, bgColor string) *SpecBuilder {
	if fontFamily != "" {
		b.spec.Theme.FontFamily = fontFamily
	}
	if primaryColor != "" {
		b.spec.Theme.PrimaryColor = primaryColor
	}
	if accentColor != "" {
		b.spec.Theme.AccentColor = accentColor
	}
	if bgColor != "" {
		b.spec.Theme.BgColor = bgColor
	}
	return b
}

// Description sets the content description text.
func (b *SpecBuilder) Description(description string) *SpecBuilder {
	b.spec.Input.Description = description
	return b
}

// AddImage appends a user image to attach to content slides in order.
func (b *SpecBuilder) AddImage(path, alt string) *SpecBuilder {
	b.spec.Input.Images = append(b.spec.Input.Images, ImageRef{Path: path, Alt: alt})
	return b
}

// AddAudio appends an audio file for transcription.
func (b *SpecBuilder) AddAudio(path string) *SpecBuilder {
	b.spec.Input.AudioPaths = append(b.spec.Input.AudioPaths, path)
	return b
}

// LengthTarget sets the word and bullet budgets. Zero values keep the
// defaults.
func (b *SpecBuilder) LengthTarget(summaryWords, bulletsPerSlideMax int) *SpecBuilder {
	if summaryWords > 0 {
		b.spec.LengthTarget.SummaryWords = summaryWords
	}
	if bulletsPerSlideMax > 0 {
		b.spec.LengthTarget.BulletsPerSlideMax = bulletsPerSlideMax
	}
	return b
}

// OutputDir sets where the generated files are written.
func (b *SpecBuilder) OutputDir(dir string) *SpecBuilder {
	b.spec.OutputDir = dir
	return b
}

// EnableResearch toggles the research expansion step for description input.
func (b *SpecBuilder) EnableResearch(enable bool) *SpecBuilder {
	b.spec.EnableResearch = enable
	return b
}

// Build returns the assembled spec as an independent value.
func (b *SpecBuilder) Build() *Spec {
	spec := *b.spec
	spec.Input.Images = append([]ImageRef(nil), b.spec.Input.Images...)
	spec.Input.AudioPaths = append([]string(nil), b.spec.Input.AudioPaths...)
	return &spec
}
