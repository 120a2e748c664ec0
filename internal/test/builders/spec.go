// Package builders provides test data builders for domain entities.
package builders

import "github.com/deckgen/deckgen/internal/domain/entities"

// SpecBuilder helps build Spec entities for testing.
type SpecBuilder struct {
	spec *entities.Spec
}

// NewSpecBuilder creates a new spec builder with sensible defaults.
func NewSpecBuilder() *SpecBuilder {
	spec := entities.DefaultSpec("en")
	spec.User = entities.UserInfo{Name: "Test User", BrandName: "Test Brand"}
	spec.Input.Description = "First point. Second point. Third point. Fourth point. Fifth point. Sixth point."
	return &SpecBuilder{spec: spec}
}

// WithLanguage sets the presentation language.
func (b *SpecBuilder) WithLanguage(language string) *SpecBuilder {
	b.spec.Language = language
	return b
}

// WithSlidesCount sets the total slide count.
func (b *SpecBuilder) WithSlidesCount(count int) *SpecBuilder {
	b.spec.SlidesCount = count
	return b
}

// WithDescription sets the input description.
func (b *SpecBuilder) WithDescription(description string) *SpecBuilder {
	b.spec.Input.Description = description
	return b
}

// WithAudio sets the audio input paths.
func (b *SpecBuilder) WithAudio(paths ...string) *SpecBuilder {
	b.spec.Input.AudioPaths = paths
	return b
}

// WithImages sets the input images.
func (b *SpecBuilder) WithImages(images ...entities.ImageRef) *SpecBuilder {
	b.spec.Input.Images = images
	return b
}

// WithResearch enables the research expansion step.
func (b *SpecBuilder) WithResearch() *SpecBuilder {
	b.spec.EnableResearch = true
	return b
}

// WithOutputDir sets the output directory.
func (b *SpecBuilder) WithOutputDir(dir string) *SpecBuilder {
	b.spec.OutputDir = dir
	return b
}

// WithBulletsPerSlideMax sets the bullet budget.
func (b *SpecBuilder) WithBulletsPerSlideMax(max int) *SpecBuilder {
	b.spec.LengthTarget.BulletsPerSlideMax = max
	return b
}

// Build returns the built spec.
func (b *SpecBuilder) Build() *entities.Spec {
	spec := *b.spec
	return &spec
}

// SlideBuilder helps build SlideContent values for testing.
type SlideBuilder struct {
	slide entities.SlideContent
}

// NewSlideBuilder creates a new slide builder with sensible defaults.
func NewSlideBuilder() *SlideBuilder {
	return &SlideBuilder{
		slide: entities.SlideContent{
			Title:   "Test Slide",
			Bullets: []string{"First bullet", "Second bullet"},
		},
	}
}

// WithTitle sets the slide title.
func (b *SlideBuilder) WithTitle(title string) *SlideBuilder {
	b.slide.Title = title
	return b
}

// WithBullets sets the slide bullets.
func (b *SlideBuilder) WithBullets(bullets ...string) *SlideBuilder {
	b.slide.Bullets = bullets
	return b
}

// WithImage sets the slide image reference.
func (b *SlideBuilder) WithImage(path, alt string) *SlideBuilder {
	b.slide.ImagePath = path
	b.slide.Alt = alt
	return b
}

// Build returns the built slide.
func (b *SlideBuilder) Build() entities.SlideContent {
	slide := b.slide
	slide.Bullets = append([]string(nil), b.slide.Bullets...)
	return slide
}
