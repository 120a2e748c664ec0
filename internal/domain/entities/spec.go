package entities

import (
	"errors"
	"fmt"
)

// MinSlidesCount is the smallest deck that still has room for a cover and a
// conclusion slide around at least one content slide.
const MinSlidesCount = 3

// Default values applied by DefaultSpec and the merge step.
const (
	DefaultLanguage           = "es"
	DefaultSlidesCount        = 10
	DefaultSummaryWords       = 500
	DefaultBulletsPerSlideMax = 6
	DefaultOutputDir          = "output"
	DefaultFooterText         = "Confidential"
)

// Spec is the complete description of a presentation to generate. It is a
// read-only input to the pipeline: build one with SpecBuilder or load it
// from a file, validate it, then hand it to the generator.
type Spec struct {
	Language       string       `json:"language" yaml:"language"`
	SlidesCount    int          `json:"slides_count" yaml:"slides_count"`
	User           UserInfo     `json:"user" yaml:"user"`
	Footer         FooterSpec   `json:"footer" yaml:"footer"`
	Theme          ThemeSpec    `json:"theme" yaml:"theme"`
	Input          InputSpec    `json:"input" yaml:"input"`
	LengthTarget   LengthTarget `json:"length_target" yaml:"length_target"`
	OutputDir      string       `json:"output_dir" yaml:"output_dir"`
	EnableResearch bool         `json:"enable_research" yaml:"enable_research"`
}

// UserInfo identifies the presenter and their branding.
type UserInfo struct {
	Name      string `json:"name" yaml:"name"`
	BrandName string `json:"brand_name" yaml:"brand_name"`
	LogoPath  string `json:"logo_path,omitempty" yaml:"logo_path,omitempty"`
}

// DisplayName returns the name shown on the cover slide, preferring the
// brand name over the personal name.
func (u UserInfo) DisplayName() string {
	if u.BrandName != "" {
		return u.BrandName
	}
	if u.Name != "" {
		return u.Name
	}
	return "Presentation"
}

// FooterSpec configures the footer line on every slide.
type FooterSpec struct {
	Text             string `json:"text" yaml:"text"`
	ShowSlideNumbers bool   `json:"show_slide_numbers" yaml:"show_slide_numbers"`
}

// ThemeSpec holds the visual branding applied by both renderers.
type ThemeSpec struct {
	FontFamily   string `json:"font_family" yaml:"font_family"`
	PrimaryColor string `json:"primary_color" yaml:"primary_color"`
	AccentColor  string `json:"accent_color" yaml:"accent_color"`
	BgColor      string `json:"bg_color" yaml:"bg_color"`
}

// AccentOrPrimary returns the accent color, falling back to the primary
// color when no accent is configured.
func (t ThemeSpec) AccentOrPrimary() string {
	if t.AccentColor != "" {
		return t.AccentColor
	}
	return t.PrimaryColor
}

// ImageRef points at a user-supplied image with optional alt text.
type ImageRef struct {
	Path string `json:"path" yaml:"path"`
	Alt  string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// InputSpec describes the content sources for the deck. At least one of
// Description, AudioPaths or Images must be present.
type InputSpec struct {
	Description string     `json:"description" yaml:"description"`
	Images      []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`
	AudioPaths  []string   `json:"audio_paths,omitempty" yaml:"audio_paths,omitempty"`
}

// HasContent returns true if any content source is set.
func (i InputSpec) HasContent() bool {
	return i.Description != "" || len(i.AudioPaths) > 0 || len(i.Images) > 0
}

// LengthTarget bounds the amount of generated content.
type LengthTarget struct {
	SummaryWords       int `json:"summary_words" yaml:"summary_words"`
	BulletsPerSlideMax int `json:"bullets_per_slide_max" yaml:"bullets_per_slide_max"`
}

// DefaultSpec returns a spec template with all defaults filled in.
func DefaultSpec(language string) *Spec {
	if language == "" {
		language = DefaultLanguage
	}
	return &Spec{
		Language:    language,
		SlidesCount: DefaultSlidesCount,
		User: UserInfo{
			Name:      "User",
			BrandName: "Company",
		},
		Footer: FooterSpec{
			Text:             DefaultFooterText,
			ShowSlideNumbers: true,
		},
		Theme: ThemeSpec{
			FontFamily:   "Inter",
			PrimaryColor: "#1F2D3D",
			AccentColor:  "#2979FF",
			BgColor:      "#FFFFFF",
		},
		LengthTarget: LengthTarget{
			SummaryWords:       DefaultSummaryWords,
			BulletsPerSlideMax: DefaultBulletsPerSlideMax,
		},
		OutputDir: DefaultOutputDir,
	}
}

// Validate checks the spec against the generation rules. All problems are
// reported at once through errors.Join.
func (s *Spec) Validate() error {
	var errs []error

	if s.SlidesCount < MinSlidesCount {
		errs = append(errs, fmt.Errorf("slides_count must be at least %d, got %d", MinSlidesCount, s.SlidesCount))
	}

	if s.User.Name == "" && s.User.BrandName == "" {
		errs = append(errs, errors.New("user must have a name or a brand_name"))
	}

	if s.Theme.PrimaryColor == "" {
		errs = append(errs, errors.New("theme must have a primary_color"))
	}

	if !s.Input.HasContent() {
		errs = append(errs, errors.New("input must have a description, audio_paths, or images"))
	}

	return errors.Join(errs...)
}

// ContentSlides returns the number of content slides, excluding the fixed
// cover and conclusion slides.
func (s *Spec) ContentSlides() int {
	return s.SlidesCount - 2
}

// MergeDefaults fills any zero-valued field from the defaults for the
// spec's language, returning a new spec. User-provided values always win.
func (s *Spec) MergeDefaults() *Spec {
	merged := *s
	def := DefaultSpec(s.Language)

	merged.Language = firstNonEmpty(merged.Language, def.Language)
	if merged.SlidesCount == 0 {
		merged.SlidesCount = def.SlidesCount
	}
	merged.Footer.Text = firstNonEmpty(merged.Footer.Text, def.Footer.Text)
	merged.Theme.FontFamily = firstNonEmpty(merged.Theme.FontFamily, def.Theme.FontFamily)
	merged.Theme.PrimaryColor = firstNonEmpty(merged.Theme.PrimaryColor, def.Theme.PrimaryColor)
	merged.Theme.AccentColor = firstNonEmpty(merged.Theme.AccentColor, def.Theme.AccentColor)
	merged.Theme.BgColor = firstNonEmpty(merged.Theme.BgColor, def.Theme.BgColor)
	if merged.LengthTarget.SummaryWords == 0 {
		merged.LengthTarget.SummaryWords = def.LengthTarget.SummaryWords
	}
	if merged.LengthTarget.BulletsPerSlideMax == 0 {
		merged.LengthTarget.BulletsPerSlideMax = def.LengthTarget.BulletsPerSlideMax
	}
	merged.OutputDir = firstNonEmpty(merged.OutputDir, def.OutputDir)

	return &merged
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
