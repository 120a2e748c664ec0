package entities

import "strings"

// Bullet length limits applied during outlining. Bullets longer than
// MaxBulletLength are cut to BulletTruncateAt characters plus an ellipsis.
const (
	MaxBulletLength  = 120
	BulletTruncateAt = 117
)

// SlideContent represents the structured content of a single content slide.
// It is produced by the outlining pipeline and consumed by the deck
// renderers; cover and conclusion slides are synthesized by the renderers
// themselves.
type SlideContent struct {
	// Title is a short heading derived from the slide's source sentences.
	Title string `json:"title" yaml:"title"`

	// Bullets are cleaned, length-capped sentences in source order.
	Bullets []string `json:"bullets" yaml:"bullets"`

	// ImagePath optionally references a user-supplied image. Empty until
	// images are attached by the generator.
	ImagePath string `json:"image_path,omitempty" yaml:"image_path,omitempty"`

	// Alt is the alt text for ImagePath, empty by default.
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// HasImage returns true if the slide references an image.
func (s SlideContent) HasImage() bool {
	return strings.TrimSpace(s.ImagePath) != ""
}

// TruncateBullet caps a bullet at MaxBulletLength characters. Bullets at or
// under the limit are returned unchanged; longer ones are cut at
// BulletTruncateAt and suffixed with "...". Limits count runes so accented
// Spanish text is never split mid-character.
func TruncateBullet(bullet string) string {
	bullet = strings.TrimSpace(bullet)
	runes := []rune(bullet)
	if len(runes) > MaxBulletLength {
		return string(runes[:BulletTruncateAt]) + "..."
	}
	return bullet
}
