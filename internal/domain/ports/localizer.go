package ports

// Localizer resolves user-facing strings for a presentation language. It is
// injected wherever text is emitted; there is no package-global translation
// table.
type Localizer interface {
	// Get returns the translation for key, or the key itself when no
	// translation exists.
	Get(key string) string

	// Language returns the resolved language code ("es", "en").
	Language() string
}
