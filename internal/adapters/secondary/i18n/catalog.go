// Package i18n provides the Spanish/English string catalog used for slide
// content and progress messages. Language resolution goes through
// golang.org/x/text so region variants ("es-MX", "en_US") map onto the
// supported bases.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/deckgen/deckgen/internal/domain/ports"
)

// supported lists the catalog languages; Spanish first so it is the
// matcher's fallback, matching the original tool's default.
var supported = []language.Tag{
	language.Spanish,
	language.English,
}

var matcher = language.NewMatcher(supported)

var catalogs = map[string]map[string]string{
	"es": {
		// General
		"processing": "Procesando",
		"success":    "Éxito",
		"error":      "Error",
		"generating": "Generando",

		// Slide content
		"cover":        "Portada",
		"agenda":       "Agenda",
		"introduction": "Introducción",
		"conclusions":  "Conclusiones y próximos pasos",
		"section":      "Sección",
		"takeaway":     "Punto Clave",

		// Conclusion bullets
		"summary_learnings":     "Resumen de aprendizajes",
		"immediate_actions":     "Acciones inmediatas",
		"responsible_deadlines": "Responsables y plazos",
		"key_point":             "Punto",

		// Content processing
		"transcribing": "Transcribiendo audio",
		"summarizing":  "Resumiendo contenido",
		"researching":  "Investigando y expandiendo",
		"structuring":  "Estructurando slides",

		// Validation
		"validating":       "Validando contenido",
		"checking_images":  "Verificando imágenes",
		"checking_density": "Verificando densidad de contenido",

		// File operations
		"saving_pptx": "Guardando presentación PPTX",
		"saving_html": "Guardando réplica HTML",
		"file_saved":  "Archivo guardado",

		// Errors
		"file_not_found":       "Archivo no encontrado",
		"invalid_spec":         "Especificación inválida",
		"transcription_failed": "Falló la transcripción",
		"generation_failed":    "Falló la generación",
	},
	"en": {
		// General
		"processing": "Processing",
		"success":    "Success",
		"error":      "Error",
		"generating": "Generating",

		// Slide content
		"cover":        "Cover",
		"agenda":       "Agenda",
		"introduction": "Introduction",
		"conclusions":  "Conclusions and Next Steps",
		"section":      "Section",
		"takeaway":     "Key Takeaway",

		// Conclusion bullets
		"summary_learnings":     "Summary of learnings",
		"immediate_actions":     "Immediate actions",
		"responsible_deadlines": "Responsibilities and deadlines",
		"key_point":             "Point",

		// Content processing
		"transcribing": "Transcribing audio",
		"summarizing":  "Summarizing content",
		"researching":  "Researching and expanding",
		"structuring":  "Structuring slides",

		// Validation
		"validating":       "Validating content",
		"checking_images":  "Checking images",
		"checking_density": "Checking content density",

		// File operations
		"saving_pptx": "Saving PPTX presentation",
		"saving_html": "Saving HTML replica",
		"file_saved":  "File saved",

		// Errors
		"file_not_found":       "File not found",
		"invalid_spec":         "Invalid specification",
		"transcription_failed": "Transcription failed",
		"generation_failed":    "Generation failed",
	},
}

// Catalog resolves translation keys for a single language.
type Catalog struct {
	lang    string
	entries map[string]string
}

// New creates a catalog for the given language code. Unknown or malformed
// codes fall back to Spanish.
func New(langCode string) *Catalog {
	lang := "es"

	if tag, err := language.Parse(langCode); err == nil {
		_, index, confidence := matcher.Match(tag)
		if confidence > language.No {
			base, _ := supported[index].Base()
			lang = base.String()
		}
	}

	entries, ok := catalogs[lang]
	if !ok {
		entries = catalogs["es"]
		lang = "es"
	}

	return &Catalog{lang: lang, entries: entries}
}

// Get returns the translation for key, or the key itself when missing.
func (c *Catalog) Get(key string) string {
	if text, ok := c.entries[key]; ok {
		return text
	}
	return key
}

// Language returns the resolved language code.
func (c *Catalog) Language() string {
	return c.lang
}

// Ensure Catalog implements ports.Localizer.
var _ ports.Localizer = (*Catalog)(nil)
