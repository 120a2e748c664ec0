package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("resolves supported languages", func(t *testing.T) {
		assert.Equal(t, "es", New("es").Language())
		assert.Equal(t, "en", New("en").Language())
	})

	t.Run("region variants map to the base language", func(t *testing.T) {
		assert.Equal(t, "es", New("es-MX").Language())
		assert.Equal(t, "en", New("en-GB").Language())
	})

	t.Run("unknown languages fall back to Spanish", func(t *testing.T) {
		assert.Equal(t, "es", New("fr").Language())
		assert.Equal(t, "es", New("zz-invalid-!").Language())
		assert.Equal(t, "es", New("").Language())
	})
}

func TestCatalog_Get(t *testing.T) {
	t.Run("returns translations per language", func(t *testing.T) {
		assert.Equal(t, "Conclusiones y próximos pasos", New("es").Get("conclusions"))
		assert.Equal(t, "Conclusions and Next Steps", New("en").Get("conclusions"))
		assert.Equal(t, "Sección", New("es").Get("section"))
		assert.Equal(t, "Section", New("en").Get("section"))
	})

	t.Run("missing keys return the key itself", func(t *testing.T) {
		assert.Equal(t, "no_such_key", New("en").Get("no_such_key"))
	})

	t.Run("both catalogs carry the same keys", func(t *testing.T) {
		es, en := catalogs["es"], catalogs["en"]
		assert.Len(t, en, len(es))
		for key := range es {
			assert.Contains(t, en, key)
		}
	})
}
