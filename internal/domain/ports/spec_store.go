package ports

import (
	"context"

	"github.com/deckgen/deckgen/internal/domain/entities"
)

// SpecStore loads and persists presentation specs.
type SpecStore interface {
	// Load reads a spec from path, filling omitted fields with defaults.
	Load(ctx context.Context, path string) (*entities.Spec, error)

	// Save writes the spec to path. The format follows the file extension.
	Save(ctx context.Context, spec *entities.Spec, path string) error
}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	// LoadGlobal loads the global configuration, creating defaults on
	// first run.
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal loads the optional local configuration from dir. A nil
	// config with nil error means no local config exists.
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)
}
