// Package specio persists presentation specs as JSON or YAML files, chosen
// by file extension.
package specio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
)

// FileStore implements ports.SpecStore on the local filesystem.
type FileStore struct{}

// NewFileStore creates a spec file store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads a spec from path. The file is decoded over the defaults for
// its language, so omitted fields keep their default values while explicit
// ones (including explicit falses) win.
func (s *FileStore) Load(ctx context.Context, path string) (*entities.Spec, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the CLI
	if err != nil {
		return nil, fmt.Errorf("reading spec %s: %w", path, err)
	}

	// First pass just to learn the language, so defaults localize.
	var probe struct {
		Language string `json:"language" yaml:"language"`
	}
	if err := unmarshal(path, data, &probe); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", path, err)
	}

	spec := entities.DefaultSpec(probe.Language)
	if err := unmarshal(path, data, spec); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", path, err)
	}

	return spec, nil
}

// Save writes the spec to path in the format matching its extension,
// creating parent directories as needed.
func (s *FileStore) Save(ctx context.Context, spec *entities.Spec, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(spec)
	} else {
		data, err = json.MarshalIndent(spec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding spec: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing spec %s: %w", path, err)
	}

	return nil
}

func unmarshal(path string, data []byte, v interface{}) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Ensure FileStore implements ports.SpecStore.
var _ ports.SpecStore = (*FileStore)(nil)
