package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/internal/domain/entities"
)

func TestTOMLLoader_LoadGlobal(t *testing.T) {
	ctx := context.Background()

	t.Run("first run creates the defaults", func(t *testing.T) {
		loader := &TOMLLoader{
			globalPath: filepath.Join(t.TempDir(), "deckgen", "config.toml"),
			localName:  "deckgen.toml",
		}

		cfg, err := loader.LoadGlobal(ctx)
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 4100, cfg.Server.Port)
		assert.Equal(t, []string{"pptx", "html"}, cfg.Output.Formats)
		assert.FileExists(t, loader.globalPath)
	})

	t.Run("existing file is loaded, not overwritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[server]
host = "0.0.0.0"
port = 9000
`), 0600))

		loader := &TOMLLoader{globalPath: path, localName: "deckgen.toml"}

		cfg, err := loader.LoadGlobal(ctx)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 9000, cfg.Server.Port)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 99999
`), 0600))

		loader := &TOMLLoader{globalPath: path, localName: "deckgen.toml"}

		_, err := loader.LoadGlobal(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})
}

func TestTOMLLoader_LoadLocal(t *testing.T) {
	ctx := context.Background()
	loader := NewTOMLLoader()

	t.Run("absent local file yields nil without error", func(t *testing.T) {
		cfg, err := loader.LoadLocal(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("local file is loaded", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "deckgen.toml"), []byte(`
[output]
dir = "dist"
formats = ["html"]
`), 0600))

		cfg, err := loader.LoadLocal(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "dist", cfg.Output.Dir)
		assert.Equal(t, []string{"html"}, cfg.Output.Formats)
	})

	t.Run("malformed TOML fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "deckgen.toml"), []byte(`[[[`), 0600))

		_, err := loader.LoadLocal(ctx, dir)
		assert.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	t.Run("nil local returns global unchanged", func(t *testing.T) {
		global := GetDefaultConfig()
		assert.Equal(t, global, Merge(global, nil))
	})

	t.Run("nil global starts from defaults", func(t *testing.T) {
		merged := Merge(nil, &entities.Config{
			Output: entities.OutputConfig{Dir: "dist"},
		})

		assert.Equal(t, "dist", merged.Output.Dir)
		assert.Equal(t, 4100, merged.Server.Port)
	})

	t.Run("local non-zero fields win", func(t *testing.T) {
		global := GetDefaultConfig()
		local := &entities.Config{
			Server:  entities.ServerConfig{Port: 9000},
			Logging: entities.LoggingConfig{Level: "debug", Verbose: true},
		}

		merged := Merge(global, local)

		assert.Equal(t, 9000, merged.Server.Port)
		assert.Equal(t, "localhost", merged.Server.Host)
		assert.Equal(t, "debug", merged.Logging.Level)
		assert.True(t, merged.Logging.Verbose)
	})

	t.Run("does not mutate the global", func(t *testing.T) {
		global := GetDefaultConfig()
		_ = Merge(global, &entities.Config{Server: entities.ServerConfig{Port: 9000}})
		assert.Equal(t, 4100, global.Server.Port)
	})
}

func TestGetDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DECKGEN_HOST", "0.0.0.0")
	t.Setenv("DECKGEN_PORT", "8088")
	t.Setenv("DECKGEN_LOG_LEVEL", "debug")
	t.Setenv("DECKGEN_LOG_VERBOSE", "true")

	cfg := GetDefaultConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Verbose)
}

func TestConfigEntityAccessors(t *testing.T) {
	t.Run("shutdown timeout defaults to five seconds", func(t *testing.T) {
		assert.Equal(t, "5s", entities.ServerConfig{}.GetShutdownTimeout().String())
		assert.Equal(t, "30s", entities.ServerConfig{ShutdownTimeout: 30}.GetShutdownTimeout().String())
	})

	t.Run("formats default to both artifacts", func(t *testing.T) {
		assert.Equal(t, []string{"pptx", "html"}, entities.OutputConfig{}.GetFormats())
		assert.Equal(t, []string{"html"}, entities.OutputConfig{Formats: []string{"html"}}.GetFormats())
	})

	t.Run("log level defaults to info", func(t *testing.T) {
		assert.Equal(t, entities.LogLevelInfo, entities.LoggingConfig{}.GetLevel())
	})
}
