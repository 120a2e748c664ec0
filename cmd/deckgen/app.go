package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/adapters/secondary/config"
	"github.com/deckgen/deckgen/internal/adapters/secondary/i18n"
	"github.com/deckgen/deckgen/internal/adapters/secondary/processor"
	"github.com/deckgen/deckgen/internal/adapters/secondary/render/html"
	"github.com/deckgen/deckgen/internal/adapters/secondary/render/pptx"
	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
	"github.com/deckgen/deckgen/internal/domain/services"
	"github.com/deckgen/deckgen/internal/logger"
)

// loadConfig loads global and local configuration, local values winning.
func loadConfig(ctx context.Context) (*entities.Config, error) {
	loader := config.NewTOMLLoader()

	global, err := loader.LoadGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	local, err := loader.LoadLocal(ctx, cwd)
	if err != nil {
		return nil, fmt.Errorf("loading local config: %w", err)
	}

	return config.Merge(global, local), nil
}

// newLogger builds the CLI logger from the config plus the --verbose flag.
func newLogger(cmd *cobra.Command, cfg *entities.Config) *logger.Logger {
	level := cfg.Logging.GetLevel()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || cfg.Logging.Verbose {
		level = entities.LogLevelDebug
	}
	return logger.New(level)
}

// buildGenerator wires the generator service with the renderers enabled by
// formats and the localizer for language.
func buildGenerator(language string, formats []string, log *logger.Logger) (*services.GeneratorService, error) {
	localizer := i18n.New(language)
	pipeline := services.NewOutlineService(localizer)

	var renderers []ports.DeckRenderer
	for _, format := range formats {
		switch format {
		case "pptx":
			renderers = append(renderers, pptx.NewRenderer(localizer, log))
		case "html":
			htmlRenderer, err := html.NewRenderer(localizer)
			if err != nil {
				return nil, fmt.Errorf("building html renderer: %w", err)
			}
			renderers = append(renderers, htmlRenderer)
		default:
			return nil, fmt.Errorf("unsupported output format: %s", format)
		}
	}

	return services.NewGeneratorService(
		pipeline,
		processor.NewPlaceholderTranscriber(localizer, log),
		processor.NewRepetitionExpander(),
		renderers,
		localizer,
		log,
	), nil
}
