package main

import (
	"github.com/spf13/cobra"

	httpserver "github.com/deckgen/deckgen/internal/adapters/primary/http"
	"github.com/deckgen/deckgen/internal/adapters/secondary/specio"
	"github.com/deckgen/deckgen/internal/adapters/secondary/watcher"
)

var (
	servePort int
	serveHost string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve <spec-file>",
	Short: "Preview a deck in the browser with live regeneration",
	Long: `Generate the deck and serve its HTML replica locally. The spec file
is watched for changes; every save regenerates the deck and reloads
connected browsers.

Example:
  deckgen serve spec.json
  deckgen serve spec.yaml --port 8080`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to serve on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	log := newLogger(cmd, cfg)

	store := specio.NewFileStore()
	spec, err := store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	// The preview always needs the HTML replica; the PPTX artifact is
	// regenerated alongside it when enabled in the config.
	formats := cfg.Output.GetFormats()
	if !contains(formats, "html") {
		formats = append(formats, "html")
	}

	generator, err := buildGenerator(spec.Language, formats, log)
	if err != nil {
		return err
	}

	fileWatcher, err := watcher.New()
	if err != nil {
		return err
	}
	defer func() { _ = fileWatcher.Close() }()

	server := httpserver.NewServer(cfg, generator, store, fileWatcher, args[0], log)
	return server.Start(ctx)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
