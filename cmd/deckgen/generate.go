package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/adapters/secondary/input"
	"github.com/deckgen/deckgen/internal/adapters/secondary/specio"
)

var (
	generateOutputDir       string
	generateLanguage        string
	generateDescriptionFile string
	generateFormats         []string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <spec-file>",
	Short: "Generate a deck from a spec file",
	Long: `Run the full generation flow for a JSON or YAML spec file: acquire
the content text, structure it into slides, and write the PPTX deck and
HTML replica into the spec's output directory.

Example:
  deckgen generate spec.json
  deckgen generate spec.yaml --output ./out --lang en
  deckgen generate spec.json --description-file notes.md`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output directory (overrides spec)")
	generateCmd.Flags().StringVar(&generateLanguage, "lang", "", "Presentation language: es or en (overrides spec)")
	generateCmd.Flags().StringVar(&generateDescriptionFile, "description-file", "", "Read the description from a text or markdown file")
	generateCmd.Flags().StringSliceVar(&generateFormats, "format", nil, "Output formats: pptx, html (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	store := specio.NewFileStore()
	spec, err := store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	if generateOutputDir != "" {
		spec.OutputDir = generateOutputDir
	}
	if generateLanguage != "" {
		spec.Language = generateLanguage
	}
	if generateDescriptionFile != "" {
		description, err := input.ReadDescription(generateDescriptionFile)
		if err != nil {
			return err
		}
		spec.Input.Description = description
	}

	formats := generateFormats
	if len(formats) == 0 {
		formats = cfg.Output.GetFormats()
	}

	generator, err := buildGenerator(spec.Language, formats, log)
	if err != nil {
		return err
	}

	result, err := generator.Generate(ctx, spec)
	if err != nil {
		return err
	}

	for _, render := range result.Renders {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d slides, %d bytes)\n",
			render.Format, render.OutputPath, render.SlideCount, render.FileSize)
	}

	// Content warnings are advisory; the artifacts were still written.
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
	}

	return nil
}
