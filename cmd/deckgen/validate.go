package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/adapters/secondary/specio"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <spec-file>",
	Short: "Validate a spec file and preview its content warnings",
	Long: `Check a spec file against the generation rules, then run a dry
outline pass and report the advisory content warnings (bullet density,
overlong bullets, missing images) without writing any files.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	generator, err := buildGenerator(spec.Language, nil, log)
	if err != nil {
		return err
	}

	warnings, err := generator.Check(ctx, spec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(warnings) == 0 {
		fmt.Fprintln(out, "spec is valid, no content warnings")
		return nil
	}

	fmt.Fprintf(out, "spec is valid with %d content warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  - %s\n", w)
	}

	return nil
}
