package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/adapters/secondary/specio"
	"github.com/deckgen/deckgen/internal/domain/entities"
)

var initLanguage string

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [spec-file]",
	Short: "Write a default spec file to start from",
	Long: `Create a spec file pre-filled with defaults. The output format
follows the file extension (.json, .yaml, .yml); the default is
spec.json in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initLanguage, "lang", entities.DefaultLanguage, "Presentation language: es or en")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "spec.json"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	spec := entities.DefaultSpec(initLanguage)

	store := specio.NewFileStore()
	if err := store.Save(cmd.Context(), spec, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
