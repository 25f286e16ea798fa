package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skalder/refnote/internal/config"
	"github.com/skalder/refnote/internal/counter"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a refnote vault",
	Long: `Initialize a refnote vault in the current directory.

Creates:
  .refnote/
  ├── config.yml      # Default config
  └── counters.db     # Block identifier counters`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	// Check if already initialized
	if config.IsVault(root) {
		exitWithError(ExitError, "directory already contains a refnote vault")
	}

	if err := os.MkdirAll(config.RefnotePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating %s directory: %v", config.RefnoteDir, err)
	}

	cfg := &config.Config{
		ReferenceFolder:    "",
		BibliographyFormat: config.DefaultFormat,
		CitationCallout:    config.DefaultCallout,
	}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating %s: %v", config.ConfigFile, err)
	}

	counters, err := counter.OpenDB(config.CountersPath(root))
	if err != nil {
		exitWithError(ExitError, "creating %s: %v", config.CountersFile, err)
	}
	counters.Close()

	if humanOutput {
		outputHuman("Initialized refnote vault in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
