// Package main provides the refnote CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skalder/refnote/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refnote",
	Short: "Citation capture for markdown note vaults",
	Long: `refnote turns pasted quote-plus-BibTeX text into linked markdown notes.

A paste lands as a quote callout in the note you are writing and as a
citation backlink in a per-source reference note. Reference notes carry
their BibTeX record in the note header, so bibliographies and .bib
exports regenerate from the vault at any time. All commands output JSON
by default for easy integration with agents and editor plugins.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartDir returns the directory vault discovery starts from.
func getStartDir() (string, int) {
	// Check REFNOTE_ROOT environment variable first
	if root := os.Getenv("REFNOTE_ROOT"); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// openVault locates the enclosing vault and loads its configuration,
// exiting with a config error when either step fails.
func openVault() (string, *config.Config) {
	start, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindVault(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	return root, cfg
}
