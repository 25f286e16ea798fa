package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skalder/refnote/internal/cite"
	"github.com/skalder/refnote/internal/clip"
	"github.com/skalder/refnote/internal/counter"
	"github.com/skalder/refnote/internal/vault"
)

var (
	exportOut       string
	exportClipboard bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "references.bib", "Vault-relative path of the exported .bib file")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Also place the exported file on the system clipboard")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all references as a BibTeX file",
	Long: `Export every reference note in the reference folder as one BibTeX file.

Each note's citation record is re-serialized in canonical form; notes
that cannot be read or hold no record are skipped. Entries appear in
note-name order, separated by blank lines.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	root, cfg := openVault()

	pipeline := &cite.Pipeline{
		Vault:    vault.New(root),
		Config:   cfg,
		Counters: counter.NewMemory(),
	}

	res, err := pipeline.Export(exportOut)
	if err != nil {
		if errors.Is(err, cite.ErrReferenceFolderMissing) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if exportClipboard {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(exportOut)))
		if err != nil {
			exitWithError(ExitError, "reading exported file: %v", err)
		}
		if err := clip.Copy(string(data)); err != nil {
			exitWithError(ExitError, "copying to clipboard: %v", err)
		}
	}

	if humanOutput {
		outputHuman("Exported %d entries to %s\n", res.Entries, res.Path)
		for _, name := range res.Skipped {
			outputHuman("  skipped: %s\n", name)
		}
	} else {
		outputJSON(res)
	}

	return nil
}
