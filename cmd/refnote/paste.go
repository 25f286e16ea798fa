package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skalder/refnote/internal/bibtex"
	"github.com/skalder/refnote/internal/cite"
	"github.com/skalder/refnote/internal/clip"
	"github.com/skalder/refnote/internal/config"
	"github.com/skalder/refnote/internal/counter"
	"github.com/skalder/refnote/internal/vault"
)

var (
	pasteNote  string
	pasteFile  string
	pasteStdin bool
)

func init() {
	rootCmd.AddCommand(pasteCmd)
	pasteCmd.Flags().StringVar(&pasteNote, "note", "", "Content note receiving the quote (required)")
	pasteCmd.Flags().StringVar(&pasteFile, "file", "", "Read pasted text from a file instead of the clipboard")
	pasteCmd.Flags().BoolVar(&pasteStdin, "stdin", false, "Read pasted text from stdin instead of the clipboard")
	pasteCmd.MarkFlagRequired("note")
}

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Capture a quote and its citation into the vault",
	Long: `Capture a quote and its BibTeX record into the vault.

The pasted text is split into the quoted passage and the citation record
that follows it. The quote lands in the content note as a callout with an
inline citation; the record lands in a per-source reference note (created
on first sight) together with a backlink to the quote.

Input comes from the system clipboard by default; use --stdin or --file
on headless systems.`,
	RunE: runPaste,
}

func runPaste(cmd *cobra.Command, args []string) error {
	root, cfg := openVault()

	if pasteFile == "" && !pasteStdin && !clip.IsAvailable() {
		exitWithError(ExitError, "no clipboard tool found; use --stdin or --file")
	}

	text, err := readPasteInput()
	if err != nil {
		if errors.Is(err, clip.ErrClipboardUnavailable) {
			exitWithError(ExitError, "clipboard unavailable; use --stdin or --file")
		}
		exitWithError(ExitError, "reading pasted text: %v", err)
	}

	counters, err := counter.OpenDB(config.CountersPath(root))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer counters.Close()

	pipeline := &cite.Pipeline{
		Vault:    vault.New(root),
		Config:   cfg,
		Counters: counters,
	}

	res, err := pipeline.Paste(text, pasteNote)
	if err != nil {
		switch {
		case errors.Is(err, cite.ErrNoEntry):
			exitWithError(ExitDataError, "no citation entry found in pasted text")
		case errors.Is(err, bibtex.ErrMissingCiteKey):
			exitWithError(ExitDataError, "%v", err)
		default:
			exitWithError(ExitError, "%v", err)
		}
	}

	if humanOutput {
		outputHuman("Cited %s in %s\n", res.CiteKey, pasteNote)
		if res.RefCreated {
			outputHuman("  reference: %s (created)\n", res.RefNote)
		} else {
			outputHuman("  reference: %s\n", res.RefNote)
		}
		outputHuman("  block: ^%s\n", res.BlockID)
	} else {
		outputJSON(res)
	}

	return nil
}

// readPasteInput returns the pasted text from the selected source.
func readPasteInput() (string, error) {
	if pasteFile != "" {
		data, err := os.ReadFile(pasteFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if pasteStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return clip.Read()
}
