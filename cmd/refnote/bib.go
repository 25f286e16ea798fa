package main

import (
	"github.com/spf13/cobra"

	"github.com/skalder/refnote/internal/cite"
	"github.com/skalder/refnote/internal/counter"
	"github.com/skalder/refnote/internal/vault"
)

var bibNote string

func init() {
	rootCmd.AddCommand(bibCmd)
	bibCmd.Flags().StringVar(&bibNote, "note", "", "Content note whose bibliography to regenerate (required)")
	bibCmd.MarkFlagRequired("note")
}

var bibCmd = &cobra.Command{
	Use:   "bib",
	Short: "Regenerate a note's bibliography section",
	Long: `Regenerate the Bibliography section of a content note.

The section is rebuilt from the reference notes the note's quote callouts
link to, rendered in the configured bibliography format. Reference notes
that cannot be read or hold no citation record are skipped; re-running
with unchanged inputs leaves the note untouched.`,
	RunE: runBib,
}

func runBib(cmd *cobra.Command, args []string) error {
	root, cfg := openVault()

	pipeline := &cite.Pipeline{
		Vault:    vault.New(root),
		Config:   cfg,
		Counters: counter.NewMemory(),
	}

	res, err := pipeline.Bibliography(bibNote)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Bibliography of %s: %d entries", bibNote, res.Entries)
		if res.Fallback > 0 {
			outputHuman(" (%d fallback)", res.Fallback)
		}
		outputHuman("\n")
		for _, target := range res.Skipped {
			outputHuman("  skipped: %s\n", target)
		}
		if !res.Changed {
			outputHuman("  already up to date\n")
		}
	} else {
		outputJSON(res)
	}

	return nil
}
