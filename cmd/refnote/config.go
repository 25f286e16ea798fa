package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/skalder/refnote/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set vault configuration values.

Usage:
  refnote config                              # Show all config
  refnote config bibliography-format          # Get specific value
  refnote config bibliography-format mla      # Set value

Keys:
  reference-folder     Vault-relative folder for reference notes
  bibliography-format  Citation style (latex, mla, apa, chicago)
  citation-callout     Callout type label for quoted blocks`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root, cfg := openVault()

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			outputHuman("reference-folder:    %s\n", cfg.ReferenceFolder)
			outputHuman("bibliography-format: %s\n", cfg.BibliographyFormat)
			outputHuman("citation-callout:    %s\n", cfg.CitationCallout)
		} else {
			outputJSON(ConfigResponse{
				ReferenceFolder:    cfg.ReferenceFolder,
				BibliographyFormat: cfg.BibliographyFormat,
				CitationCallout:    cfg.CitationCallout,
			})
		}
		return nil
	}

	key := args[0]
	normalizedKey := normalizeKey(key)

	// One arg: get specific value
	if len(args) == 1 {
		switch normalizedKey {
		case "reference-folder":
			printValue("reference_folder", cfg.ReferenceFolder)
		case "bibliography-format":
			printValue("bibliography_format", cfg.BibliographyFormat)
		case "citation-callout":
			printValue("citation_callout", cfg.CitationCallout)
		default:
			exitWithError(ExitError, "unknown configuration key: %s", key)
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch normalizedKey {
	case "reference-folder":
		cfg.ReferenceFolder = strings.Trim(value, "/")

	case "bibliography-format":
		if err := config.ValidateFormat(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.BibliographyFormat = value

	case "citation-callout":
		if strings.TrimSpace(value) == "" {
			exitWithError(ExitError, "citation-callout must not be empty")
		}
		cfg.CitationCallout = value

	default:
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		outputHuman("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    normalizedKey,
			Value:  value,
		})
	}

	return nil
}

// printValue prints one config value in the selected output format.
func printValue(jsonKey, value string) {
	if humanOutput {
		outputHuman("%s\n", value)
	} else {
		outputJSON(map[string]string{jsonKey: value})
	}
}

// normalizeKey converts key formats (reference-folder, reference_folder) to consistent form.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
