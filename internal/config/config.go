// Package config handles vault discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skalder/refnote/internal/style"
)

// Config is the vault configuration stored in .refnote/config.yml.
type Config struct {
	// ReferenceFolder is the vault-relative folder holding reference
	// notes. Empty means the vault root.
	ReferenceFolder string `yaml:"reference_folder,omitempty"`
	// BibliographyFormat selects the citation style. Defaults to latex.
	BibliographyFormat string `yaml:"bibliography_format,omitempty"`
	// CitationCallout is the callout type label for quoted blocks.
	CitationCallout string `yaml:"citation_callout,omitempty"`
}

const (
	RefnoteDir   = ".refnote"
	ConfigFile   = "config.yml"
	CountersFile = "counters.db"

	DefaultFormat  = "latex"
	DefaultCallout = "Logos Ref"
)

// RefnotePath returns the path to the .refnote directory from a vault root.
func RefnotePath(root string) string {
	return filepath.Join(root, RefnoteDir)
}

// ConfigPath returns the path to config.yml from a vault root.
func ConfigPath(root string) string {
	return filepath.Join(root, RefnoteDir, ConfigFile)
}

// CountersPath returns the path to the counter database from a vault root.
func CountersPath(root string) string {
	return filepath.Join(root, RefnoteDir, CountersFile)
}

// IsVault checks if the given path contains an initialized vault.
func IsVault(root string) bool {
	info, err := os.Stat(RefnotePath(root))
	return err == nil && info.IsDir()
}

// FindVault walks up from the given path to find an initialized vault.
// Returns the vault root path or an error if not found.
func FindVault(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsVault(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a refnote vault (no .refnote directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the vault at the given root. A missing
// config file yields the defaults; REFNOTE_* environment variables
// override file values.
func Load(root string) (*Config, error) {
	cfg := &Config{
		BibliographyFormat: DefaultFormat,
		CitationCallout:    DefaultCallout,
	}

	data, err := os.ReadFile(ConfigPath(root))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.BibliographyFormat == "" {
		cfg.BibliographyFormat = DefaultFormat
	}
	if cfg.CitationCallout == "" {
		cfg.CitationCallout = DefaultCallout
	}

	if err := ValidateFormat(cfg.BibliographyFormat); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays REFNOTE_* environment variables on a config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("REFNOTE_REFERENCE_FOLDER"); v != "" {
		cfg.ReferenceFolder = v
	}
	if v := os.Getenv("REFNOTE_BIBLIOGRAPHY_FORMAT"); v != "" {
		cfg.BibliographyFormat = v
	}
	if v := os.Getenv("REFNOTE_CITATION_CALLOUT"); v != "" {
		cfg.CitationCallout = v
	}
}

// Save writes configuration to the vault at the given root.
func (c *Config) Save(root string) error {
	if err := os.MkdirAll(RefnotePath(root), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", RefnoteDir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Style returns the configured citation style. Load has already validated
// the format, so an unparseable value can only mean a hand-edited struct;
// fall back to latex.
func (c *Config) Style() style.Style {
	s, err := style.Parse(c.BibliographyFormat)
	if err != nil {
		return style.Latex
	}
	return s
}

// ValidateFormat checks that the format value names a known style.
func ValidateFormat(format string) error {
	_, err := style.Parse(format)
	return err
}
