// Package vault provides the file primitives the citation pipeline runs
// against: read a note, write a note, list a folder. Notes are markdown
// files addressed by vault-relative paths, with the .md extension implied.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// Vault is a directory tree of markdown notes.
type Vault struct {
	root string
}

// New creates a vault rooted at the given directory.
func New(root string) *Vault {
	return &Vault{root: root}
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// notePath maps a vault-relative note name to an absolute file path,
// appending .md when absent.
func (v *Vault) notePath(name string) string {
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	return filepath.Join(v.root, filepath.FromSlash(name))
}

// ReadNote returns the text of a note.
func (v *Vault) ReadNote(name string) (string, error) {
	data, err := os.ReadFile(v.notePath(name))
	if err != nil {
		return "", fmt.Errorf("reading note %s: %w", name, err)
	}
	return string(data), nil
}

// WriteNote writes the text of a note atomically, creating parent folders
// as needed. A failed write never leaves a truncated note behind.
func (v *Vault) WriteNote(name, text string) error {
	path := v.notePath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating folder for %s: %w", name, err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("writing note %s: %w", name, err)
	}
	return nil
}

// NoteExists reports whether a note exists.
func (v *Vault) NoteExists(name string) bool {
	info, err := os.Stat(v.notePath(name))
	return err == nil && !info.IsDir()
}

// FolderExists reports whether a vault-relative folder exists. The empty
// folder is the vault root and always exists.
func (v *Vault) FolderExists(folder string) bool {
	if folder == "" {
		return true
	}
	info, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(folder)))
	return err == nil && info.IsDir()
}

// EnsureFolder creates a vault-relative folder if it does not exist.
func (v *Vault) EnsureFolder(folder string) error {
	if folder == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Join(v.root, filepath.FromSlash(folder)), 0755); err != nil {
		return fmt.Errorf("creating folder %s: %w", folder, err)
	}
	return nil
}

// List returns the vault-relative paths of the markdown notes directly
// inside a folder, sorted by name.
func (v *Vault) List(folder string) ([]string, error) {
	dir := filepath.Join(v.root, filepath.FromSlash(folder))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing folder %s: %w", folder, err)
	}

	var notes []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		notes = append(notes, joinSlash(folder, entry.Name()))
	}
	sort.Strings(notes)
	return notes, nil
}

// WriteFile writes a non-note artifact (such as an exported .bib file)
// atomically at a vault-relative path.
func (v *Vault) WriteFile(name, text string) error {
	path := filepath.Join(v.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating folder for %s: %w", name, err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Basename returns a note's display name: the final path element without
// the .md extension. This is the form used in wikilinks.
func Basename(name string) string {
	base := name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ".md")
}

// joinSlash joins vault-relative path elements with forward slashes,
// skipping empty elements.
func joinSlash(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// Join builds a vault-relative path from elements.
func Join(parts ...string) string {
	return joinSlash(parts...)
}
