// Package cite orchestrates the citation commands: pasting a quote with
// its entry into the vault, regenerating a content note's bibliography,
// and exporting the reference folder as a BibTeX file.
package cite

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/skalder/refnote/internal/bibtex"
	"github.com/skalder/refnote/internal/clip"
	"github.com/skalder/refnote/internal/config"
	"github.com/skalder/refnote/internal/counter"
	"github.com/skalder/refnote/internal/note"
	"github.com/skalder/refnote/internal/style"
	"github.com/skalder/refnote/internal/vault"
)

// ErrNoEntry is returned when pasted text carries no citation record.
var ErrNoEntry = errors.New("no citation entry found in pasted text")

// ErrReferenceFolderMissing is returned by the export path when the
// configured reference folder does not exist. The paste path instead
// creates the folder on demand.
var ErrReferenceFolderMissing = errors.New("reference folder does not exist")

// Pipeline wires the vault, configuration, and counter store together.
// Each operation computes every new note body in full before issuing any
// write.
type Pipeline struct {
	Vault    *vault.Vault
	Config   *config.Config
	Counters counter.Store
}

// PasteResult describes one completed paste operation.
type PasteResult struct {
	CiteKey    string `json:"citekey"`
	RefNote    string `json:"ref_note"`
	RefCreated bool   `json:"ref_created"`
	BlockID    string `json:"block_id"`
	Inline     string `json:"inline"`
	Page       string `json:"page,omitempty"`
}

// Paste runs one paste operation: split the pasted text, parse the entry,
// resolve the reference note, and insert the quote callout into the
// content note. Nothing is written when the entry has no citation key.
func (p *Pipeline) Paste(pasted, contentNote string) (*PasteResult, error) {
	parts := clip.Split(pasted)
	if parts.RawEntry == "" {
		return nil, ErrNoEntry
	}

	entry, err := bibtex.Parse(parts.RawEntry)
	if err != nil {
		return nil, err
	}

	st := p.Config.Style()
	inline := style.Inline(entry, parts.Page, st)

	refNote := vault.Join(p.Config.ReferenceFolder, entry.CiteKey)

	// The counter is persisted before any note write: a failure past this
	// point can waste an identifier but never reuse one.
	n, err := p.Counters.Next(contentNote)
	if err != nil {
		return nil, err
	}
	blockID := entry.CiteKey + "-" + strconv.Itoa(n)

	citationLine := note.CitationLine(vault.Basename(contentNote), blockID, parts.Page)

	created := false
	if p.Vault.NoteExists(refNote) {
		body, err := p.Vault.ReadNote(refNote)
		if err != nil {
			return nil, err
		}
		updated := note.UpsertCitation(body, citationLine)
		if updated != body {
			if err := p.Vault.WriteNote(refNote, updated); err != nil {
				return nil, err
			}
		}
	} else {
		if err := p.Vault.EnsureFolder(p.Config.ReferenceFolder); err != nil {
			return nil, err
		}
		if err := p.Vault.WriteNote(refNote, note.NewReference(entry, citationLine)); err != nil {
			return nil, err
		}
		created = true
	}

	callout := note.Callout(p.Config.CitationCallout, parts.MainText, refNote, inline, blockID)

	body := ""
	if p.Vault.NoteExists(contentNote) {
		body, err = p.Vault.ReadNote(contentNote)
		if err != nil {
			return nil, err
		}
	}
	if err := p.Vault.WriteNote(contentNote, note.AppendCallout(body, callout)); err != nil {
		return nil, err
	}

	return &PasteResult{
		CiteKey:    entry.CiteKey,
		RefNote:    refNote,
		RefCreated: created,
		BlockID:    blockID,
		Inline:     inline,
		Page:       parts.Page,
	}, nil
}

// BibResult describes one bibliography regeneration.
type BibResult struct {
	Entries  int      `json:"entries"`
	Fallback int      `json:"fallback"`
	Skipped  []string `json:"skipped,omitempty"`
	Changed  bool     `json:"changed"`
}

// Bibliography regenerates the content note's bibliography section from
// the reference notes its callouts link to. Unreadable or entry-less
// reference notes are skipped; the rest of the batch always completes.
func (p *Pipeline) Bibliography(contentNote string) (*BibResult, error) {
	body, err := p.Vault.ReadNote(contentNote)
	if err != nil {
		return nil, err
	}

	st := p.Config.Style()
	result := &BibResult{}

	var rendered []string
	for _, target := range note.RefLinks(body) {
		refBody, err := p.Vault.ReadNote(target)
		if err != nil {
			result.Skipped = append(result.Skipped, target)
			continue
		}
		entry, err := note.ExtractEntry(refBody)
		if err != nil || entry == nil {
			result.Skipped = append(result.Skipped, target)
			continue
		}

		r := style.Bibliography(entry, st)
		if r.Fallback {
			result.Fallback++
		}
		if st == style.Latex {
			rendered = append(rendered, "```bibtex\n"+r.Text+"\n```")
		} else {
			rendered = append(rendered, "- "+r.Text)
		}
		result.Entries++
	}

	list := joinRendered(rendered, st)
	updated := note.ReplaceBibliography(body, list)
	if updated != body {
		if err := p.Vault.WriteNote(contentNote, updated); err != nil {
			return nil, err
		}
		result.Changed = true
	}

	return result, nil
}

// ExportResult describes one export run.
type ExportResult struct {
	Entries int      `json:"entries"`
	Skipped []string `json:"skipped,omitempty"`
	Path    string   `json:"path"`
}

// Export serializes every entry in the reference folder into a single
// BibTeX artifact, one entry per reference note, joined by blank lines.
// Notes without a recognizable entry are skipped.
func (p *Pipeline) Export(outPath string) (*ExportResult, error) {
	folder := p.Config.ReferenceFolder
	if !p.Vault.FolderExists(folder) {
		return nil, fmt.Errorf("%w: %s", ErrReferenceFolderMissing, folder)
	}

	names, err := p.Vault.List(folder)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Path: outPath}
	var entries []string
	for _, name := range names {
		body, err := p.Vault.ReadNote(name)
		if err != nil {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		entry, err := note.ExtractEntry(body)
		if err != nil || entry == nil {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		entries = append(entries, bibtex.Serialize(entry))
		result.Entries++
	}

	content := ""
	if len(entries) > 0 {
		content = strings.Join(entries, "\n\n") + "\n"
	}
	if err := p.Vault.WriteFile(outPath, content); err != nil {
		return nil, err
	}

	return result, nil
}

// joinRendered joins rendered bibliography fragments: fenced latex blocks
// separate with blank lines, narrative list items stack directly.
func joinRendered(rendered []string, st style.Style) string {
	if st == style.Latex {
		return strings.Join(rendered, "\n\n")
	}
	return strings.Join(rendered, "\n")
}
