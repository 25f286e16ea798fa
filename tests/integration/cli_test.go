// Package integration provides end-to-end tests for refnote commands.
package integration

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	refnoteBinary     string
	refnoteBinaryOnce sync.Once
	refnoteBinaryErr  error
)

// getRefnoteBinary builds the refnote binary once and returns its path.
func getRefnoteBinary(t *testing.T) string {
	t.Helper()
	refnoteBinaryOnce.Do(func() {
		// Get module root directory
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			refnoteBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		// Build refnote to a temp location
		tmpDir, err := os.MkdirTemp("", "refnote-test-*")
		if err != nil {
			refnoteBinaryErr = err
			return
		}
		refnoteBinary = filepath.Join(tmpDir, "refnote")

		cmd := exec.Command("go", "build", "-o", refnoteBinary, "./cmd/refnote")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			refnoteBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if refnoteBinaryErr != nil {
		t.Fatalf("failed to build refnote: %v", refnoteBinaryErr)
	}
	return refnoteBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// setupVault creates an initialized vault with a reference folder configured.
func setupVault(t *testing.T) string {
	t.Helper()
	vaultDir := t.TempDir()

	if out, err := runRefnote(t, vaultDir, "", "init"); err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, out)
	}
	if out, err := runRefnote(t, vaultDir, "", "config", "reference-folder", "refs"); err != nil {
		t.Fatalf("config set failed: %v\nOutput: %s", err, out)
	}

	return vaultDir
}

// runRefnote executes the refnote command in vaultDir, feeding stdin when
// non-empty, and returns combined output.
func runRefnote(t *testing.T, vaultDir, stdin string, args ...string) (string, error) {
	t.Helper()
	bin := getRefnoteBinary(t)
	cmd := exec.Command(bin, args...)
	cmd.Dir = vaultDir
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// exitCode extracts the process exit code from an exec error.
func exitCode(err error) int {
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode()
	}
	return -1
}

const pastedQuote = `The Messiah's faithfulness is the climax of the covenant.

@book{Wright2013,
  author = {Wright, N. T.},
  title = {Paul and the Faithfulness of God},
  pages = {123},
  publisher = {Fortress Press},
  year = {2013},
}`

func TestPasteCreatesNotes(t *testing.T) {
	vaultDir := setupVault(t)

	output, err := runRefnote(t, vaultDir, pastedQuote,
		"paste", "--stdin", "--note", "Romans Study")
	if err != nil {
		t.Fatalf("paste failed: %v\nOutput: %s", err, output)
	}

	var res struct {
		CiteKey    string `json:"citekey"`
		RefNote    string `json:"ref_note"`
		RefCreated bool   `json:"ref_created"`
		BlockID    string `json:"block_id"`
	}
	if err := json.Unmarshal([]byte(output), &res); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	if res.CiteKey != "Wright2013" || !res.RefCreated || res.BlockID != "Wright2013-1" {
		t.Errorf("unexpected paste result: %+v", res)
	}

	ref, err := os.ReadFile(filepath.Join(vaultDir, "refs", "Wright2013.md"))
	if err != nil {
		t.Fatalf("reference note not created: %v", err)
	}
	if !strings.Contains(string(ref), "citekey: Wright2013") {
		t.Errorf("reference note missing metadata:\n%s", ref)
	}

	content, err := os.ReadFile(filepath.Join(vaultDir, "Romans Study.md"))
	if err != nil {
		t.Fatalf("content note not created: %v", err)
	}
	if !strings.Contains(string(content), "^Wright2013-1") {
		t.Errorf("content note missing block anchor:\n%s", content)
	}
}

func TestBlockIDsPersistAcrossInvocations(t *testing.T) {
	vaultDir := setupVault(t)

	if out, err := runRefnote(t, vaultDir, pastedQuote, "paste", "--stdin", "--note", "Romans Study"); err != nil {
		t.Fatalf("first paste failed: %v\nOutput: %s", err, out)
	}
	output, err := runRefnote(t, vaultDir, pastedQuote, "paste", "--stdin", "--note", "Romans Study")
	if err != nil {
		t.Fatalf("second paste failed: %v\nOutput: %s", err, output)
	}

	// Each invocation is a fresh process, so the suffix must come from the
	// counter database and not process memory.
	if !strings.Contains(output, `"block_id": "Wright2013-2"`) {
		t.Errorf("second paste should mint suffix 2, got: %s", output)
	}
}

func TestPasteWithoutEntryIsDataError(t *testing.T) {
	vaultDir := setupVault(t)

	output, err := runRefnote(t, vaultDir, "just a quote with no record",
		"paste", "--stdin", "--note", "Romans Study")
	if err == nil {
		t.Fatalf("paste without entry should fail, got: %s", output)
	}
	if code := exitCode(err); code != 3 {
		t.Errorf("exit code = %d, want 3\nOutput: %s", code, output)
	}
}

func TestBibAndExport(t *testing.T) {
	vaultDir := setupVault(t)

	if out, err := runRefnote(t, vaultDir, pastedQuote, "paste", "--stdin", "--note", "Romans Study"); err != nil {
		t.Fatalf("paste failed: %v\nOutput: %s", err, out)
	}

	output, err := runRefnote(t, vaultDir, "", "bib", "--note", "Romans Study")
	if err != nil {
		t.Fatalf("bib failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, `"entries": 1`) {
		t.Errorf("bib should report one entry, got: %s", output)
	}

	content, _ := os.ReadFile(filepath.Join(vaultDir, "Romans Study.md"))
	if !strings.Contains(string(content), "## Bibliography") {
		t.Errorf("note missing bibliography section:\n%s", content)
	}

	output, err = runRefnote(t, vaultDir, "", "export", "--out", "references.bib")
	if err != nil {
		t.Fatalf("export failed: %v\nOutput: %s", err, output)
	}
	exported, err := os.ReadFile(filepath.Join(vaultDir, "references.bib"))
	if err != nil {
		t.Fatalf("exported file not created: %v", err)
	}
	if !strings.Contains(string(exported), "@book{Wright2013,") {
		t.Errorf("export missing entry:\n%s", exported)
	}
}

func TestExportWithoutReferenceFolderIsConfigError(t *testing.T) {
	vaultDir := setupVault(t)

	output, err := runRefnote(t, vaultDir, "", "export")
	if err == nil {
		t.Fatalf("export without reference folder should fail, got: %s", output)
	}
	if code := exitCode(err); code != 2 {
		t.Errorf("exit code = %d, want 2\nOutput: %s", code, output)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	vaultDir := setupVault(t)

	if out, err := runRefnote(t, vaultDir, "", "config", "bibliography-format", "mla"); err != nil {
		t.Fatalf("config set failed: %v\nOutput: %s", err, out)
	}
	output, err := runRefnote(t, vaultDir, "", "config", "bibliography-format", "--human")
	if err != nil {
		t.Fatalf("config get failed: %v\nOutput: %s", err, output)
	}
	if strings.TrimSpace(output) != "mla" {
		t.Errorf("bibliography-format = %q, want %q", strings.TrimSpace(output), "mla")
	}

	output, err = runRefnote(t, vaultDir, "", "config", "bibliography-format", "bogus")
	if err == nil {
		t.Fatalf("setting unknown format should fail, got: %s", output)
	}
}
