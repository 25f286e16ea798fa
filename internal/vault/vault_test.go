package vault

import (
	"testing"
)

func TestWriteReadNote(t *testing.T) {
	v := New(t.TempDir())

	if err := v.WriteNote("refs/Wright2013", "# hello\n"); err != nil {
		t.Fatalf("WriteNote() error: %v", err)
	}

	got, err := v.ReadNote("refs/Wright2013")
	if err != nil {
		t.Fatalf("ReadNote() error: %v", err)
	}
	if got != "# hello\n" {
		t.Errorf("ReadNote() = %q, want %q", got, "# hello\n")
	}

	// The .md extension may be given explicitly or left implied.
	got, err = v.ReadNote("refs/Wright2013.md")
	if err != nil {
		t.Fatalf("ReadNote() with extension error: %v", err)
	}
	if got != "# hello\n" {
		t.Errorf("ReadNote() with extension = %q", got)
	}
}

func TestNoteExists(t *testing.T) {
	v := New(t.TempDir())

	if v.NoteExists("missing") {
		t.Error("NoteExists() = true for missing note")
	}
	if err := v.WriteNote("present", "x"); err != nil {
		t.Fatalf("WriteNote() error: %v", err)
	}
	if !v.NoteExists("present") {
		t.Error("NoteExists() = false for written note")
	}
}

func TestList(t *testing.T) {
	v := New(t.TempDir())

	for _, name := range []string{"refs/B", "refs/A", "refs/sub/C"} {
		if err := v.WriteNote(name, "x"); err != nil {
			t.Fatalf("WriteNote(%s) error: %v", name, err)
		}
	}
	if err := v.WriteFile("refs/not-a-note.txt", "x"); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := v.List("refs")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"refs/A.md", "refs/B.md"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestList_MissingFolder(t *testing.T) {
	v := New(t.TempDir())

	if _, err := v.List("nowhere"); err == nil {
		t.Error("List() should fail for a missing folder")
	}
}

func TestFolderExists(t *testing.T) {
	v := New(t.TempDir())

	if !v.FolderExists("") {
		t.Error("FolderExists(\"\") = false, want true (vault root)")
	}
	if v.FolderExists("refs") {
		t.Error("FolderExists(refs) = true before creation")
	}
	if err := v.EnsureFolder("refs"); err != nil {
		t.Fatalf("EnsureFolder() error: %v", err)
	}
	if !v.FolderExists("refs") {
		t.Error("FolderExists(refs) = false after EnsureFolder")
	}
}

func TestBasename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"refs/Wright2013.md", "Wright2013"},
		{"refs/Wright2013", "Wright2013"},
		{"Wright2013", "Wright2013"},
		{"a/b/c.md", "c"},
	}
	for _, c := range cases {
		if got := Basename(c.in); got != c.want {
			t.Errorf("Basename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
