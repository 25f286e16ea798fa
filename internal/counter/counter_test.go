package counter

import (
	"path/filepath"
	"testing"
)

func TestMemory_StartsAtOneAndIncrements(t *testing.T) {
	m := NewMemory()

	for want := 1; want <= 3; want++ {
		got, err := m.Next("Quotes")
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestMemory_IndependentPerNote(t *testing.T) {
	m := NewMemory()

	if n, _ := m.Next("A"); n != 1 {
		t.Errorf("Next(A) = %d, want 1", n)
	}
	if n, _ := m.Next("B"); n != 1 {
		t.Errorf("Next(B) = %d, want 1", n)
	}
	if n, _ := m.Next("A"); n != 2 {
		t.Errorf("Next(A) = %d, want 2", n)
	}
}

func TestDB_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counters.db")

	d, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() error: %v", err)
	}
	if n, err := d.Next("Quotes"); err != nil || n != 1 {
		t.Fatalf("Next() = %d, %v, want 1, nil", n, err)
	}
	if n, err := d.Next("Quotes"); err != nil || n != 2 {
		t.Fatalf("Next() = %d, %v, want 2, nil", n, err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Suffixes continue where the previous process stopped: no reuse.
	d, err = OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() reopen error: %v", err)
	}
	defer d.Close()
	if n, err := d.Next("Quotes"); err != nil || n != 3 {
		t.Errorf("Next() after reopen = %d, %v, want 3, nil", n, err)
	}
}
