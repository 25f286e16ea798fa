// Package counter mints monotonic per-note block identifier suffixes.
//
// The counter is the only state shared across paste operations. It is
// always an explicit store handed to the pipeline, never package state,
// and an increment is committed before the corresponding note write so a
// failed write can at worst leak an identifier, never reuse a live one.
package counter

// Store assigns the next integer suffix for a note. Values start at 1 for
// a never-seen note and increase by exactly 1 per call; a suffix is never
// handed out twice.
type Store interface {
	Next(noteID string) (int, error)
}

// Memory is an in-process Store for tests and dry runs.
type Memory struct {
	last map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{last: make(map[string]int)}
}

// Next assigns the next suffix for a note.
func (m *Memory) Next(noteID string) (int, error) {
	m.last[noteID]++
	return m.last[noteID], nil
}
