// Package highscore keeps the in-memory highscore table and its name entry.
package highscore

import "sort"

const (
	// Size is the number of entries kept in the table.
	Size = 8
	// MaxName is the longest name the editor accepts.
	MaxName = 15
	// DefaultName replaces an empty name.
	DefaultName = "ANONYMOUS"
)

// Entry is a single row of the table.
type Entry struct {
	Name   string
	Score  int
	Recent bool
}

// Table is a descending list of at most Size entries.
// The zero value is an empty table ready for use.
type Table struct {
	entries []Entry
}

// NewTable returns a table filled with placeholder scores Size..1.
func NewTable() *Table {
	t := &Table{}
	for i := range Size {
		t.entries = append(t.entries, Entry{Name: DefaultName, Score: Size - i})
	}
	return t
}

// Load merges persisted entries into the table and keeps the best Size.
// Placeholders are kept only where real scores do not fill the table.
func (t *Table) Load(entries []Entry) {
	for _, e := range entries {
		e.Recent = false
		t.entries = append(t.entries, e)
	}
	t.sortAndTrim()
}

// Submit inserts a score marked recent and returns its index, or -1 when it
// does not place. Earlier entries win ties.
func (t *Table) Submit(score int) int {
	for i := range t.entries {
		t.entries[i].Recent = false
	}
	t.entries = append(t.entries, Entry{Name: DefaultName, Score: score, Recent: true})
	t.sortAndTrim()

	for i, e := range t.entries {
		if e.Recent {
			return i
		}
	}
	return -1
}

func (t *Table) sortAndTrim() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if len(t.entries) > Size {
		clear(t.entries[Size:])
		t.entries = t.entries[:Size]
	}
}

// Entries returns a copy of the table rows.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Scores returns the scores in table order.
func (t *Table) Scores() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Score
	}
	return out
}

// Top returns the best score, or 0 for an empty table.
func (t *Table) Top() int {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[0].Score
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Recent returns the index of the entry added by the last Submit, or -1.
func (t *Table) Recent() int {
	for i, e := range t.entries {
		if e.Recent {
			return i
		}
	}
	return -1
}

// Edit starts name entry for the entry at index. It returns nil for an
// index outside the table.
func (t *Table) Edit(index int) *Editor {
	if index < 0 || index >= len(t.entries) {
		return nil
	}
	return &Editor{table: t, index: index}
}
