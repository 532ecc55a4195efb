package highscore

import (
	"strings"
	"unicode"
)

// Editor collects a name for one table entry.
type Editor struct {
	table  *Table
	index  int
	name   []rune
	closed bool
}

// Index returns the table row being edited.
func (e *Editor) Index() int {
	return e.index
}

// Name returns the name typed so far.
func (e *Editor) Name() string {
	return string(e.name)
}

// Done reports whether the name was confirmed.
func (e *Editor) Done() bool {
	return e.closed
}

// Type appends printable characters. Letters are upper-cased and anything
// outside ' '..'Z' is ignored.
func (e *Editor) Type(text string) {
	if e.closed {
		return
	}
	for _, r := range text {
		r = unicode.ToUpper(r)
		if r < ' ' || r > 'Z' {
			continue
		}
		if len(e.name) >= MaxName {
			return
		}
		e.name = append(e.name, r)
	}
}

// Backspace removes the last character.
func (e *Editor) Backspace() {
	if e.closed || len(e.name) == 0 {
		return
	}
	e.name = e.name[:len(e.name)-1]
}

// Confirm writes the name into the table and returns it. An empty or blank
// name becomes DefaultName.
func (e *Editor) Confirm() string {
	name := strings.TrimSpace(string(e.name))
	if name == "" {
		name = DefaultName
	}
	if !e.closed {
		e.table.entries[e.index].Name = name
		e.closed = true
	}
	return e.table.entries[e.index].Name
}
