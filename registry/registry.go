// Package registry implements the editor's fixed register table
// : named single-letter registers a-z, the unnamed register
// ", the last-search register /, and the clipboard-backed * and +
// registers.
package registry

import "github.com/atotto/clipboard"

// ClipboardSync is the subset of github.com/atotto/clipboard's API the
// table needs; letting tests substitute a fake avoids touching the real
// system clipboard.
type ClipboardSync interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type osClipboard struct{}

func (osClipboard) ReadAll() (string, error)    { return clipboard.ReadAll() }
func (osClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Table is the register table owned by the Editor.
type Table struct {
	slots     map[byte]string
	clipboard ClipboardSync
}

// New returns an empty table backed by the real system clipboard for the
// "* and "+ registers.
func New() *Table {
	return &Table{slots: make(map[byte]string), clipboard: osClipboard{}}
}

// NewWithClipboard returns a table backed by a caller-supplied clipboard,
// used by tests.
func NewWithClipboard(c ClipboardSync) *Table {
	return &Table{slots: make(map[byte]string), clipboard: c}
}

// Get returns an owned copy of the named register's contents.
func (t *Table) Get(name byte) string {
	if name == '*' || name == '+' {
		text, err := t.clipboard.ReadAll()
		if err != nil {
			return ""
		}

		return text
	}

	return t.slots[name]
}

// Set replaces the named register's contents. Uppercase names (A-Z)
// append to the corresponding lowercase register instead of replacing it,
//
// since it falls out of the same Set path with no extra surface.
func (t *Table) Set(name byte, text string) {
	if name == '*' || name == '+' {
		_ = t.clipboard.WriteAll(text)

		return
	}

	if name >= 'A' && name <= 'Z' {
		lower := name + ('a' - 'A')
		t.slots[lower] += text

		return
	}

	t.slots[name] = text
}

// Yank writes text into both the unnamed register and, if name is
// non-zero, the named register too.
func (t *Table) Yank(name byte, text string) {
	t.slots['"'] = text
	if name != 0 {
		t.Set(name, text)
	}
}
