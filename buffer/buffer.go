// Package buffer layers marks, undo/redo, and persistence on top of a
// gapbuffer.GapBuffer.
package buffer

import (
	"errors"
	"fmt"

	"github.com/Release-Candidate/go-modal-editor/gapbuffer"
	"github.com/Release-Candidate/go-modal-editor/options"
	"github.com/Release-Candidate/go-modal-editor/storage"
)

// Sentinel errors surfaced via the status line.
var (
	ErrIoError       = errors.New("io error")
	ErrNotModifiable = errors.New("not modifiable")
)

// actionKind tags an EditAction.
type actionKind int

const (
	// ActionInsert records bytes inserted at pos.
	ActionInsert actionKind = iota
	// ActionDelete records bytes deleted starting at pos.
	ActionDelete
)

// EditAction is one recorded mutation, exact enough to invert.
type EditAction struct {
	Kind  actionKind
	Pos   int
	Bytes []byte
}

// ActionGroup is an atomic sequence of EditActions for undo/redo.
type ActionGroup []EditAction

// Mark is a registered, auto-shifting byte range.
type Mark struct {
	Start, End int
}

// Buffer owns a GapBuffer plus editing metadata: path, dirty/readonly
// flags, marks, and the undo/redo stacks of ActionGroups.
type Buffer struct {
	Text *gapbuffer.GapBuffer

	path     string
	Dirty    bool
	ReadOnly bool

	marks      map[string]*Mark
	undoStack  []ActionGroup
	redoStack  []ActionGroup
	curGroup   *ActionGroup
	groupDepth int

	Options *options.Scope
}

// New creates an empty buffer with no path.
func New(editorOpts *options.Registry) *Buffer {
	return &Buffer{
		Text:    gapbuffer.New(),
		marks:   make(map[string]*Mark),
		Options: editorOpts.NewBufferScope(),
	}
}

// Load creates a buffer from the contents of path via s, or returns
// ErrIoError wrapping the underlying failure.
func Load(s storage.Storage, path string, editorOpts *options.Registry) (*Buffer, error) {
	data, err := s.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIoError, err)
	}

	b := &Buffer{
		Text:    gapbuffer.NewFromString(string(data)),
		path:    path,
		marks:   make(map[string]*Mark),
		Options: editorOpts.NewBufferScope(),
	}

	return b, nil
}

// Path returns the buffer's associated file path, "" if none.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath sets the buffer's associated path (used by :w path / :e path).
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Save writes the buffer to its current path, requiring one be set.
func (b *Buffer) Save(s storage.Storage) error {
	if b.path == "" {
		return fmt.Errorf("%w: no file name", ErrIoError)
	}

	return b.SaveAs(s, b.path)
}

// SaveAs writes the buffer to path and clears the dirty flag.
func (b *Buffer) SaveAs(s storage.Storage, path string) error {
	if err := s.Write(path, []byte(b.Text.String())); err != nil {
		return fmt.Errorf("%w: %w", ErrIoError, err)
	}

	b.path = path
	b.Dirty = false

	return nil
}

// StartActionGroup pushes a new empty undo group and discards the redo
// stack, matching editor_start_action_group.
func (b *Buffer) StartActionGroup() {
	b.redoStack = nil
	group := make(ActionGroup, 0, 4)
	b.undoStack = append(b.undoStack, group)
	b.curGroup = &b.undoStack[len(b.undoStack)-1]
}

// DoInsert mutates the GapBuffer, records the action, shifts marks, and
// sets the dirty flag. Returns ErrNotModifiable if the buffer is
// read-only or options.Modifiable is false.
func (b *Buffer) DoInsert(pos int, bytes []byte) error {
	if b.ReadOnly || !b.Options.Modifiable() {
		return ErrNotModifiable
	}

	b.Text.Insert(pos, bytes)
	b.record(EditAction{Kind: ActionInsert, Pos: pos, Bytes: append([]byte(nil), bytes...)})
	b.shiftMarksInsert(pos, len(bytes))
	b.Dirty = true

	return nil
}

// DoDelete mutates the GapBuffer, records the action, shifts marks, and
// sets the dirty flag.
func (b *Buffer) DoDelete(pos, length int) error {
	if b.ReadOnly || !b.Options.Modifiable() {
		return ErrNotModifiable
	}

	if length <= 0 {
		return nil
	}

	deleted := b.Text.Substring(pos, length)
	b.Text.Delete(pos, length)
	b.record(EditAction{Kind: ActionDelete, Pos: pos, Bytes: deleted})
	b.shiftMarksDelete(pos, len(deleted))
	b.Dirty = true

	return nil
}

// record appends action to the current undo group, auto-starting one if
// none is open (single-shot changes outside an explicit insert session).
func (b *Buffer) record(action EditAction) {
	if b.curGroup == nil {
		b.StartActionGroup()
	}

	*b.curGroup = append(*b.curGroup, action)
}

// Undo pops the top undo group, replays its actions in reverse order using
// each action's inverse, and pushes the group onto the redo stack. Returns
// the cursor position to restore and whether there was anything to undo.
func (b *Buffer) Undo() (int, bool) {
	if len(b.undoStack) == 0 {
		return 0, false
	}

	group := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.curGroup = nil

	cursor := 0
	for i := len(group) - 1; i >= 0; i-- {
		action := group[i]
		switch action.Kind {
		case ActionInsert:
			b.Text.Delete(action.Pos, len(action.Bytes))
			b.shiftMarksDelete(action.Pos, len(action.Bytes))
		case ActionDelete:
			b.Text.Insert(action.Pos, action.Bytes)
			b.shiftMarksInsert(action.Pos, len(action.Bytes))
		}

		cursor = action.Pos
	}

	b.redoStack = append(b.redoStack, group)

	return cursor, true
}

// Redo pops the top redo group, replays its actions in original order, and
// pushes the group back onto the undo stack.
func (b *Buffer) Redo() (int, bool) {
	if len(b.redoStack) == 0 {
		return 0, false
	}

	group := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]

	cursor := 0
	for _, action := range group {
		switch action.Kind {
		case ActionInsert:
			b.Text.Insert(action.Pos, action.Bytes)
			b.shiftMarksInsert(action.Pos, len(action.Bytes))
			cursor = action.Pos + len(action.Bytes)
		case ActionDelete:
			b.Text.Delete(action.Pos, len(action.Bytes))
			b.shiftMarksDelete(action.Pos, len(action.Bytes))
			cursor = action.Pos
		}
	}

	b.undoStack = append(b.undoStack, group)
	b.Dirty = len(group) > 0

	return cursor, true
}

// SetMark registers (or replaces) a named mark.
func (b *Buffer) SetMark(name string, start, end int) {
	b.marks[name] = &Mark{Start: start, End: end}
}

// GetMark returns the named mark and whether it exists.
func (b *Buffer) GetMark(name string) (Mark, bool) {
	m, ok := b.marks[name]
	if !ok {
		return Mark{}, false
	}

	return *m, true
}

// shiftMarksInsert shifts mark endpoints for an insert of length L at
// position p: any endpoint e >= p shifts by L.
func (b *Buffer) shiftMarksInsert(pos, length int) {
	for _, m := range b.marks {
		if m.Start >= pos {
			m.Start += length
		}

		if m.End >= pos {
			m.End += length
		}
	}
}

// shiftMarksDelete shifts mark endpoints for a delete of [p, p+L):
// endpoints inside the deletion clamp to p; endpoints at or after p+L
// shift by -L.
func (b *Buffer) shiftMarksDelete(pos, length int) {
	end := pos + length

	for _, m := range b.marks {
		m.Start = shiftOneDelete(m.Start, pos, end)
		m.End = shiftOneDelete(m.End, pos, end)
	}
}

func shiftOneDelete(e, pos, end int) int {
	switch {
	case e < pos:
		return e
	case e < end:
		return pos
	default:
		return e - (end - pos)
	}
}
