package buffer_test

import (
	"os"
	"testing"

	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/options"
	"github.com/Release-Candidate/go-modal-editor/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuf(t *testing.T) *buffer.Buffer {
	t.Helper()

	return buffer.New(options.NewRegistry())
}

func TestEmptyBufferIsNewline(t *testing.T) {
	t.Parallel()

	b := newBuf(t)

	assert.Equal(t, "\n", b.Text.String())
}

func TestUndoGroupingInsertTwice(t *testing.T) {
	t.Parallel()

	b := newBuf(t)
	b.StartActionGroup()
	require.NoError(t, b.DoInsert(0, []byte("world")))
	require.NoError(t, b.DoInsert(0, []byte("hello, ")))

	assert.Equal(t, "hello, world\n", b.Text.String())

	cursor, ok := b.Undo()
	assert.True(t, ok)
	assert.Equal(t, "\n", b.Text.String())
	assert.Equal(t, 0, cursor)

	_, ok = b.Redo()
	assert.True(t, ok)
	assert.Equal(t, "hello, world\n", b.Text.String())
}

func TestUndoRedoRoundTripRestoresExactContent(t *testing.T) {
	t.Parallel()

	b := newBuf(t)
	initial := b.Text.String()

	b.StartActionGroup()
	require.NoError(t, b.DoInsert(0, []byte("abc")))
	b.StartActionGroup()
	require.NoError(t, b.DoDelete(1, 1))
	b.StartActionGroup()
	require.NoError(t, b.DoInsert(b.Text.Size()-1, []byte("xyz")))
	final := b.Text.String()

	for {
		if _, ok := b.Undo(); !ok {
			break
		}
	}
	assert.Equal(t, initial, b.Text.String())

	for {
		if _, ok := b.Redo(); !ok {
			break
		}
	}
	assert.Equal(t, final, b.Text.String())
}

func TestMarksShiftOnInsertAndDelete(t *testing.T) {
	t.Parallel()

	b := newBuf(t)
	require.NoError(t, b.DoInsert(0, []byte("hello world")))
	b.SetMark("a", 6, 11)

	require.NoError(t, b.DoInsert(0, []byte("XX")))
	m, ok := b.GetMark("a")
	require.True(t, ok)
	assert.Equal(t, 8, m.Start)
	assert.Equal(t, 13, m.End)

	require.NoError(t, b.DoDelete(0, 2))
	m, _ = b.GetMark("a")
	assert.Equal(t, 6, m.Start)
	assert.Equal(t, 11, m.End)
}

func TestMarkClampsWhenDeletionCoversEndpoint(t *testing.T) {
	t.Parallel()

	b := newBuf(t)
	require.NoError(t, b.DoInsert(0, []byte("hello world")))
	b.SetMark("a", 2, 8)

	require.NoError(t, b.DoDelete(1, 10))
	m, _ := b.GetMark("a")
	assert.Equal(t, 1, m.Start)
	assert.Equal(t, 1, m.End)
}

func TestNotModifiableBlocksEdits(t *testing.T) {
	t.Parallel()

	b := newBuf(t)
	b.ReadOnly = true

	err := b.DoInsert(0, []byte("x"))
	assert.ErrorIs(t, err, buffer.ErrNotModifiable)
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := dir + "/f.txt"
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

	s := storage.New()
	b, err := buffer.Load(s, path, options.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", b.Text.String())

	require.NoError(t, b.DoInsert(5, []byte("!")))
	assert.True(t, b.Dirty)

	require.NoError(t, b.Save(s))
	assert.False(t, b.Dirty)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello!\n", string(data))
}
