// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     editor_test.go
//
// =============================================================================

package editor_test

import (
	"io"
	"os"
	"testing"

	"github.com/Release-Candidate/go-modal-editor/editor"
	"github.com/Release-Candidate/go-modal-editor/mode"
	"github.com/Release-Candidate/go-modal-editor/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor() *editor.Editor {
	return editor.New(80, 24, storage.New(), io.Discard)
}

func TestQuitOnLastWindowSetsShouldQuit(t *testing.T) {
	t.Parallel()

	e := newEditor()
	e.Execute("q")
	assert.True(t, e.ShouldQuit())
}

func TestQuitWithUnsavedChangesIsRefusedWithoutBang(t *testing.T) {
	t.Parallel()

	e := newEditor()
	require.NoError(t, e.Buffer().DoInsert(0, []byte("x")))

	e.Execute("q")
	assert.False(t, e.ShouldQuit())

	status, isErr := e.Status()
	assert.True(t, isErr)
	assert.NotEmpty(t, status)

	e.Execute("q!")
	assert.True(t, e.ShouldQuit())
}

func TestWriteSavesBufferToPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := dir + "/out.txt"

	e := newEditor()
	require.NoError(t, e.Buffer().DoInsert(0, []byte("hello")))

	e.Execute("w " + path)

	_, isErr := e.Status()
	assert.False(t, isErr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestEditOpensAnotherFileInCurrentWindow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := dir + "/other.txt"
	require.NoError(t, os.WriteFile(path, []byte("other content\n"), 0o644))

	e := newEditor()
	e.Execute("e " + path)

	_, isErr := e.Status()
	assert.False(t, isErr)
	assert.Equal(t, "other content\n", e.Buffer().Text.String())
	assert.Equal(t, path, e.Buffer().Path())
}

func TestSplitCreatesASecondLeaf(t *testing.T) {
	t.Parallel()

	e := newEditor()
	before := len(e.Windows().Leaves(e.Windows().Root()))

	e.Execute("split")

	after := len(e.Windows().Leaves(e.Windows().Root()))
	assert.Equal(t, before+1, after)
}

func TestSetTogglesBooleanOption(t *testing.T) {
	t.Parallel()

	e := newEditor()
	assert.False(t, e.Buffer().Options.Number())

	e.Execute("set number")
	assert.True(t, e.Buffer().Options.Number())

	e.Execute("set nonumber")
	assert.False(t, e.Buffer().Options.Number())
}

func TestSetShiftwidthParsesInteger(t *testing.T) {
	t.Parallel()

	e := newEditor()
	e.Execute("set shiftwidth=4")
	assert.Equal(t, 4, e.Buffer().Options.ShiftWidth())
}

func TestSetUnknownOptionReportsError(t *testing.T) {
	t.Parallel()

	e := newEditor()
	e.Execute("set nosuchoption")

	_, isErr := e.Status()
	assert.True(t, isErr)
}

func TestPwdReportsCurrentDirectory(t *testing.T) {
	t.Parallel()

	e := newEditor()
	e.Execute("pwd")

	status, isErr := e.Status()
	assert.False(t, isErr)
	assert.NotEmpty(t, status)
}

func TestCdChangesReportedDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	e := newEditor()
	e.Execute("cd " + dir)
	e.Execute("pwd")

	status, _ := e.Status()
	assert.Contains(t, status, dir)
}

func TestUnknownCommandReportsError(t *testing.T) {
	t.Parallel()

	e := newEditor()
	e.Execute("bogus")

	status, isErr := e.Status()
	assert.True(t, isErr)
	assert.NotEmpty(t, status)
}

func TestLineJumpMovesCursorToRequestedLine(t *testing.T) {
	t.Parallel()

	e := newEditor()
	require.NoError(t, e.Buffer().DoInsert(0, []byte("one\ntwo\nthree")))

	e.Execute("2")

	pos, _ := e.Cursor()
	line, _ := e.Buffer().Text.PosToLineCol(pos)
	assert.Equal(t, 1, line)
}

func TestCommandHistoryIsFilteredByTypedPrefix(t *testing.T) {
	t.Parallel()

	e := newEditor()
	e.AddHistory(':', "set number")
	e.AddHistory(':', "write")
	e.AddHistory(':', "set shiftwidth=4")

	got, ok := e.HistoryUp(':', "set")
	require.True(t, ok)
	assert.Equal(t, "set shiftwidth=4", got)

	got, ok = e.HistoryUp(':', "set")
	require.True(t, ok)
	assert.Equal(t, "set number", got)

	_, ok = e.HistoryUp(':', "set")
	assert.False(t, ok)
}

func TestInsertModeEndToEndThroughEditor(t *testing.T) {
	t.Parallel()

	e := newEditor()

	for _, r := range mode.SendKeys("ihello<esc>") {
		e.HandleKey(r)
	}

	assert.Equal(t, "hello\n", e.Buffer().Text.String())
}
