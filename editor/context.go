// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     context.go
//
// =============================================================================

package editor

import (
	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/mode"
	"github.com/Release-Candidate/go-modal-editor/registry"
	"github.com/Release-Candidate/go-modal-editor/search"
	"github.com/Release-Candidate/go-modal-editor/window"
)

// Buffer returns the focused window's buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.windows.Buffer(e.windows.Focus())
}

// Cursor returns the focused window's cursor position and desired column.
func (e *Editor) Cursor() (pos, wantCol int) {
	idx := e.windows.Focus()

	return e.windows.Cursor(idx), e.wantCol(idx)
}

// wantCol stores the per-leaf desired column outside the window package,
// which only tracks byte cursor position -- a small map keyed by leaf
// index. Entries are not removed when a leaf is closed; a later split that
// reuses the freed index sees the old entry until its first SetCursor.
func (e *Editor) wantCol(idx int) int {
	if e.wantCols == nil {
		return 0
	}

	return e.wantCols[idx]
}

// SetCursor moves the focused window's cursor and re-runs viewport
// scrolling from the buffer's current line text.
func (e *Editor) SetCursor(pos, wantCol int) {
	idx := e.windows.Focus()
	buf := e.windows.Buffer(idx)

	if pos < 0 {
		pos = 0
	}

	if last := buf.Text.Size() - 1; pos > last {
		pos = last
	}

	e.windows.SetCursor(idx, pos)

	if e.wantCols == nil {
		e.wantCols = make(map[int]int)
	}

	e.wantCols[idx] = wantCol

	line, col := buf.Text.PosToLineCol(pos)
	lineBytes := buf.Text.Substring(buf.Text.LineColToPos(line, 0), buf.Text.LineLength(line))
	displayCol := window.DisplayCol(lineBytes, col, buf.Options.TabStop())
	innerW := e.windows.Rect(idx).W
	innerH := e.windows.InnerHeight(idx)

	e.windows.Scroll(idx, line, displayCol, innerW, innerH, buf.Options.SideScroll())
}

// VisualAnchor/SetVisualAnchor/ClearVisualAnchor proxy the focused
// leaf's selection anchor.
func (e *Editor) VisualAnchor() (int, bool) {
	return e.windows.VisualAnchor(e.windows.Focus())
}

func (e *Editor) SetVisualAnchor(pos int) {
	e.windows.SetVisualAnchor(e.windows.Focus(), pos)
}

func (e *Editor) ClearVisualAnchor() {
	e.windows.ClearVisualAnchor(e.windows.Focus())
}

// Registers returns the shared register table.
func (e *Editor) Registers() *registry.Table { return e.regs }

// ShiftWidth is the focused buffer's effective shiftwidth.
func (e *Editor) ShiftWidth() int { return e.Buffer().Options.ShiftWidth() }

// Search compiles pattern (reusing the last search pattern from the "/"
// register when pattern == "") and returns the next match from the
// cursor in dir.
func (e *Editor) Search(pattern string, dir search.Direction) (int, bool, error) {
	if pattern == "" {
		pattern = e.regs.Get('/')
	} else {
		e.regs.Set('/', pattern)
	}

	e.lastSearchDir = dir

	buf := e.Buffer()
	opts := buf.Options

	re, err := search.Compile(pattern, opts.IgnoreCase(), opts.SmartCase())
	if err != nil {
		return 0, false, err
	}

	text := buf.Text.ContiguousFrom(0)

	matches, err := re.FindAll(text)
	if err != nil {
		return 0, false, err
	}

	pos, _ := e.Cursor()

	m, wrapped, err := search.Next(matches, pos, dir)
	if err != nil {
		return pos, false, err
	}

	return m.Start, wrapped, nil
}

// Mark/SetMark adapt the focused buffer's string-keyed marks to the
// single-byte mark names motion.Parse's `` ` ``/`'` grammar uses.
func (e *Editor) Mark(name byte) (int, bool) {
	m, ok := e.Buffer().GetMark(string(name))

	return m.Start, ok
}

func (e *Editor) SetMark(name byte, pos int) {
	e.Buffer().SetMark(string(name), pos, pos)
}

// Push/Pop drive the ModeStack; Push also resets history navigation
// state when a fresh Command-line frame is entered.
func (e *Editor) Push(f mode.Frame) {
	if f.Kind() == mode.CommandLine {
		e.histCursor = -1
		e.histPrefix = ""
	}

	e.stack.Push(e, f)
}

func (e *Editor) Pop() { e.stack.Pop(e) }

// SetStatus/SetError report to the status line.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
	e.isError = false
}

func (e *Editor) SetError(err error) {
	if err == nil {
		return
	}

	e.status = err.Error()
	e.isError = true
}

// Enqueue splices synthetic events ahead of the real input source.
func (e *Editor) Enqueue(events []display.Event) { e.queue.Push(events) }
