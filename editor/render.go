// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     render.go
//
// =============================================================================

package editor

import (
	"fmt"

	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/tokenize"
	"github.com/Release-Candidate/go-modal-editor/window"
)

// Render draws every leaf window, then the status line, onto d, mirroring
// editor_draw: each leaf's visible lines
// (honoring number/relativenumber/cursorline), then a single bottom row
// for the status/command-line text.
func (e *Editor) Render(d display.Display, theme display.Theme) {
	w, h := d.Size()
	e.windows.SetRootSize(w, h-1)
	d.Clear()

	for _, idx := range e.windows.Leaves(e.windows.Root()) {
		e.renderLeaf(d, theme, idx)
	}

	e.renderStatus(d, theme, h-1, w)
	d.Render()
}

func (e *Editor) renderLeaf(d display.Display, theme display.Theme, idx int) {
	rect := e.windows.Rect(idx)
	buf := e.windows.Buffer(idx)
	top := e.windows.TopLine(idx)
	left := e.windows.LeftCol(idx)

	numberWidth := 0
	if buf.Options.Number() || buf.Options.RelativeNumber() {
		numberWidth = buf.Options.NumberWidth()
	}

	cursorLine, _ := buf.Text.PosToLineCol(e.windows.Cursor(idx))
	tok := tokenize.ForFilename(buf.Path(), "")

	for row := 0; row < rect.H; row++ {
		line := top + row
		e.renderLine(d, theme, rect, row, line, left, numberWidth, buf, cursorLine, tok)
	}
}

func (e *Editor) renderLine(
	d display.Display, theme display.Theme, rect window.Rect,
	row, line, left, numberWidth int, buf *buffer.Buffer, cursorLine int, tok tokenize.Tokenizer,
) {
	if line >= buf.Text.LineCount() {
		d.WriteRun(rect.X, rect.Y+row, []display.Cell{{Ch: '~'}})

		return
	}

	x := rect.X

	if numberWidth > 0 {
		x += e.renderNumber(d, theme, rect.X, rect.Y+row, numberWidth, line, cursorLine, buf)
	}

	lineStart := buf.Text.LineColToPos(line, 0)
	lineBytes := buf.Text.Substring(lineStart, buf.Text.LineLength(line))

	spans, _ := tok.Tokenize(lineBytes)
	attr := display.AttrNone

	if buf.Options.CursorLine() && line == cursorLine {
		attr = display.CellAttr(theme.Visual)
	}

	col := 0
	for i := left; i < len(lineBytes) && col < rect.W; i++ {
		ch := rune(lineBytes[i])
		if ch == '\t' {
			ch = ' '
		}

		fg := display.ColorFromHex(styleAt(spans, tok, i))

		d.SetCell(x+col, rect.Y+row, display.Cell{Ch: ch, Fg: fg, At: attr})
		col++
	}
}

// styleAt finds the span covering byte offset i and resolves its color.
func styleAt(spans []tokenize.Span, tok tokenize.Tokenizer, i int) string {
	for _, sp := range spans {
		if i >= sp.Start && i < sp.End {
			return tok.StyleFor(sp.Type)
		}
	}

	return ""
}

func (e *Editor) renderNumber(
	d display.Display, _ display.Theme, x, y, width, line, cursorLine int, buf *buffer.Buffer,
) int {
	n := line + 1
	if buf.Options.RelativeNumber() && line != cursorLine {
		n = line - cursorLine
		if n < 0 {
			n = -n
		}
	}

	text := fmt.Sprintf("%*d ", width-1, n)
	for i, r := range text {
		if i >= width {
			break
		}

		d.SetCell(x+i, y, display.Cell{Ch: r})
	}

	return width
}

func (e *Editor) renderStatus(d display.Display, theme display.Theme, y, w int) {
	msg, isErr := e.Status()
	if msg == "" {
		msg = e.defaultStatus()
	}

	style := theme.Status
	if isErr {
		style = theme.StatusErr
	}

	attr := display.CellAttr(style)
	text := msg

	if len(text) > w {
		text = text[:w]
	}

	cells := make([]display.Cell, w)
	for i := range cells {
		cells[i] = display.Cell{Ch: ' ', At: attr}
	}

	for i, r := range text {
		cells[i] = display.Cell{Ch: r, At: attr}
	}

	d.WriteRun(0, y, cells)
}

func (e *Editor) defaultStatus() string {
	buf := e.Buffer()

	name := buf.Path()
	if name == "" {
		name = "[No Name]"
	}

	dirty := ""
	if buf.Dirty {
		dirty = " [+]"
	}

	if !buf.Options.Ruler() {
		return name + dirty
	}

	pos, _ := e.Cursor()
	line, col := buf.Text.PosToLineCol(pos)

	return fmt.Sprintf("%s%s  %d,%d", name, dirty, line+1, col+1)
}
