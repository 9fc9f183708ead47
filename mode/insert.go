// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     insert.go
//
// =============================================================================

package mode

import "github.com/Release-Candidate/go-modal-editor/display"

// InsertFrame writes typed runes at the cursor
// starts a fresh undo group so every insert until the matching Esc
// collapses into one undoable action.
type InsertFrame struct{}

// NewInsert builds an Insert frame.
func NewInsert() *InsertFrame { return &InsertFrame{} }

func (f *InsertFrame) Kind() Kind { return Insert }

func (f *InsertFrame) OnEnter(ctx Context) {
	ctx.Buffer().StartActionGroup()
	ctx.SetStatus("-- INSERT --")
}

func (f *InsertFrame) OnExit(ctx Context) {
	ctx.SetStatus("")

	pos, _ := ctx.Cursor()

	_, col := ctx.Buffer().Text.PosToLineCol(pos)
	if col > 0 {
		newPos := pos - 1
		_, newCol := ctx.Buffer().Text.PosToLineCol(newPos)
		ctx.SetCursor(newPos, newCol)
	}
}

func (f *InsertFrame) OnKey(ctx Context, ev display.Event) {
	if ev.Variant != display.EventKey {
		return
	}

	switch ev.Code {
	case display.KeyEsc:
		ctx.Pop()
	case display.KeyEnter:
		f.insert(ctx, []byte("\n"))
	case display.KeyBackspace:
		f.backspace(ctx)
	case display.KeyTab:
		f.insert(ctx, []byte("\t"))
	case display.KeyRune:
		f.insert(ctx, []byte(string(ev.Ch)))
	}
}

func (f *InsertFrame) insert(ctx Context, b []byte) {
	pos, _ := ctx.Cursor()

	if err := ctx.Buffer().DoInsert(pos, b); err != nil {
		ctx.SetError(err)

		return
	}

	newPos := pos + len(b)
	_, col := ctx.Buffer().Text.PosToLineCol(newPos)
	ctx.SetCursor(newPos, col)
}

// backspace deletes the byte before the cursor, joining into the
// previous line if the cursor sits at column 0.
func (f *InsertFrame) backspace(ctx Context) {
	pos, _ := ctx.Cursor()
	if pos == 0 {
		return
	}

	if err := ctx.Buffer().DoDelete(pos-1, 1); err != nil {
		ctx.SetError(err)

		return
	}

	newPos := pos - 1
	_, col := ctx.Buffer().Text.PosToLineCol(newPos)
	ctx.SetCursor(newPos, col)
}
