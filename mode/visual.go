// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     visual.go
//
// =============================================================================

package mode

import (
	"errors"

	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/motion"
	"github.com/Release-Candidate/go-modal-editor/operator"
)

// VisualFrame extends a live selection from the anchor set on entry as
// the cursor moves, and applies an operator to the selection span on an
// operator key.
type VisualFrame struct {
	kind Kind
	buf  []rune
}

// NewVisual builds a Visual frame of the given sub-kind (charwise,
// linewise, or block).
func NewVisual(kind Kind) *VisualFrame {
	return &VisualFrame{kind: kind}
}

func (f *VisualFrame) Kind() Kind { return f.kind }

func (f *VisualFrame) OnEnter(ctx Context) {
	switch f.kind {
	case VisualLinewise:
		ctx.SetStatus("-- VISUAL LINE --")
	case VisualBlock:
		ctx.SetStatus("-- VISUAL BLOCK --")
	default:
		ctx.SetStatus("-- VISUAL --")
	}
}

func (f *VisualFrame) OnExit(ctx Context) {
	ctx.ClearVisualAnchor()
	ctx.SetStatus("")
}

func (f *VisualFrame) OnKey(ctx Context, ev display.Event) {
	if ev.Variant != display.EventKey {
		return
	}

	if ev.Code == display.KeyEsc {
		f.buf = nil
		ctx.Pop()

		return
	}

	if ev.Code != display.KeyRune {
		return
	}

	f.buf = append(f.buf, ev.Ch)

	count, rest := motion.ParseCount(f.buf)
	if len(rest) == 0 {
		return
	}

	if kind, ok := operator.KeyFor(string(rest)); ok {
		f.buf = nil
		f.apply(ctx, kind)

		return
	}

	m, _, err := motion.Parse(rest)
	if errors.Is(err, motion.ErrIncomplete) {
		return
	}

	f.buf = nil

	if err != nil {
		ctx.SetError(err)

		return
	}

	if count > 0 {
		m = m.WithCount(count)
	}

	pos, wantCol := ctx.Cursor()
	target, newWantCol := m.Apply(ctx.Buffer().Text, pos, wantCol, deps(ctx))
	ctx.SetCursor(target, newWantCol)
}

func (f *VisualFrame) apply(ctx Context, kind operator.Kind) {
	anchor, ok := ctx.VisualAnchor()
	if !ok {
		ctx.Pop()

		return
	}

	cursor, _ := ctx.Cursor()
	region := operator.FromVisual(ctx.Buffer().Text, anchor, cursor, f.kind == VisualLinewise)

	ctx.Pop()

	res, err := operator.Apply(ctx.Buffer(), region, kind, ctx.Registers(), 0, ctx.ShiftWidth())
	if err != nil {
		ctx.SetError(err)

		return
	}

	_, col := ctx.Buffer().Text.PosToLineCol(res.Cursor)
	ctx.SetCursor(res.Cursor, col)

	if res.EnterInsert {
		ctx.Push(NewInsert())
	}
}
