// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor/
// File:     operatorpending.go
//
// =============================================================================

package mode

import (
	"errors"

	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/motion"
	"github.com/Release-Candidate/go-modal-editor/operator"
)

// OperatorPendingFrame waits for a motion to complete a pending operator:
// pressing an operator key in Normal mode pushes this frame; on success
// it builds a Region and invokes the operator, then pops back to Normal.
type OperatorPendingFrame struct {
	op       operator.Kind
	opKeys   []rune // the key(s) that selected op, for the doubled-operator shortcut
	count    int
	register byte
	buf      []rune
}

// NewOperatorPending builds a frame for the operator selected by opKeys
// (e.g. "d", "gu"), with the count and register Normal mode already
// parsed before the operator key.
func NewOperatorPending(op operator.Kind, opKeys []rune, count int, register byte) *OperatorPendingFrame {
	return &OperatorPendingFrame{op: op, opKeys: opKeys, count: count, register: register}
}

func (f *OperatorPendingFrame) Kind() Kind { return OperatorPending }

func (f *OperatorPendingFrame) OnEnter(Context) {}

func (f *OperatorPendingFrame) OnExit(Context) {}

func (f *OperatorPendingFrame) OnKey(ctx Context, ev display.Event) {
	if ev.Variant != display.EventKey {
		return
	}

	if ev.Code == display.KeyEsc {
		ctx.Pop()

		return
	}

	if ev.Code != display.KeyRune {
		return
	}

	f.buf = append(f.buf, ev.Ch)

	count2, rest := motion.ParseCount(f.buf)
	if len(rest) == 0 {
		return
	}

	if len(rest) >= len(f.opKeys) && string(rest[:len(f.opKeys)]) == string(f.opKeys) {
		ctx.Pop()
		f.applyCurrentLines(ctx, count2)

		return
	}

	m, _, err := motion.Parse(rest)
	if errors.Is(err, motion.ErrIncomplete) {
		return
	}

	ctx.Pop()

	if err != nil {
		ctx.SetError(err)

		return
	}

	total := combineCounts(f.count, count2)
	if total > 0 {
		m = m.WithCount(total)
	}

	f.apply(ctx, m)
}

func combineCounts(a, b int) int {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	default:
		return a * b
	}
}

func (f *OperatorPendingFrame) apply(ctx Context, m motion.Motion) {
	pos, wantCol := ctx.Cursor()
	target, newWantCol := m.Apply(ctx.Buffer().Text, pos, wantCol, deps(ctx))
	region := operator.FromMotion(ctx.Buffer().Text, pos, target, m)

	res, err := operator.Apply(ctx.Buffer(), region, f.op, ctx.Registers(), f.register, ctx.ShiftWidth())
	if err != nil {
		ctx.SetError(err)

		return
	}

	ctx.SetCursor(res.Cursor, newWantCol)

	if res.EnterInsert {
		ctx.Push(NewInsert())
	}
}

// applyCurrentLines handles the doubled-operator shortcut (dd, cc, yy,
// >>, <<): the operator's own key(s) typed twice in a row means "current
// line(s), linewise". count2 is any count typed between the two operator
// keys (e.g. the "2" in "d2d"); it multiplies with the count typed before
// the operator, same as a count on either side of a motion.
func (f *OperatorPendingFrame) applyCurrentLines(ctx Context, count2 int) {
	pos, _ := ctx.Cursor()
	text := ctx.Buffer().Text

	line, _ := text.PosToLineCol(pos)

	n := combineCounts(f.count, count2)
	if n <= 0 {
		n = 1
	}

	endLine := line + n - 1
	if endLine >= text.LineCount() {
		endLine = text.LineCount() - 1
	}

	start := text.LineColToPos(line, 0)

	var end int
	if endLine >= text.LineCount()-1 {
		end = text.Size()
	} else {
		end = text.LineColToPos(endLine+1, 0)
	}

	res, err := operator.Apply(ctx.Buffer(), operator.Region{Start: start, End: end}, f.op, ctx.Registers(), f.register, ctx.ShiftWidth())
	if err != nil {
		ctx.SetError(err)

		return
	}

	ctx.SetCursor(res.Cursor, 0)

	if res.EnterInsert {
		ctx.Push(NewInsert())
	}
}
