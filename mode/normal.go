// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     normal.go
//
// =============================================================================

package mode

import (
	"errors"

	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/motion"
	"github.com/Release-Candidate/go-modal-editor/operator"
	"github.com/Release-Candidate/go-modal-editor/search"
)

// NormalFrame reads ephemeral count and register prefixes, dispatches
// single-key commands, and pushes OperatorPending/Insert/Visual/
// Command-line frames for the rest
type NormalFrame struct {
	buf             []rune
	pendingRegister byte
	awaitingReg     bool
}

func (f *NormalFrame) Kind() Kind { return Normal }

func (f *NormalFrame) OnEnter(ctx Context) { ctx.SetStatus("") }

func (f *NormalFrame) OnExit(Context) {}

func (f *NormalFrame) reset() {
	f.buf = nil
	f.pendingRegister = 0
	f.awaitingReg = false
}

func (f *NormalFrame) OnKey(ctx Context, ev display.Event) {
	if ev.Variant != display.EventKey {
		return
	}

	if ev.Code == display.KeyEsc {
		f.reset()

		return
	}

	if ev.Code == display.KeyCtrlR {
		f.redo(ctx)

		return
	}

	if ev.Code != display.KeyRune {
		return
	}

	if f.awaitingReg {
		f.pendingRegister = byte(ev.Ch)
		f.awaitingReg = false

		return
	}

	if len(f.buf) == 0 && ev.Ch == '"' {
		f.awaitingReg = true

		return
	}

	f.buf = append(f.buf, ev.Ch)
	f.attempt(ctx)
}

// deps builds the motion.Deps a Normal-mode motion evaluation needs.
func deps(ctx Context) motion.Deps {
	return motion.Deps{
		Search: func(pattern string, fwd bool, from int) (int, bool) {
			dir := search.Forward
			if !fwd {
				dir = search.Backward
			}

			pos, _, err := ctx.Search(pattern, dir)
			if err != nil {
				ctx.SetError(err)

				return from, false
			}

			return pos, true
		},
		Mark: ctx.Mark,
	}
}

func (f *NormalFrame) attempt(ctx Context) {
	count1, rest := motion.ParseCount(f.buf)
	if len(rest) == 0 {
		return
	}

	if rest[0] == '/' || rest[0] == '?' {
		f.reset()
		ctx.Push(NewCommandLine(rune(rest[0])))

		return
	}

	if handled := f.tryImmediate(ctx, rest[0], count1); handled {
		f.reset()

		return
	}

	if opKind, opKeys, wait, isOp := tryOperatorPrefix(rest); wait {
		return
	} else if isOp {
		reg := f.pendingRegister
		f.reset()
		ctx.Push(NewOperatorPending(opKind, opKeys, count1, reg))

		return
	}

	m, _, err := motion.Parse(rest)
	if errors.Is(err, motion.ErrIncomplete) {
		return
	}

	f.reset()

	if err != nil {
		ctx.SetError(err)

		return
	}

	if count1 > 0 {
		m = m.WithCount(count1)
	}

	f.moveCursor(ctx, m)
}

// tryOperatorPrefix recognizes the operator-leading keys from rest,
// distinguishing the two-char gu/gU/g~ operators from the gg/ge/gE
// motions that also start with 'g'. wait means more keys are needed to
// disambiguate; isOp means rest begins an operator selected by opKeys.
func tryOperatorPrefix(rest []rune) (kind operator.Kind, opKeys []rune, wait bool, isOp bool) {
	switch rest[0] {
	case 'd', 'c', 'y', '>', '<', '=':
		k, _ := operator.KeyFor(string(rest[0]))

		return k, rest[:1], false, true
	case 'g':
		if len(rest) < 2 {
			return 0, nil, true, false
		}

		switch rest[1] {
		case 'u', 'U', '~':
			k, ok := operator.KeyFor("g" + string(rest[1]))

			return k, rest[:2], false, ok
		}

		return 0, nil, false, false
	default:
		return 0, nil, false, false
	}
}

func (f *NormalFrame) moveCursor(ctx Context, m motion.Motion) {
	pos, wantCol := ctx.Cursor()
	target, newWantCol := m.Apply(ctx.Buffer().Text, pos, wantCol, deps(ctx))
	ctx.SetCursor(target, newWantCol)
}

// tryImmediate handles the single-key commands that are not motions and
// not operator-prefixed: mode transitions, the composed edits
// (a/A/I/O/o/x/D/C) built from existing motion/operator keys via
// SendKeys, and J, which applies operator.Join directly.
func (f *NormalFrame) tryImmediate(ctx Context, key rune, count int) bool {
	switch key {
	case 'i':
		ctx.Push(NewInsert())
	case ':':
		ctx.Push(NewCommandLine(':'))
	case 'v':
		ctx.SetVisualAnchor(first(ctx.Cursor()))
		ctx.Push(NewVisual(VisualCharwise))
	case 'V':
		ctx.SetVisualAnchor(first(ctx.Cursor()))
		ctx.Push(NewVisual(VisualLinewise))
	case 'u':
		f.undo(ctx)
	case 'a':
		ctx.Enqueue(SendKeys("li"))
	case 'I':
		ctx.Enqueue(SendKeys("0i"))
	case 'A':
		ctx.Enqueue(SendKeys("$i"))
	case 'o':
		ctx.Enqueue(SendKeys("A<cr>"))
	case 'O':
		ctx.Enqueue(SendKeys("0i<cr><esc>ki"))
	case 'x':
		ctx.Enqueue(SendKeys("dl"))
	case 'D':
		ctx.Enqueue(SendKeys("d$"))
	case 'C':
		ctx.Enqueue(SendKeys("c$"))
	case 'J':
		f.joinLines(ctx, count)
	default:
		return false
	}

	return true
}

func (f *NormalFrame) joinLines(ctx Context, count int) {
	n := count
	if n <= 0 {
		n = 1
	}

	pos, _ := ctx.Cursor()

	for i := 0; i < n; i++ {
		res, err := operator.Apply(ctx.Buffer(), operator.Region{Start: pos}, operator.Join, ctx.Registers(), 0, ctx.ShiftWidth())
		if err != nil {
			ctx.SetError(err)

			return
		}

		pos = res.Cursor
	}

	_, col := ctx.Buffer().Text.PosToLineCol(pos)
	ctx.SetCursor(pos, col)
}

func (f *NormalFrame) undo(ctx Context) {
	pos, ok := ctx.Buffer().Undo()
	if !ok {
		ctx.SetStatus("already at oldest change")

		return
	}

	_, col := ctx.Buffer().Text.PosToLineCol(pos)
	ctx.SetCursor(pos, col)
}

func (f *NormalFrame) redo(ctx Context) {
	pos, ok := ctx.Buffer().Redo()
	if !ok {
		ctx.SetStatus("already at newest change")

		return
	}

	_, col := ctx.Buffer().Text.PosToLineCol(pos)
	ctx.SetCursor(pos, col)
}

func first(a, _ int) int { return a }
