// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     commandline.go
//
// =============================================================================

package mode

import (
	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/search"
)

// CommandLineFrame reads one line of text after a ':', '/' or '?'
// prompt, '/' and '?'
// jump to the next/previous search match.
type CommandLineFrame struct {
	prompt rune
	buf    []rune
	cursor int

	savedPos     int
	savedWantCol int
}

// NewCommandLine builds a Command-line frame for the given prompt rune.
func NewCommandLine(prompt rune) *CommandLineFrame {
	return &CommandLineFrame{prompt: prompt}
}

func (f *CommandLineFrame) Kind() Kind { return CommandLine }

func (f *CommandLineFrame) OnEnter(ctx Context) {
	f.savedPos, f.savedWantCol = ctx.Cursor()
	ctx.SetStatus(string(f.prompt))
}

func (f *CommandLineFrame) OnExit(ctx Context) {
	ctx.SetStatus("")
}

func (f *CommandLineFrame) OnKey(ctx Context, ev display.Event) {
	if ev.Variant != display.EventKey {
		return
	}

	switch ev.Code {
	case display.KeyEsc, display.KeyCtrlC:
		ctx.SetCursor(f.savedPos, f.savedWantCol)
		ctx.Pop()

		return
	case display.KeyEnter:
		f.commit(ctx)

		return
	case display.KeyBackspace:
		f.backspace(ctx)
	case display.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case display.KeyRight:
		if f.cursor < len(f.buf) {
			f.cursor++
		}
	case display.KeyHome:
		f.cursor = 0
	case display.KeyEnd:
		f.cursor = len(f.buf)
	case display.KeyUp:
		f.historyUp(ctx)
	case display.KeyDown:
		f.historyDown(ctx)
	case display.KeyRune:
		f.buf = append(f.buf[:f.cursor], append([]rune{ev.Ch}, f.buf[f.cursor:]...)...)
		f.cursor++
	}

	ctx.SetStatus(string(f.prompt) + string(f.buf))
}

func (f *CommandLineFrame) backspace(ctx Context) {
	if f.cursor == 0 {
		if len(f.buf) == 0 {
			ctx.SetCursor(f.savedPos, f.savedWantCol)
			ctx.Pop()
		}

		return
	}

	f.buf = append(f.buf[:f.cursor-1], f.buf[f.cursor:]...)
	f.cursor--
}

func (f *CommandLineFrame) historyUp(ctx Context) {
	if entry, ok := ctx.HistoryUp(f.prompt, string(f.buf)); ok {
		f.buf = []rune(entry)
		f.cursor = len(f.buf)
	}
}

func (f *CommandLineFrame) historyDown(ctx Context) {
	if entry, ok := ctx.HistoryDown(f.prompt, string(f.buf)); ok {
		f.buf = []rune(entry)
		f.cursor = len(f.buf)
	}
}

func (f *CommandLineFrame) commit(ctx Context) {
	line := string(f.buf)

	switch f.prompt {
	case ':':
		ctx.Pop()
		ctx.AddHistory(':', line)
		ctx.Execute(line)
	case '/', '?':
		dir := search.Forward
		if f.prompt == '?' {
			dir = search.Backward
		}

		pos, _, err := ctx.Search(line, dir)

		ctx.Pop()
		ctx.AddHistory(f.prompt, line)

		if err != nil {
			ctx.SetError(err)

			return
		}

		_, col := ctx.Buffer().Text.PosToLineCol(pos)
		ctx.SetCursor(pos, col)
	}
}
