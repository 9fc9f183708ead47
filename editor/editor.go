// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     editor.go
//
// =============================================================================

// Package editor is the root aggregate : the
// buffer list, window split tree, register table, bounded command/search
// histories, synthetic event queue, status line, and ex-command
// dispatch. Editor implements mode.Context structurally so mode never
// imports this package.
package editor

import (
	"errors"
	"io"
	"os"

	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/mode"
	"github.com/Release-Candidate/go-modal-editor/options"
	"github.com/Release-Candidate/go-modal-editor/registry"
	"github.com/Release-Candidate/go-modal-editor/search"
	"github.com/Release-Candidate/go-modal-editor/storage"
	"github.com/Release-Candidate/go-modal-editor/window"
	"github.com/charmbracelet/log"
)

// Sentinel errors for ex-command handling.
var (
	ErrUnsavedChanges = errors.New("unsaved changes (add ! to override)")
	ErrUnknownCommand = errors.New("unknown command")
)

// Editor is the root aggregate. It satisfies mode.Context.
type Editor struct {
	buffers []*buffer.Buffer
	windows *window.Tree
	opts    *options.Registry
	// globalScope is a scope with no local overrides, used to read
	// editor-wide option values (e.g. 'history') that have no natural
	// per-buffer home.
	globalScope *options.Scope
	regs        *registry.Table
	storage     storage.Storage

	queue    mode.Queue
	stack    *mode.Stack
	wantCols map[int]int

	status  string
	isError bool

	cmdHistory    []string
	searchHistory []string
	histCursor    int
	histPrefix    string

	cwd  string
	lcwd map[int]string

	Logger *log.Logger

	lastSearchDir search.Direction
	quit          bool
}

// New creates an Editor with one empty buffer in a single window sized
// w x h, logging non-UI diagnostics to logWriter (pass io.Discard in
// tests).
func New(w, h int, s storage.Storage, logWriter io.Writer) *Editor {
	opts := options.NewRegistry()
	buf := buffer.New(opts)

	e := &Editor{
		buffers:     []*buffer.Buffer{buf},
		windows:     window.New(buf, w, h),
		opts:        opts,
		globalScope: opts.NewWindowScope(),
		regs:        registry.New(),
		storage:     s,
		stack:       mode.NewStack(&mode.NormalFrame{}),
		histCursor:  -1,
		lcwd:        make(map[int]string),
		Logger:      log.New(logWriter),
	}

	if dir, err := os.Getwd(); err == nil {
		e.cwd = dir
	}

	return e
}

// ShouldQuit reports whether a :q/:wq (with no remaining window to close)
// has asked the host loop in cmd/edit to exit.
func (e *Editor) ShouldQuit() bool { return e.quit }

// Windows exposes the split tree for the render pass in cmd/edit.
func (e *Editor) Windows() *window.Tree { return e.windows }

// Status returns the current status line text and whether it is an
// error (for error styling).
func (e *Editor) Status() (string, bool) { return e.status, e.isError }

// HandleKey dispatches ev to the active mode frame, then drains the
// synthetic events that handling queued, so they run before the next
// real event.
func (e *Editor) HandleKey(ev display.Event) {
	if ev.Variant == display.EventResize {
		e.windows.SetRootSize(ev.W, ev.H)

		return
	}

	e.stack.HandleKey(e, ev)

	for {
		next, ok := e.queue.Pop()
		if !ok {
			break
		}

		e.stack.HandleKey(e, next)
	}
}
