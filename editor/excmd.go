// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     excmd.go
//
// =============================================================================

package editor

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/internal/excmd"
	"github.com/Release-Candidate/go-modal-editor/options"
	"github.com/Release-Candidate/go-modal-editor/storage"
	"github.com/Release-Candidate/go-modal-editor/window"
)

// Execute runs one ex-command line (without its leading ":"), reporting
// failures to the status line the same way editor_execute_command does.
func (e *Editor) Execute(line string) {
	cmd, err := excmd.Parse(line)
	if err != nil {
		if !errors.Is(err, excmd.ErrEmpty) {
			e.SetError(err)
		}

		return
	}

	if cmd.Kind == excmd.LineJump {
		e.jumpToLine(cmd)

		return
	}

	switch cmd.Name {
	case "q", "quit":
		e.cmdQuit(cmd.Bang)
	case "w", "write":
		e.cmdWrite(cmd.Arg, cmd.Bang)
	case "wq", "x":
		e.cmdWriteQuit(cmd.Arg, cmd.Bang)
	case "e", "edit":
		e.cmdEdit(cmd.Arg, cmd.Bang)
	case "split", "sp":
		e.cmdSplit(window.Horizontal)
	case "vsplit", "vsp":
		e.cmdSplit(window.Vertical)
	case "set":
		e.cmdSet(cmd.Arg, e.Buffer().Options, true)
	case "setl", "setlocal":
		e.cmdSet(cmd.Arg, e.Buffer().Options, false)
	case "setg", "setglobal":
		e.cmdSetGlobal(cmd.Arg)
	case "cd":
		e.cmdCd(cmd.Arg)
	case "lcd":
		e.cmdLcd(cmd.Arg)
	case "pwd":
		e.cmdPwd()
	case "nohlsearch", "noh":
		e.SetStatus("")
	case "!":
		e.cmdShell(cmd.Arg)
	default:
		e.SetError(fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name))
	}
}

func (e *Editor) jumpToLine(cmd excmd.Command) {
	buf := e.Buffer()

	curLine, _ := buf.Text.PosToLineCol(first(e.Cursor()))

	target := cmd.Delta - 1
	if cmd.Relative {
		target = curLine + cmd.Delta
	}

	if target < 0 {
		target = 0
	}

	if last := buf.Text.LineCount() - 1; target > last {
		target = last
	}

	e.SetCursor(buf.Text.LineColToPos(target, 0), 0)
}

func (e *Editor) cmdQuit(bang bool) {
	buf := e.Buffer()
	if buf.Dirty && !bang {
		e.SetError(ErrUnsavedChanges)

		return
	}

	idx := e.windows.Focus()

	next, err := e.windows.Close(idx)
	if err != nil {
		e.quit = true

		return
	}

	e.windows.SetFocus(next)
}

func (e *Editor) cmdWrite(path string, bang bool) {
	buf := e.Buffer()

	if path == "" && buf.Path() == "" {
		e.SetError(fmt.Errorf("%w: no file name", buffer.ErrIoError))

		return
	}

	if buf.ReadOnly && !bang {
		e.SetError(buffer.ErrNotModifiable)

		return
	}

	var err error
	if path == "" {
		err = buf.Save(e.storage)
	} else {
		err = buf.SaveAs(e.storage, path)
	}

	if err != nil {
		e.SetError(err)

		return
	}

	e.SetStatus(fmt.Sprintf("%q written", buf.Path()))
}

func (e *Editor) cmdWriteQuit(path string, bang bool) {
	e.cmdWrite(path, bang)
	if !e.isError {
		e.cmdQuit(true)
	}
}

func (e *Editor) cmdEdit(path string, bang bool) {
	buf := e.Buffer()
	if buf.Dirty && !bang {
		e.SetError(ErrUnsavedChanges)

		return
	}

	newBuf, err := buffer.Load(e.storage, path, e.opts)
	if err != nil {
		e.SetError(err)

		return
	}

	e.buffers = append(e.buffers, newBuf)
	e.windows.SetBuffer(e.windows.Focus(), newBuf)
	e.SetCursor(0, 0)
}

func (e *Editor) cmdSplit(orientation window.Orientation) {
	idx, err := e.windows.Split(e.windows.Focus(), orientation)
	if err != nil {
		e.SetError(err)

		return
	}

	e.windows.SetFocus(idx)
}

// cmdSet handles :set/:setl: bare "opt" enables a bool, "noopt" disables
// one, "opt?" queries, "opt&" resets to default, "opt=val"/"opt+=val" set
// a value, generalizing editor_set_option.
func (e *Editor) cmdSet(arg string, scope *options.Scope, global bool) {
	if arg == "" {
		return
	}

	name, raw, append_ := splitSetArg(arg)

	switch {
	case strings.HasSuffix(name, "?"):
		e.reportOption(scope, strings.TrimSuffix(name, "?"))
	case strings.HasSuffix(name, "&"):
		e.resetOption(scope, strings.TrimSuffix(name, "&"), global)
	// "noopt" only means "disable opt" when name itself isn't already a
	// known option (e.g. "number" is not the negation of "mber") --
	// exact matches always win, the same resolution order vim uses.
	case !isKnownOption(name) && strings.HasPrefix(name, "no") && isKnownOption(strings.TrimPrefix(name, "no")):
		e.setOption(scope, strings.TrimPrefix(name, "no"), "false", global)
	case append_:
		e.appendOption(scope, name, raw, global)
	default:
		e.setOption(scope, name, raw, global)
	}
}

func isKnownOption(name string) bool {
	_, err := options.ParseValue(name, "")

	return err == nil
}

func (e *Editor) cmdSetGlobal(arg string) {
	e.cmdSet(arg, e.Buffer().Options, true)
}

func splitSetArg(arg string) (name, raw string, appendVal bool) {
	if i := strings.Index(arg, "+="); i >= 0 {
		return arg[:i], arg[i+2:], true
	}

	if i := strings.IndexByte(arg, '='); i >= 0 {
		return arg[:i], arg[i+1:], false
	}

	return arg, "", false
}

func (e *Editor) setOption(scope *options.Scope, name, raw string, global bool) {
	v, err := options.ParseValue(name, raw)
	if err != nil {
		e.SetError(err)

		return
	}

	if err := scope.Set(name, v, global); err != nil {
		e.SetError(err)
	}
}

func (e *Editor) appendOption(scope *options.Scope, name, raw string, global bool) {
	cur, err := scope.Get(name)
	if err != nil {
		e.SetError(err)

		return
	}

	if cur.IsInt {
		e.setOption(scope, name, fmt.Sprintf("%d", cur.Int+atoiOr(raw, 0)), global)

		return
	}

	e.setOption(scope, name, cur.Str+raw, global)
}

func atoiOr(s string, fallback int) int {
	n := fallback
	fmt.Sscanf(s, "%d", &n) //nolint:errcheck

	return n
}

func (e *Editor) reportOption(scope *options.Scope, name string) {
	v, err := scope.Get(name)
	if err != nil {
		e.SetError(err)

		return
	}

	switch {
	case v.IsBool:
		e.SetStatus(fmt.Sprintf("%s=%t", name, v.Bool))
	case v.IsInt:
		e.SetStatus(fmt.Sprintf("%s=%d", name, v.Int))
	default:
		e.SetStatus(fmt.Sprintf("%s=%s", name, v.Str))
	}
}

func (e *Editor) resetOption(scope *options.Scope, name string, global bool) {
	def, err := options.Default(name)
	if err != nil {
		e.SetError(err)

		return
	}

	if err := scope.Set(name, def, global); err != nil {
		e.SetError(err)
	}
}

func (e *Editor) cmdCd(path string) {
	dir, err := resolveDir(path, e.cwd)
	if err != nil {
		e.SetError(err)

		return
	}

	e.cwd = dir
	e.lcwd = make(map[int]string)
}

func (e *Editor) cmdLcd(path string) {
	idx := e.windows.Focus()

	dir, err := resolveDir(path, e.windowCwd(idx))
	if err != nil {
		e.SetError(err)

		return
	}

	e.lcwd[idx] = dir
}

func (e *Editor) windowCwd(idx int) string {
	if dir, ok := e.lcwd[idx]; ok {
		return dir
	}

	return e.cwd
}

func (e *Editor) cmdPwd() {
	e.SetStatus(e.windowCwd(e.windows.Focus()))
}

// cmdShell runs cmd via the platform shell and reports its combined
// output to the status line.
func (e *Editor) cmdShell(cmd string) {
	out, err := exec.Command("sh", "-c", cmd).CombinedOutput() //nolint:gosec
	if err != nil {
		e.SetError(fmt.Errorf("%s: %w", strings.TrimSpace(string(out)), err))

		return
	}

	e.SetStatus(strings.TrimSpace(string(out)))
}

// resolveDir resolves path (possibly relative to base, possibly empty
// meaning "report base unchanged") into an absolute directory.
func resolveDir(path, base string) (string, error) {
	if path == "" {
		return base, nil
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	return storage.Abs(path)
}

func first(a, _ int) int { return a }
