// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     main.go
//
// =============================================================================

// Command edit is the terminal front end: it wires stdlib flag parsing,
// an optional ~/.edrc.toml config, a tcell Display, and the editor
// package's core loop together, mirroring
// main/editor_handle_key_press/editor_draw.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/Release-Candidate/go-modal-editor/editor"
	"github.com/Release-Candidate/go-modal-editor/storage"
)

func main() {
	configPath := flag.String("config", "~/.edrc.toml", "path to an optional TOML config file")
	logPath := flag.String("log", "", "path to a log file (default: discard)")
	flag.Parse()

	logWriter, closeLog := openLog(*logPath)
	defer closeLog()

	cfg, err := editor.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit:", err)
		os.Exit(1)
	}

	scr, err := display.NewTcell()
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit:", err)
		os.Exit(1)
	}
	defer scr.Close()

	w, h := scr.Size()

	ed := editor.New(w, h, storage.New(), logWriter)
	if err := ed.ApplyConfig(cfg); err != nil {
		ed.Logger.Error("applying config", "err", err)
	}

	if path := flag.Arg(0); path != "" {
		ed.Execute("e " + path)
	}

	run(ed, scr)
}

func run(ed *editor.Editor, scr display.Display) {
	theme := display.DefaultTheme()

	ed.Render(scr, theme)

	for !ed.ShouldQuit() {
		ev := scr.PollEvent()
		ed.HandleKey(ev)
		ed.Render(scr, theme)
	}
}

func openLog(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "edit: cannot open log file:", err)

		return io.Discard, func() {}
	}

	return f, func() { f.Close() }
}
