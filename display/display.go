// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     display.go
//
// =============================================================================

// Package display defines the terminal contract the editor renders
// through and reads input from : a cell grid plus a blocking
// event source. The tcell-backed implementation lives in tcell.go; mode
// and editor depend only on this file's types, never on tcell directly.
package display

// Color is an indexed or RGB-packed terminal color; -1 means "use the
// terminal's default".
type Color int32

const ColorDefault Color = -1

// Attr is a bitmask of cell text attributes.
type Attr int

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
	AttrItalic
)

// Cell is one terminal cell: a single codepoint plus its styling.
type Cell struct {
	Ch rune
	Fg Color
	Bg Color
	At Attr
}

// KeyCode names a non-printable key; KeyRune means Event.Ch holds the
// pressed character.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyCtrlB
	KeyCtrlC
	KeyCtrlE
	KeyCtrlR
	KeyCtrlV
)

// Mods is a bitmask of held modifier keys.
type Mods int

const (
	ModNone Mods = 0
	ModCtrl Mods = 1 << iota
	ModAlt
	ModShift
)

// EventKind discriminates Event's two variants.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
)

// Event is the tagged union PollEvent returns: a key press or a terminal
// resize. Only the fields matching Variant are meaningful.
type Event struct {
	Variant EventKind

	Code KeyCode
	Ch   rune
	Mods Mods

	W, H int
}

// NewKeyEvent builds a key Event.
func NewKeyEvent(code KeyCode, ch rune, mods Mods) Event {
	return Event{Variant: EventKey, Code: code, Ch: ch, Mods: mods}
}

// NewResizeEvent builds a resize Event.
func NewResizeEvent(w, h int) Event {
	return Event{Variant: EventResize, W: w, H: h}
}

// Display is the consumed rendering + input contract.
// Implementations must be safe to use from a single goroutine only -- the
// editor is single-threaded cooperative.
type Display interface {
	Size() (w, h int)
	Clear()
	SetCell(x, y int, c Cell)
	WriteRun(x, y int, cells []Cell)
	Render()
	PollEvent() Event
	Close() error
}
