// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     tcell.go
//
// =============================================================================

package display

import "github.com/gdamore/tcell/v2"

// TcellDisplay implements Display atop github.com/gdamore/tcell/v2, a
// modern analogue of a termbox cell-grid renderer.
type TcellDisplay struct {
	screen tcell.Screen
}

// ColorFromHex resolves a "#rrggbb" string (or tcell color name) into
// this package's Color, using tcell's own parser so the packed value
// matches what toTcellStyle expects. An unparseable name yields
// ColorDefault.
func ColorFromHex(s string) Color {
	if s == "" {
		return ColorDefault
	}

	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return ColorDefault
	}

	return Color(c)
}

// NewTcell initializes and activates a tcell screen.
func NewTcell() (*TcellDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.EnableMouse()

	return &TcellDisplay{screen: screen}, nil
}

func (d *TcellDisplay) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDisplay) Clear() {
	d.screen.Clear()
}

func (d *TcellDisplay) SetCell(x, y int, c Cell) {
	d.screen.SetContent(x, y, c.Ch, nil, toTcellStyle(c))
}

func (d *TcellDisplay) WriteRun(x, y int, cells []Cell) {
	for i, c := range cells {
		d.SetCell(x+i, y, c)
	}
}

func (d *TcellDisplay) Render() {
	d.screen.Show()
}

func (d *TcellDisplay) Close() error {
	d.screen.Fini()

	return nil
}

// PollEvent blocks for the next tcell event and translates it into the
// package's neutral Event type.
func (d *TcellDisplay) PollEvent() Event {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()

			return NewResizeEvent(w, h)
		case *tcell.EventKey:
			return translateKey(ev)
		}
	}
}

func toTcellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault

	if c.Fg != ColorDefault {
		style = style.Foreground(tcell.Color(c.Fg) | tcell.ColorValid)
	}

	if c.Bg != ColorDefault {
		style = style.Background(tcell.Color(c.Bg) | tcell.ColorValid)
	}

	if c.At&AttrBold != 0 {
		style = style.Bold(true)
	}

	if c.At&AttrUnderline != 0 {
		style = style.Underline(true)
	}

	if c.At&AttrReverse != 0 {
		style = style.Reverse(true)
	}

	if c.At&AttrItalic != 0 {
		style = style.Italic(true)
	}

	return style
}

var specialKeys = map[tcell.Key]KeyCode{
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyEsc:       KeyEsc,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:       KeyTab,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyCtrlB:     KeyCtrlB,
	tcell.KeyCtrlC:     KeyCtrlC,
	tcell.KeyCtrlE:     KeyCtrlE,
	tcell.KeyCtrlR:     KeyCtrlR,
	tcell.KeyCtrlV:     KeyCtrlV,
}

func translateKey(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}

	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= ModShift
	}

	if code, ok := specialKeys[ev.Key()]; ok {
		return NewKeyEvent(code, 0, mods)
	}

	if ev.Key() == tcell.KeyRune {
		return NewKeyEvent(KeyRune, ev.Rune(), mods)
	}

	return NewKeyEvent(KeyRune, rune(ev.Key()), mods)
}
