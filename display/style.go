// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     style.go
//
// =============================================================================

package display

import "github.com/charmbracelet/lipgloss"

// Theme names the handful of styles the editor composites over plain
// text. The renderer uses Status/StatusErr for the status line and
// Visual for the cursorline; it does not highlight visual selections,
// and Search is not painted anywhere.
type Theme struct {
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Visual    lipgloss.Style
	Search    lipgloss.Style
}

// DefaultTheme mirrors a typical terminal vi's reverse-video status line
// and selection highlight.
func DefaultTheme() Theme {
	return Theme{
		Status:    lipgloss.NewStyle().Reverse(true),
		StatusErr: lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("9")),
		Visual:    lipgloss.NewStyle().Reverse(true),
		Search:    lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
	}
}

// CellAttr converts a lipgloss.Style's relevant text attributes into this
// package's Attr bitmask, the only part of lipgloss's styling model the
// cell-grid Display can express (lipgloss itself targets ANSI string
// rendering, not per-cell grids).
func CellAttr(s lipgloss.Style) Attr {
	var a Attr

	if s.GetBold() {
		a |= AttrBold
	}

	if s.GetUnderline() {
		a |= AttrUnderline
	}

	if s.GetReverse() {
		a |= AttrReverse
	}

	if s.GetItalic() {
		a |= AttrItalic
	}

	return a
}
