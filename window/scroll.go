// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     scroll.go
//
// =============================================================================

package window

import "github.com/mattn/go-runewidth"

// ScrollDeps is the subset of Buffer/options a leaf's viewport needs to
// reflow after a cursor move -- kept narrow so window doesn't import
// buffer's option-scope machinery directly.
type ScrollDeps struct {
	TabStop    int
	SideScroll int
	Text       []byte // the leaf's current line, for tab-aware column math
}

// DisplayCol expands a byte column within line into a display column,
// counting each tab as advancing to the next multiple of tabstop and each
// rune by its terminal display width (go-runewidth, the same library the
// rest of the domain stack uses for line rendering).
func DisplayCol(line []byte, byteCol, tabstop int) int {
	col := 0

	for i := 0; i < byteCol && i < len(line); {
		if line[i] == '\t' {
			col = (col/tabstop + 1) * tabstop
			i++

			continue
		}

		r, size := decodeRune(line[i:])
		col += runewidth.RuneWidth(r)
		i += size
	}

	return col
}

func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}

	if b[0] < 0x80 {
		return rune(b[0]), 1
	}

	for size := 4; size >= 2; size-- {
		if size <= len(b) {
			r := []rune(string(b[:size]))
			if len(r) == 1 {
				return r[0], size
			}
		}
	}

	return rune(b[0]), 1
}

// Scroll adjusts a leaf's (topLine, leftCol) minimally so the cursor at
// (line, displayCol) falls within the visible viewport, honoring the
// sidescroll option: 0 centers the cursor on the first off-screen hit, a
// positive value scrolls by that many columns at a time instead of
// jumping straight to the edge.
func (t *Tree) Scroll(idx int, line, displayCol, innerW, innerH, sideScroll int) {
	n := &t.nodes[idx]

	if line < n.topLine {
		n.topLine = line
	} else if line >= n.topLine+innerH {
		n.topLine = line - innerH + 1
	}

	if n.topLine < 0 {
		n.topLine = 0
	}

	switch {
	case displayCol < n.leftCol:
		if sideScroll == 0 {
			n.leftCol = displayCol - innerW/2
		} else {
			for displayCol < n.leftCol {
				n.leftCol -= sideScroll
			}
		}
	case displayCol >= n.leftCol+innerW:
		if sideScroll == 0 {
			n.leftCol = displayCol - innerW/2
		} else {
			for displayCol >= n.leftCol+innerW {
				n.leftCol += sideScroll
			}
		}
	}

	if n.leftCol < 0 {
		n.leftCol = 0
	}
}

// InnerHeight returns a leaf's usable row count: the full rect height for
// the root, minus one row reserved for the window's status plate for any
// non-root leaf.
func (t *Tree) InnerHeight(idx int) int {
	if idx == t.root {
		return t.nodes[idx].rect.H
	}

	h := t.nodes[idx].rect.H - 1
	if h < 1 {
		h = 1
	}

	return h
}
