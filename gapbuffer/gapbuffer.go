// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     gapbuffer.go
//
// =============================================================================

// Package gapbuffer implements the text store of the editor: a gap buffer
// addressable by byte offset, with an incrementally maintained per-line
// length index.
//
// A gap buffer is an array with a gap somewhere in the middle, where text is
// inserted and deleted. Unlike a cursor-only gap buffer, every operation here
// takes an explicit offset and moves the gap there first: undo/redo replay
// edits anywhere in the buffer, not just at the interactive cursor.
//
// The text always ends with a newline; the empty buffer is the single byte
// '\n'. This lets line/column math treat every line, including the last, the
// same way.
package gapbuffer

import (
	"strings"
	"unicode/utf8"
)

const (
	// minGap is the smallest gap a buffer is grown to, in bytes.
	minGap = 1024

	// growFactor multiplies the requested size when the gap must grow to
	// fit an insertion bigger than the current gap.
	growFactor = 2
)

// GapBuffer is a contiguous byte array split into [prefix | gap | suffix].
// The logical text is prefix++suffix. The trailing byte of the logical text
// is always '\n'.
type GapBuffer struct {
	data  []byte
	start int // index of the start of the gap (= length of prefix)
	end   int // index one past the end of the gap
	lines lineBuffer
}

// New returns an empty gap buffer: logical content "\n".
func New() *GapBuffer {
	return NewFromString("")
}

// NewFromString returns a gap buffer whose logical content is s with a
// trailing newline forced if s does not already end with one.
func NewFromString(s string) *GapBuffer {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	size := max(minGap, len(s)*growFactor)
	data := make([]byte, size)
	n := copy(data[size-len(s):], s)
	_ = n

	g := &GapBuffer{
		data:  data,
		start: 0,
		end:   size - len(s),
		lines: *newLineBuffer(s),
	}

	return g
}

// Size returns the logical length of the text in bytes, including the
// trailing newline.
func (g *GapBuffer) Size() int {
	return len(g.data) - (g.end - g.start)
}

// LineCount returns the number of lines (the number of '\n' bytes, since
// every line including the last ends in one).
func (g *GapBuffer) LineCount() int {
	return g.lines.count()
}

// String returns the full logical content.
func (g *GapBuffer) String() string {
	var b strings.Builder
	b.Grow(g.Size())
	b.Write(g.data[:g.start])
	b.Write(g.data[g.end:])

	return b.String()
}

// CharAt returns the byte at the given logical offset. Out-of-range
// positions clamp: CharAt(Size()) (and beyond) returns '\n'.
func (g *GapBuffer) CharAt(pos int) byte {
	if pos < 0 {
		pos = 0
	}

	if pos >= g.Size() {
		return '\n'
	}

	return g.byteAtLogical(pos)
}

// byteAtLogical reads the logical byte at pos without moving the gap.
func (g *GapBuffer) byteAtLogical(pos int) byte {
	if pos < g.start {
		return g.data[pos]
	}

	return g.data[pos+(g.end-g.start)]
}

// Substring returns the len bytes of logical text starting at start. The
// range is clamped to the buffer's bounds.
func (g *GapBuffer) Substring(start, length int) []byte {
	if start < 0 {
		start = 0
	}

	size := g.Size()
	if start > size {
		start = size
	}

	end := start + length
	if end > size {
		end = size
	}

	if end <= start {
		return nil
	}

	out := make([]byte, 0, end-start)
	for pos := start; pos < end; pos++ {
		out = append(out, g.byteAtLogical(pos))
	}

	return out
}

// MoveGapTo relocates the gap so that the logical byte at pos lies
// immediately after the gap. Callers that need a contiguous view (regex
// matching) must call this first.
func (g *GapBuffer) MoveGapTo(pos int) {
	if pos < 0 {
		pos = 0
	}

	size := g.Size()
	if pos > size {
		pos = size
	}

	switch {
	case pos < g.start:
		shift := g.start - pos
		copy(g.data[g.end-shift:g.end], g.data[pos:g.start])
		g.start = pos
		g.end -= shift
	case pos > g.start:
		shift := pos - g.start
		copy(g.data[g.start:g.start+shift], g.data[g.end:g.end+shift])
		g.start += shift
		g.end += shift
	}
}

// ContiguousFrom moves the gap to pos and returns the logical text from pos
// to the end as one contiguous slice. The returned slice aliases the
// buffer's storage and is invalidated by the next mutation.
func (g *GapBuffer) ContiguousFrom(pos int) []byte {
	g.MoveGapTo(pos)

	return g.data[g.end:]
}

// IndexOf returns the offset of the next occurrence of b at or after from,
// and false if there is none.
func (g *GapBuffer) IndexOf(b byte, from int) (int, bool) {
	size := g.Size()
	for pos := from; pos < size; pos++ {
		if g.byteAtLogical(pos) == b {
			return pos, true
		}
	}

	return 0, false
}

// LastIndexOf returns the offset of the previous occurrence of b strictly
// before the given position, and false if there is none.
func (g *GapBuffer) LastIndexOf(b byte, before int) (int, bool) {
	for pos := before - 1; pos >= 0; pos-- {
		if g.byteAtLogical(pos) == b {
			return pos, true
		}
	}

	return 0, false
}

// grow enlarges the backing array, at least doubling it, so the gap can
// hold at least need more bytes.
func (g *GapBuffer) grow(need int) {
	size := max(len(g.data)*growFactor, len(g.data)+max(need, minGap)*growFactor)
	tmp := make([]byte, size)
	copy(tmp, g.data[:g.start])
	newEnd := size - (len(g.data) - g.end)
	copy(tmp[newEnd:], g.data[g.end:])
	g.data = tmp
	g.end = newEnd
}

// Insert inserts bytes at pos, moving the gap there first.
func (g *GapBuffer) Insert(pos int, bytes []byte) {
	if len(bytes) == 0 {
		return
	}

	g.MoveGapTo(pos)

	if g.end-g.start < len(bytes) {
		g.grow(len(bytes))
	}

	g.lines.insert(bytes, pos)
	n := copy(g.data[g.start:], bytes)
	g.start += n
}

// Delete removes length bytes starting at pos, moving the gap there first.
// Deleting the buffer's final newline re-inserts one, preserving the
// trailing-newline invariant. Out-of-range deletes are clamped/no-ops.
func (g *GapBuffer) Delete(pos, length int) {
	if length <= 0 {
		return
	}

	size := g.Size()
	if pos < 0 {
		pos = 0
	}

	if pos >= size {
		return
	}

	if pos+length > size {
		length = size - pos
	}

	g.MoveGapTo(pos)
	deleted := append([]byte(nil), g.data[g.end:g.end+length]...)
	g.lines.delete(deleted, pos)
	g.end += length

	if g.Size() == 0 || g.byteAtLogical(g.Size()-1) != '\n' {
		g.Insert(g.Size(), []byte{'\n'})
	}
}

// PosToLineCol decomposes a byte offset into a 0-based (line, col) pair.
func (g *GapBuffer) PosToLineCol(pos int) (line, col int) {
	return g.lines.posToLineCol(pos)
}

// LineColToPos is the inverse of PosToLineCol; col is clamped to the line's
// length.
func (g *GapBuffer) LineColToPos(line, col int) int {
	return g.lines.lineColToPos(line, col)
}

// LineLength returns the length of line (0-based), excluding its trailing
// newline.
func (g *GapBuffer) LineLength(line int) int {
	return g.lines.lineLength(line)
}

// runeLen is a small helper shared by callers that need to step by rune
// rather than by byte; kept here since gapbuffer is the only package that
// reads raw bytes out of the store.
func runeLen(b []byte) int {
	_, size := utf8.DecodeRune(b)

	return size
}
