// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     linebuffer.go
//
// =============================================================================

package gapbuffer

import "bytes"

// lineBuffer holds the length of every '\n'-separated segment of the
// text, each excluding its newline. Because the gap buffer enforces that
// the text always ends in '\n', the last entry is always the empty segment
// after that final newline (length 0); count() leaves it out, so
// sum(lengths) + count() == logical size always holds.
type lineBuffer struct {
	lengths []int
}

// newLineBuffer builds the initial line index for s, which must already end
// in '\n'.
func newLineBuffer(s string) *lineBuffer {
	lb := &lineBuffer{lengths: []int{0}}
	lb.insert([]byte(s), 0)

	return lb
}

func (lb *lineBuffer) count() int {
	return len(lb.lengths) - 1
}

func (lb *lineBuffer) lineLength(line int) int {
	if line < 0 || line >= len(lb.lengths) {
		return 0
	}

	return lb.lengths[line]
}

// posToLineCol walks the cumulative line lengths (each plus one for the
// newline) to find which line pos falls in.
func (lb *lineBuffer) posToLineCol(pos int) (line, col int) {
	remaining := pos
	for i, l := range lb.lengths {
		lineSpan := l + 1
		if remaining < lineSpan || i == len(lb.lengths)-1 {
			return i, min(remaining, l)
		}

		remaining -= lineSpan
	}

	return 0, 0
}

// lineColToPos is the inverse of posToLineCol. col is clamped to the line's
// length.
func (lb *lineBuffer) lineColToPos(line, col int) int {
	if line < 0 {
		line = 0
	}

	if line >= len(lb.lengths) {
		line = len(lb.lengths) - 1
	}

	pos := 0
	for i := 0; i < line; i++ {
		pos += lb.lengths[i] + 1
	}

	if col < 0 {
		col = 0
	}

	if col > lb.lengths[line] {
		col = lb.lengths[line]
	}

	return pos + col
}

// splitOnNewline splits data on '\n', keeping empty segments, the way
// strings.Split would -- but operating on bytes and without pulling in a
// trailing empty-slice special case at the call site.
func splitOnNewline(data []byte) [][]byte {
	parts := make([][]byte, 0, bytes.Count(data, []byte{'\n'})+1)

	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			parts = append(parts, data)

			return parts
		}

		parts = append(parts, data[:idx])
		data = data[idx+1:]
	}
}

// insert updates the line index for bytes inserted at the absolute
// position pos (which must correspond to the pre-insert text).
func (lb *lineBuffer) insert(data []byte, pos int) {
	if len(data) == 0 {
		return
	}

	line, col := lb.posToLineCol(pos)
	parts := splitOnNewline(data)

	if len(parts) == 1 {
		lb.lengths[line] += len(parts[0])

		return
	}

	tail := lb.lengths[line] - col
	entries := make([]int, len(parts))
	entries[0] = col + len(parts[0])

	for i := 1; i < len(parts)-1; i++ {
		entries[i] = len(parts[i])
	}

	entries[len(parts)-1] = len(parts[len(parts)-1]) + tail

	merged := make([]int, 0, len(lb.lengths)+len(entries)-1)
	merged = append(merged, lb.lengths[:line]...)
	merged = append(merged, entries...)
	merged = append(merged, lb.lengths[line+1:]...)
	lb.lengths = merged
}

// delete updates the line index for the removal of deleted, which was the
// logical content of [pos, pos+len(deleted)) before the delete.
func (lb *lineBuffer) delete(deleted []byte, pos int) {
	if len(deleted) == 0 {
		return
	}

	line, col := lb.posToLineCol(pos)
	newlineCount := bytes.Count(deleted, []byte{'\n'})
	lastLine := line + newlineCount

	var tailAfterLastNewline int
	if idx := bytes.LastIndexByte(deleted, '\n'); idx >= 0 {
		tailAfterLastNewline = len(deleted) - idx - 1
	} else {
		tailAfterLastNewline = col + len(deleted)
	}

	remainderOfLastLine := lb.lengths[lastLine] - tailAfterLastNewline
	lb.lengths[line] = col + remainderOfLastLine

	merged := make([]int, 0, len(lb.lengths)-(lastLine-line))
	merged = append(merged, lb.lengths[:line+1]...)
	merged = append(merged, lb.lengths[lastLine+1:]...)
	lb.lengths = merged
}
