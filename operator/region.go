// Package operator implements the verbs (d, c, y, >, <, gu, gU, g~, J) that
// apply to a Region built from a Motion or a Visual selection.
package operator

import "github.com/Release-Candidate/go-modal-editor/motion"

// Region is an ordered half-open byte range [Start, End).
type Region struct {
	Start, End int
}

// FromMotion builds the Region a motion composes into, encoding the
// linewise/exclusive/inclusive rules.
func FromMotion(text motion.TextSource, cursor, target int, m motion.Motion) Region {
	if m.Linewise {
		startLine, _ := text.PosToLineCol(min(cursor, target))
		endLine, _ := text.PosToLineCol(max(cursor, target))
		start := text.LineColToPos(startLine, 0)
		end := lineStartAfter(text, endLine)

		return Region{Start: start, End: end}
	}

	if m.Exclusive {
		return Region{Start: min(cursor, target), End: max(cursor, target)}
	}

	// Inclusive: the endpoint is advanced by one byte so the last
	// character is included.
	lo, hi := cursor, target
	if lo > hi {
		lo, hi = hi, lo
	}

	return Region{Start: lo, End: hi + 1}
}

// FromVisual builds the Region for a visual selection between anchor and
// cursor (inclusive of cursor, optionally expanded to
// whole lines for linewise visual mode.
func FromVisual(text motion.TextSource, anchor, cursor int, linewise bool) Region {
	lo, hi := anchor, cursor
	if lo > hi {
		lo, hi = hi, lo
	}

	hi++

	if !linewise {
		return Region{Start: lo, End: hi}
	}

	startLine, _ := text.PosToLineCol(lo)
	endLine, _ := text.PosToLineCol(hi - 1)

	return Region{Start: text.LineColToPos(startLine, 0), End: lineStartAfter(text, endLine)}
}

// lineStartAfter returns the offset of the start of the line after line,
// or the buffer's size if line is the last line.
func lineStartAfter(text motion.TextSource, line int) int {
	if line >= text.LineCount()-1 {
		return text.Size()
	}

	return text.LineColToPos(line+1, 0)
}
