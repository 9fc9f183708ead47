package motion

// TextSource is the slice of gapbuffer.GapBuffer's API that motion
// evaluation needs; gapbuffer.GapBuffer satisfies it structurally.
type TextSource interface {
	Size() int
	CharAt(pos int) byte
	PosToLineCol(pos int) (int, int)
	LineColToPos(line, col int) int
	LineLength(line int) int
	LineCount() int
	IndexOf(b byte, from int) (int, bool)
	LastIndexOf(b byte, before int) (int, bool)
}

// Deps supplies the external collaborators a handful of motions need:
// pattern search and named marks. Both are optional; a nil field means
// that motion kind is a no-op (stays at cursor).
type Deps struct {
	// Search returns the offset of the next/previous match of pattern,
	// forward if fwd, and false if there is none.
	Search func(pattern string, fwd bool, from int) (int, bool)
	// Mark resolves a mark name to a buffer offset.
	Mark func(name byte) (int, bool)
}

// Apply evaluates m against cursor, repeating its one-step operation
// Repeats() times, and returns the target offset. wantCol is the rune
// column j/k try to preserve; Apply returns the (possibly updated) one
// the caller should persist for the next j/k.
func (m Motion) Apply(text TextSource, cursor, wantCol int, deps Deps) (target, newWantCol int) {
	pos := cursor
	col := wantCol

	for i := 0; i < m.Repeats(); i++ {
		pos, col = m.step(text, pos, col, deps)
	}

	return pos, col
}

func (m Motion) step(text TextSource, pos, wantCol int, deps Deps) (int, int) {
	switch m.Kind {
	case Left:
		if pos > 0 {
			_, col := text.PosToLineCol(pos)
			if col > 0 {
				pos--
			}
		}

		return pos, runeCol(text, pos)
	case Right:
		line, col := text.PosToLineCol(pos)
		if col < text.LineLength(line)-1 {
			pos++
		}

		return pos, runeCol(text, pos)
	case Up:
		line, _ := text.PosToLineCol(pos)
		if line == 0 {
			return pos, wantCol
		}

		return text.LineColToPos(line-1, wantCol), wantCol
	case Down:
		line, _ := text.PosToLineCol(pos)
		if line >= text.LineCount()-1 {
			return pos, wantCol
		}

		return text.LineColToPos(line+1, wantCol), wantCol
	case LineStart:
		line, _ := text.PosToLineCol(pos)

		return text.LineColToPos(line, 0), 0
	case FirstNonBlank:
		line, _ := text.PosToLineCol(pos)
		start := text.LineColToPos(line, 0)
		col := 0

		for col < text.LineLength(line) && isSpace(text.CharAt(start+col)) {
			col++
		}

		target := start + col

		return target, runeCol(text, target)
	case LineEnd:
		line, _ := text.PosToLineCol(pos)
		length := text.LineLength(line)
		target := text.LineColToPos(line, max0(length-1))

		return target, runeCol(text, target)
	case WordNext:
		target := nextWordStart(text, pos, false)

		return target, runeCol(text, target)
	case WORDNext:
		target := nextWordStart(text, pos, true)

		return target, runeCol(text, target)
	case WordPrev:
		target := prevWordStart(text, pos, false)

		return target, runeCol(text, target)
	case WORDPrev:
		target := prevWordStart(text, pos, true)

		return target, runeCol(text, target)
	case WordEndNext:
		target := nextWordEnd(text, pos, false)

		return target, runeCol(text, target)
	case WORDEndNext:
		target := nextWordEnd(text, pos, true)

		return target, runeCol(text, target)
	case WordEndPrev:
		target := prevWordEnd(text, pos, false)

		return target, runeCol(text, target)
	case WORDEndPrev:
		target := prevWordEnd(text, pos, true)

		return target, runeCol(text, target)
	case ParaPrev:
		target := prevBlankLine(text, pos)

		return target, 0
	case ParaNext:
		target := nextBlankLine(text, pos)

		return target, 0
	case GotoFirstLine:
		return text.LineColToPos(0, 0), 0
	case GotoLine:
		line := text.LineCount() - 1
		if m.Count > 0 {
			line = min0(m.Count-1, text.LineCount()-1)
		}

		return text.LineColToPos(line, 0), 0
	case MatchBracket:
		target, ok := matchBracket(text, pos)
		if !ok {
			return pos, wantCol
		}

		return target, runeCol(text, target)
	case FindChar:
		if target, ok := findCharInLine(text, pos, m.Arg, true, false); ok {
			return target, runeCol(text, target)
		}

		return pos, wantCol
	case FindCharBack:
		if target, ok := findCharInLine(text, pos, m.Arg, false, false); ok {
			return target, runeCol(text, target)
		}

		return pos, wantCol
	case TillChar:
		if target, ok := findCharInLine(text, pos, m.Arg, true, true); ok {
			return target, runeCol(text, target)
		}

		return pos, wantCol
	case TillCharBack:
		if target, ok := findCharInLine(text, pos, m.Arg, false, true); ok {
			return target, runeCol(text, target)
		}

		return pos, wantCol
	case SearchForward:
		if deps.Search != nil {
			if target, ok := deps.Search(m.Pattern, true, pos); ok {
				return target, runeCol(text, target)
			}
		}

		return pos, wantCol
	case SearchBackward:
		if deps.Search != nil {
			if target, ok := deps.Search(m.Pattern, false, pos); ok {
				return target, runeCol(text, target)
			}
		}

		return pos, wantCol
	case MarkJump:
		if deps.Mark != nil {
			if target, ok := deps.Mark(m.MarkName); ok {
				return target, runeCol(text, target)
			}
		}

		return pos, wantCol
	default:
		return pos, wantCol
	}
}

func runeCol(text TextSource, pos int) int {
	_, col := text.PosToLineCol(pos)

	return col
}

func max0(n int) int {
	if n < 0 {
		return 0
	}

	return n
}

func min0(a, b int) int {
	if a < b {
		return a
	}

	return b
}
