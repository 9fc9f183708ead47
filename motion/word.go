package motion

func classAt(text TextSource, pos int, isWORD bool) int {
	if pos >= text.Size() {
		return 0
	}

	b := text.CharAt(pos)
	if isWORD {
		if isSpace(b) {
			return 0
		}

		return 1
	}

	return charClass(b)
}

func nextWordStart(text TextSource, pos int, isWORD bool) int {
	size := text.Size()
	if pos >= size-1 {
		return pos
	}

	startClass := classAt(text, pos, isWORD)
	if startClass != 0 {
		for pos < size && classAt(text, pos, isWORD) == startClass {
			pos++
		}
	}

	for pos < size && classAt(text, pos, isWORD) == 0 {
		pos++
	}

	if pos >= size {
		pos = size - 1
	}

	return pos
}

func prevWordStart(text TextSource, pos int, isWORD bool) int {
	if pos <= 0 {
		return 0
	}

	pos--

	for pos > 0 && classAt(text, pos, isWORD) == 0 {
		pos--
	}

	if classAt(text, pos, isWORD) == 0 {
		return 0
	}

	cls := classAt(text, pos, isWORD)
	for pos > 0 && classAt(text, pos-1, isWORD) == cls {
		pos--
	}

	return pos
}

func nextWordEnd(text TextSource, pos int, isWORD bool) int {
	size := text.Size()
	if pos >= size-1 {
		return pos
	}

	pos++

	for pos < size && classAt(text, pos, isWORD) == 0 {
		pos++
	}

	if pos >= size {
		return size - 1
	}

	cls := classAt(text, pos, isWORD)
	for pos+1 < size && classAt(text, pos+1, isWORD) == cls {
		pos++
	}

	return pos
}

func prevWordEnd(text TextSource, pos int, isWORD bool) int {
	if pos <= 0 {
		return 0
	}

	curCls := classAt(text, pos, isWORD)
	pos--

	if curCls != 0 {
		for pos > 0 && classAt(text, pos, isWORD) == curCls {
			pos--
		}
	}

	for pos > 0 && classAt(text, pos, isWORD) == 0 {
		pos--
	}

	return pos
}

func nextBlankLine(text TextSource, pos int) int {
	line, _ := text.PosToLineCol(pos)

	for l := line + 1; l < text.LineCount(); l++ {
		if text.LineLength(l) == 0 {
			return text.LineColToPos(l, 0)
		}
	}

	return text.LineColToPos(text.LineCount()-1, 0)
}

func prevBlankLine(text TextSource, pos int) int {
	line, _ := text.PosToLineCol(pos)

	for l := line - 1; l >= 0; l-- {
		if text.LineLength(l) == 0 {
			return text.LineColToPos(l, 0)
		}
	}

	return text.LineColToPos(0, 0)
}

var bracketPairs = map[byte]byte{'(': ')', '[': ']', '{': '}'}
var bracketOpeners = map[byte]byte{')': '(', ']': '[', '}': '{'}

func isOpener(b byte) bool { _, ok := bracketPairs[b]; return ok }
func isCloser(b byte) bool { _, ok := bracketOpeners[b]; return ok }

// matchBracket searches forward from pos for the first bracket character,
// then scans for its partner honoring nesting depth.
func matchBracket(text TextSource, pos int) (int, bool) {
	size := text.Size()
	start := pos

	for start < size {
		b := text.CharAt(start)
		if isOpener(b) || isCloser(b) {
			break
		}

		start++
	}

	if start >= size {
		return 0, false
	}

	b := text.CharAt(start)
	if isOpener(b) {
		want := bracketPairs[b]
		depth := 1

		for i := start + 1; i < size; i++ {
			c := text.CharAt(i)
			switch {
			case c == b:
				depth++
			case c == want:
				depth--
				if depth == 0 {
					return i, true
				}
			}
		}

		return 0, false
	}

	want := bracketOpeners[b]
	depth := 1

	for i := start - 1; i >= 0; i-- {
		c := text.CharAt(i)
		switch {
		case c == b:
			depth++
		case c == want:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// findCharInLine implements f/F/t/T: search within the current line only.
func findCharInLine(text TextSource, pos int, target rune, forward, till bool) (int, bool) {
	line, _ := text.PosToLineCol(pos)
	lineStart := text.LineColToPos(line, 0)
	lineEnd := lineStart + text.LineLength(line)

	if forward {
		for i := pos + 1; i < lineEnd; i++ {
			if rune(text.CharAt(i)) == target {
				if till {
					return i - 1, true
				}

				return i, true
			}
		}
	} else {
		for i := pos - 1; i >= lineStart; i-- {
			if rune(text.CharAt(i)) == target {
				if till {
					return i + 1, true
				}

				return i, true
			}
		}
	}

	return 0, false
}
