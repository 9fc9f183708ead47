package operator

import (
	"bytes"
	"errors"

	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/registry"
)

// ErrReindentUnsupported is returned by Apply for Reindent: "=" is
// deferred to Options-driven indent logic, out of core scope.
var ErrReindentUnsupported = errors.New("operator: re-indent is not part of the core engine")

// Kind identifies an operator verb.
type Kind int

const (
	Delete Kind = iota
	Change
	Yank
	ShiftRight
	ShiftLeft
	LowerCase
	UpperCase
	ToggleCase
	Join
	Reindent
)

// Result describes what happened after Apply, for the caller (mode/editor)
// to act on: where to place the cursor, and whether Insert mode should be
// entered next (Change).
type Result struct {
	Cursor      int
	EnterInsert bool
}

// Apply performs kind over region on b, writing yank/delete registers as
// describes. regName is the register the user prefixed with
// "<name>, or 0 for the unnamed register only.
func Apply(b *buffer.Buffer, region Region, kind Kind, regs *registry.Table, regName byte, shiftWidth int) (Result, error) {
	switch kind {
	case Yank, Reindent:
	default:
		b.StartActionGroup()
	}

	switch kind {
	case Delete:
		return applyDelete(b, region, regs, regName)
	case Change:
		res, err := applyDelete(b, region, regs, regName)
		if err != nil {
			return res, err
		}

		res.EnterInsert = true

		return res, nil
	case Yank:
		text := string(b.Text.Substring(region.Start, region.End-region.Start))
		regs.Yank(regName, text)

		return Result{Cursor: region.Start}, nil
	case ShiftRight:
		return applyShift(b, region, shiftWidth)
	case ShiftLeft:
		return applyShift(b, region, -shiftWidth)
	case LowerCase:
		return applyCaseTransform(b, region, bytes.ToLower)
	case UpperCase:
		return applyCaseTransform(b, region, bytes.ToUpper)
	case ToggleCase:
		return applyCaseTransform(b, region, toggleCase)
	case Join:
		return applyJoin(b, region)
	case Reindent:
		return Result{}, ErrReindentUnsupported
	default:
		return Result{}, errors.New("operator: unknown kind")
	}
}

func applyDelete(b *buffer.Buffer, region Region, regs *registry.Table, regName byte) (Result, error) {
	text := string(b.Text.Substring(region.Start, region.End-region.Start))
	regs.Yank(regName, text)

	if err := b.DoDelete(region.Start, region.End-region.Start); err != nil {
		return Result{}, err
	}

	return Result{Cursor: region.Start}, nil
}

// applyShift indents every line covered by region by width columns (a
// negative width shifts left, clamped to column 0).
func applyShift(b *buffer.Buffer, region Region, width int) (Result, error) {
	startLine, _ := b.Text.PosToLineCol(region.Start)
	endLine, _ := b.Text.PosToLineCol(max(region.Start, region.End-1))

	for line := endLine; line >= startLine; line-- {
		pos := b.Text.LineColToPos(line, 0)

		switch {
		case width > 0:
			if err := b.DoInsert(pos, bytes.Repeat([]byte{' '}, width)); err != nil {
				return Result{}, err
			}
		case width < 0:
			n := -width
			length := b.Text.LineLength(line)

			removed := 0
			for removed < n && removed < length && b.Text.CharAt(pos+removed) == ' ' {
				removed++
			}

			if removed > 0 {
				if err := b.DoDelete(pos, removed); err != nil {
					return Result{}, err
				}
			}
		}
	}

	return Result{Cursor: b.Text.LineColToPos(startLine, 0)}, nil
}

func applyCaseTransform(b *buffer.Buffer, region Region, f func([]byte) []byte) (Result, error) {
	original := b.Text.Substring(region.Start, region.End-region.Start)
	transformed := f(original)

	if err := b.DoDelete(region.Start, len(original)); err != nil {
		return Result{}, err
	}

	if err := b.DoInsert(region.Start, transformed); err != nil {
		return Result{}, err
	}

	return Result{Cursor: region.Start}, nil
}

func toggleCase(data []byte) []byte {
	out := make([]byte, len(data))

	for i, c := range data {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c - ('a' - 'A')
		case c >= 'A' && c <= 'Z':
			out[i] = c + ('a' - 'A')
		default:
			out[i] = c
		}
	}

	return out
}

// applyJoin merges the line containing region.Start with the line after
// it, replacing the newline and the next line's leading whitespace with a
// single space.
func applyJoin(b *buffer.Buffer, region Region) (Result, error) {
	line, _ := b.Text.PosToLineCol(region.Start)
	if line >= b.Text.LineCount()-1 {
		return Result{Cursor: region.Start}, nil
	}

	lineEnd := b.Text.LineColToPos(line, b.Text.LineLength(line))
	nextLineStart := b.Text.LineColToPos(line+1, 0)

	indent := 0
	nextLen := b.Text.LineLength(line + 1)
	for indent < nextLen && isBlank(b.Text.CharAt(nextLineStart+indent)) {
		indent++
	}

	if err := b.DoDelete(lineEnd, nextLineStart-lineEnd+indent); err != nil {
		return Result{}, err
	}

	needsSpace := lineEnd > b.Text.LineColToPos(line, 0) && indent < nextLen
	if needsSpace {
		if err := b.DoInsert(lineEnd, []byte(" ")); err != nil {
			return Result{}, err
		}
	}

	return Result{Cursor: lineEnd}, nil
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// KeyFor maps a normal-mode operator key (including the two-key gu/gU/g~)
// to a Kind and whether s names an operator, for the mode layer's
// dispatch table.
func KeyFor(s string) (Kind, bool) {
	switch s {
	case "d":
		return Delete, true
	case "c":
		return Change, true
	case "y":
		return Yank, true
	case ">":
		return ShiftRight, true
	case "<":
		return ShiftLeft, true
	case "gu":
		return LowerCase, true
	case "gU":
		return UpperCase, true
	case "g~":
		return ToggleCase, true
	case "J":
		return Join, true
	case "=":
		return Reindent, true
	default:
		return 0, false
	}
}
