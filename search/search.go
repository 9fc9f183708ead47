// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     search.go
//
// =============================================================================

// Package search implements Regex contract: smartcase
// resolution plus a regexp2-backed adapter that matches over a
// contiguous view of the gap buffer (move_gap_to/contiguous_from).
package search

import (
	"errors"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// ErrBadRegex wraps a pattern compile failure, carrying the underlying
// compiler's own message.
var ErrBadRegex = errors.New("search: bad regex")

// ErrNoMatch is returned when a compiled pattern has no match anywhere
// in the searched text.
var ErrNoMatch = errors.New("search: no match")

// Direction is the search direction for the next/previous-match motions.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Match is one match's half-open byte span within the searched text.
type Match struct {
	Start, End int
}

// Regex is the contract the rest of the editor depends on, letting tests
// substitute a fake matcher without pulling in regexp2.
type Regex interface {
	// FindAll returns every non-overlapping match in text, in order.
	FindAll(text []byte) ([]Match, error)
}

type regexp2Regex struct {
	re *regexp2.Regexp
}

// Compile builds a Regex from pattern, applying smartcase
// rule: ignoreCase is honored only when set; if smartCase is also set, a
// pattern containing an uppercase byte forces case-sensitive matching
// regardless of ignoreCase.
func Compile(pattern string, ignoreCase, smartCase bool) (Regex, error) {
	opts := regexp2.None
	if ResolveIgnoreCase(pattern, ignoreCase, smartCase) {
		opts |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, errWrap(err)
	}

	return &regexp2Regex{re: re}, nil
}

func errWrap(err error) error {
	return errors.Join(ErrBadRegex, err)
}

// ResolveIgnoreCase implements smartcase decision table
// directly: ignorecase=false always means case-sensitive; ignorecase=true
// with smartcase=false always means case-insensitive; both true means
// case-insensitive unless the pattern itself contains an uppercase byte.
func ResolveIgnoreCase(pattern string, ignoreCase, smartCase bool) bool {
	if !ignoreCase {
		return false
	}

	if !smartCase {
		return true
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] >= 'A' && pattern[i] <= 'Z' {
			return false
		}
	}

	return true
}

// FindAll scans text left to right, advancing past each match's end (or
// by one rune for a zero-length match) to find every non-overlapping
// occurrence. regexp2 only exposes rune-indexed matching, so every match
// is translated back to the byte offsets the rest of the editor expects
// via runeByteOffsets.
func (r *regexp2Regex) FindAll(text []byte) ([]Match, error) {
	runes := []rune(string(text))
	offsets := runeByteOffsets(text)

	var matches []Match

	m, err := r.re.FindRunesMatch(runes)
	if err != nil {
		return nil, errWrap(err)
	}

	for m != nil {
		start := offsets[m.Index]
		end := offsets[m.Index+m.Length]
		matches = append(matches, Match{Start: start, End: end})

		m, err = r.re.FindNextMatch(m)
		if err != nil {
			return nil, errWrap(err)
		}
	}

	return matches, nil
}

// runeByteOffsets returns, for each rune index in text (0 through the
// rune count inclusive), the byte offset that rune starts at -- the
// final entry is len(text), the byte offset just past the last rune.
func runeByteOffsets(text []byte) []int {
	offsets := make([]int, 0, len(text)+1)

	for i := 0; i < len(text); {
		offsets = append(offsets, i)

		_, size := utf8.DecodeRune(text[i:])
		i += size
	}

	offsets = append(offsets, len(text))

	return offsets
}

// Next picks the match to jump to from matches (sorted by Start) given
// the cursor's current position and direction, wrapping around the ends
// of the buffer when no match lies ahead (or behind). Returns ErrNoMatch
// only when matches is empty.
func Next(matches []Match, cursor int, dir Direction) (Match, bool, error) {
	if len(matches) == 0 {
		return Match{}, false, ErrNoMatch
	}

	if dir == Forward {
		for _, m := range matches {
			if m.Start > cursor {
				return m, false, nil
			}
		}

		return matches[0], true, nil
	}

	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Start < cursor {
			return matches[i], false, nil
		}
	}

	return matches[len(matches)-1], true, nil
}
