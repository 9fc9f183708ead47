// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     history.go
//
// =============================================================================

package editor

import "strings"

// AddHistory appends line to the command or search history (':' keyed
// separately from '/'/'?', which share one history the way vim's own
// search history does), trimmed to the 'history' option's bound.
func (e *Editor) AddHistory(prompt rune, line string) {
	if line == "" {
		return
	}

	limit := e.globalScope.History()

	if prompt == ':' {
		e.cmdHistory = appendBounded(e.cmdHistory, line, limit)
	} else {
		e.searchHistory = appendBounded(e.searchHistory, line, limit)
	}
}

func appendBounded(hist []string, line string, limit int) []string {
	if n := len(hist); n > 0 && hist[n-1] == line {
		return hist
	}

	hist = append(hist, line)

	if limit > 0 && len(hist) > limit {
		hist = hist[len(hist)-limit:]
	}

	return hist
}

func (e *Editor) historyFor(prompt rune) []string {
	if prompt == ':' {
		return e.cmdHistory
	}

	return e.searchHistory
}

// HistoryUp walks one entry further back in the history for prompt whose
// text starts with prefix, remembering prefix across repeated calls
// until the next Command-line frame resets it.
func (e *Editor) HistoryUp(prompt rune, prefix string) (string, bool) {
	hist := e.historyFor(prompt)

	start := len(hist) - 1
	if e.histCursor != -1 {
		start = e.histCursor - 1
	} else {
		e.histPrefix = prefix
	}

	for i := start; i >= 0; i-- {
		if strings.HasPrefix(hist[i], e.histPrefix) {
			e.histCursor = i

			return hist[i], true
		}
	}

	return "", false
}

// HistoryDown walks one entry forward; past the newest matching entry it
// leaves the Command-line buffer untouched.
func (e *Editor) HistoryDown(prompt rune, prefix string) (string, bool) {
	hist := e.historyFor(prompt)
	if e.histCursor == -1 {
		return "", false
	}

	for i := e.histCursor + 1; i < len(hist); i++ {
		if strings.HasPrefix(hist[i], e.histPrefix) {
			e.histCursor = i

			return hist[i], true
		}
	}

	return "", false
}
