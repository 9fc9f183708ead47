// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     queue.go
//
// =============================================================================

package mode

import (
	"strings"

	"github.com/Release-Candidate/go-modal-editor/display"
)

// Queue is the synthetic-event source spliced ahead of the real Display
// : always drained first, used both for composed Normal
// commands (SendKeys) and for macro/test input injection.
type Queue struct {
	pending []display.Event
}

// Push appends events to the back of the queue.
func (q *Queue) Push(events []display.Event) {
	q.pending = append(q.pending, events...)
}

// Pop removes and returns the front event, if any.
func (q *Queue) Pop() (display.Event, bool) {
	if len(q.pending) == 0 {
		return display.Event{}, false
	}

	ev := q.pending[0]
	q.pending = q.pending[1:]

	return ev, true
}

// Len reports how many synthetic events are queued.
func (q *Queue) Len() int {
	return len(q.pending)
}

// SendKeys translates a keystroke-notation string into Events, the same
// shorthand editor_send_keys uses to
// compose commands like `a` ("li"), `O` ("0i<cr><esc>ki") out of existing
// motion/operator keys: plain runes become KeyRune events; `<esc>`,
// `<cr>`, `<bs>` become the corresponding special keys.
func SendKeys(s string) []display.Event {
	var events []display.Event

	for len(s) > 0 {
		if s[0] == '<' {
			if end := strings.IndexByte(s, '>'); end > 0 {
				switch strings.ToLower(s[1:end]) {
				case "esc":
					events = append(events, display.NewKeyEvent(display.KeyEsc, 0, display.ModNone))
				case "cr":
					events = append(events, display.NewKeyEvent(display.KeyEnter, 0, display.ModNone))
				case "bs":
					events = append(events, display.NewKeyEvent(display.KeyBackspace, 0, display.ModNone))
				}

				s = s[end+1:]

				continue
			}
		}

		r := []rune(s)[0]
		events = append(events, display.NewKeyEvent(display.KeyRune, r, display.ModNone))
		s = s[len(string(r)):]
	}

	return events
}
