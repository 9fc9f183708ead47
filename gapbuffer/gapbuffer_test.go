// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     gapbuffer_test.go
//
// =============================================================================

package gapbuffer_test

import (
	"testing"

	"github.com/Release-Candidate/go-modal-editor/gapbuffer"
	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	g := gapbuffer.New()

	assert.Equal(t, "\n", g.String())
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 1, g.LineCount())
}

func TestNewFromStringAddsTrailingNewline(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello")

	assert.Equal(t, "hello\n", g.String())
}

func TestInsertPlain(t *testing.T) {
	t.Parallel()

	g := gapbuffer.New()
	g.Insert(0, []byte("hello"))

	assert.Equal(t, "hello\n", g.String())
}

func TestInsertMiddle(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("helloworld")
	g.Insert(5, []byte(" "))

	assert.Equal(t, "hello world\n", g.String())
}

func TestInsertMultiline(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("helloworld")
	g.Insert(5, []byte("\nfunny\n"))

	assert.Equal(t, "hello\nfunny\nworld\n", g.String())
	assert.Equal(t, 3, g.LineCount())
}

func TestDeleteWithinLine(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello world")
	g.Delete(5, 1)

	assert.Equal(t, "helloworld\n", g.String())
}

func TestDeleteAcrossLines(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello\nfunny\nworld")
	g.Delete(3, 6) // removes "lo\nfun"

	assert.Equal(t, "helny\nworld\n", g.String())
	assert.Equal(t, 2, g.LineCount())
}

func TestDeleteFinalNewlineReinsertsOne(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello")
	g.Delete(g.Size()-1, 1)

	assert.Equal(t, "hello\n", g.String())
}

func TestCharAtClampsToNewline(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hi")

	assert.Equal(t, byte('\n'), g.CharAt(g.Size()))
	assert.Equal(t, byte('\n'), g.CharAt(g.Size()+50))
}

func TestSubstring(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello world")

	assert.Equal(t, []byte("hello"), g.Substring(0, 5))
	assert.Equal(t, []byte("world\n"), g.Substring(6, 100))
}

func TestPosLineColRoundTrip(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("the quick\nbrown fox\njumps over")

	for pos := 0; pos < g.Size(); pos++ {
		line, col := g.PosToLineCol(pos)
		back := g.LineColToPos(line, col)
		assert.Equal(t, pos, back, "pos %d", pos)
	}
}

func TestMoveGapToThenContiguousFrom(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello world")
	view := g.ContiguousFrom(6)

	assert.Equal(t, "world\n", string(view))
	assert.Equal(t, "hello world\n", g.String(), "content unchanged by a read-only move")
}

func TestIndexOfAndLastIndexOf(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("hello\nworld\nhello")

	pos, ok := g.IndexOf('\n', 0)
	assert.True(t, ok)
	assert.Equal(t, 5, pos)

	pos, ok = g.LastIndexOf('\n', g.Size())
	assert.True(t, ok)
	assert.Equal(t, 17, pos)

	_, ok = g.IndexOf('z', 0)
	assert.False(t, ok)
}

func TestGrowsAcrossManyInserts(t *testing.T) {
	t.Parallel()

	g := gapbuffer.New()
	for i := 0; i < 2000; i++ {
		g.Insert(g.Size()-1, []byte("x"))
	}

	assert.Equal(t, 2001, g.Size())
}

// TestInvariantSizeEqualsLineLengthsPlusCount checks that Size always
// equals the sum of line lengths plus the line count, across a sequence
// of mixed edits.
func TestInvariantSizeEqualsLineLengthsPlusCount(t *testing.T) {
	t.Parallel()

	g := gapbuffer.NewFromString("alpha\nbeta\ngamma")
	g.Insert(3, []byte("\nXYZ\n"))
	g.Delete(2, 4)
	g.Insert(g.Size()-1, []byte("\nend"))

	sum := 0
	for line := 0; line < g.LineCount(); line++ {
		sum += g.LineLength(line)
	}

	assert.Equal(t, g.Size(), sum+g.LineCount())
}
