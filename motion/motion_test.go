package motion_test

import (
	"testing"

	"github.com/Release-Candidate/go-modal-editor/gapbuffer"
	"github.com/Release-Candidate/go-modal-editor/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCountZeroIsLineStartNotACount(t *testing.T) {
	t.Parallel()

	count, rest := motion.ParseCount([]rune("0"))
	assert.Equal(t, 0, count)
	assert.Equal(t, []rune("0"), rest)
}

func TestParseCountMultiDigit(t *testing.T) {
	t.Parallel()

	count, rest := motion.ParseCount([]rune("42w"))
	assert.Equal(t, 42, count)
	assert.Equal(t, []rune("w"), rest)
}

func TestParseSingleKeyMotions(t *testing.T) {
	t.Parallel()

	m, n, err := motion.Parse([]rune("w"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, motion.WordNext, m.Kind)
	assert.True(t, m.Exclusive)
	assert.False(t, m.Linewise)
}

func TestParseIncompleteTwoKeyMotion(t *testing.T) {
	t.Parallel()

	_, _, err := motion.Parse([]rune("g"))
	assert.ErrorIs(t, err, motion.ErrIncomplete)

	_, _, err = motion.Parse([]rune("f"))
	assert.ErrorIs(t, err, motion.ErrIncomplete)
}

func TestParseGG(t *testing.T) {
	t.Parallel()

	m, n, err := motion.Parse([]rune("gg"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, motion.GotoFirstLine, m.Kind)
	assert.True(t, m.Linewise)
}

func TestParseUnknownKey(t *testing.T) {
	t.Parallel()

	_, _, err := motion.Parse([]rune("@"))
	assert.ErrorIs(t, err, motion.ErrUnknown)
}

// TestMotionCoverageScenario replays scenario 2: starting at
// column 0 of "the quick brown fox jumps over the lazy dog", the sequence
// w e ge b tx fr Tn Fh 4l $ b lands in order on q k e t o r (space) h u g d.
func TestMotionCoverageScenario(t *testing.T) {
	t.Parallel()

	text := gapbuffer.NewFromString("the quick brown fox jumps over the lazy dog")
	keys := []string{"w", "e", "ge", "b", "tx", "fr", "Tn", "Fh", "4l", "$", "b"}
	want := []byte{'q', 'k', 'e', 't', 'o', 'r', ' ', 'h', 'u', 'g', 'd'}

	pos := 0
	col := 0

	for i, key := range keys {
		runes := []rune(key)
		count, rest := motion.ParseCount(runes)
		m, _, err := motion.Parse(rest)
		require.NoError(t, err, "key %q", key)

		if count > 0 {
			m = m.WithCount(count)
		}

		pos, col = m.Apply(text, pos, col, motion.Deps{})
		assert.Equal(t, want[i], text.CharAt(pos), "step %d (%q): pos=%d", i, key, pos)
	}
}

func TestMatchBracket(t *testing.T) {
	t.Parallel()

	text := gapbuffer.NewFromString("foo(bar(baz))")
	m, _, err := motion.Parse([]rune("%"))
	require.NoError(t, err)

	target, _ := m.Apply(text, 3, 0, motion.Deps{})
	assert.Equal(t, byte(')'), text.CharAt(target))
	assert.Equal(t, 12, target)
}

func TestUpDownPreserveWantCol(t *testing.T) {
	t.Parallel()

	text := gapbuffer.NewFromString("aaaaa\nbb\nccccc")
	down, _, _ := motion.Parse([]rune("j"))

	pos, col := down.Apply(text, 4, 4, motion.Deps{})
	line, actualCol := text.PosToLineCol(pos)
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, actualCol, "clamped to shorter line")
	assert.Equal(t, 4, col, "wantCol itself is preserved, not clamped")

	pos, _ = down.Apply(text, pos, col, motion.Deps{})
	line, actualCol = text.PosToLineCol(pos)
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, actualCol, "restored once the line is long enough again")
}
