package search_test

import (
	"testing"

	"github.com/Release-Candidate/go-modal-editor/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSmartcaseScenario replays scenario 6: with
// ignorecase=true, smartcase=true, /hello matches Hello; /Hello matches
// only Hello.
func TestSmartcaseScenario(t *testing.T) {
	t.Parallel()

	re, err := search.Compile("hello", true, true)
	require.NoError(t, err)

	matches, err := re.FindAll([]byte("Hello world"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	re, err = search.Compile("Hello", true, true)
	require.NoError(t, err)

	matches, err = re.FindAll([]byte("hello Hello"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 6, matches[0].Start)
}

func TestResolveIgnoreCaseTable(t *testing.T) {
	t.Parallel()

	assert.False(t, search.ResolveIgnoreCase("Abc", false, true))
	assert.True(t, search.ResolveIgnoreCase("abc", true, false))
	assert.True(t, search.ResolveIgnoreCase("abc", true, true))
	assert.False(t, search.ResolveIgnoreCase("Abc", true, true))
}

func TestCompileBadRegexWrapsError(t *testing.T) {
	t.Parallel()

	_, err := search.Compile("(unclosed", false, false)
	assert.ErrorIs(t, err, search.ErrBadRegex)
}

func TestNextWrapsAroundForward(t *testing.T) {
	t.Parallel()

	matches := []search.Match{{Start: 2, End: 4}, {Start: 10, End: 12}}

	m, wrapped, err := search.Next(matches, 11, search.Forward)
	require.NoError(t, err)
	assert.True(t, wrapped)
	assert.Equal(t, matches[0], m)

	m, wrapped, err = search.Next(matches, 0, search.Forward)
	require.NoError(t, err)
	assert.False(t, wrapped)
	assert.Equal(t, matches[0], m)
}

func TestNextWrapsAroundBackward(t *testing.T) {
	t.Parallel()

	matches := []search.Match{{Start: 2, End: 4}, {Start: 10, End: 12}}

	m, wrapped, err := search.Next(matches, 1, search.Backward)
	require.NoError(t, err)
	assert.True(t, wrapped)
	assert.Equal(t, matches[1], m)
}

func TestNextNoMatches(t *testing.T) {
	t.Parallel()

	_, _, err := search.Next(nil, 0, search.Forward)
	assert.ErrorIs(t, err, search.ErrNoMatch)
}

func TestFindAllReturnsByteOffsetsForMultiByteText(t *testing.T) {
	t.Parallel()

	text := []byte("héllo wörld, héllo")

	re, err := search.Compile("héllo", false, false)
	require.NoError(t, err)

	matches, err := re.FindAll(text)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, search.Match{Start: 0, End: 6}, matches[0])
	assert.Equal(t, search.Match{Start: 15, End: 21}, matches[1])
	assert.Equal(t, "héllo", string(text[matches[0].Start:matches[0].End]))
	assert.Equal(t, "héllo", string(text[matches[1].Start:matches[1].End]))
}
