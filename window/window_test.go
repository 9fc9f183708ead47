package window_test

import (
	"testing"

	"github.com/Release-Candidate/go-modal-editor/buffer"
	"github.com/Release-Candidate/go-modal-editor/options"
	"github.com/Release-Candidate/go-modal-editor/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitGeometryScenario replays scenario 5: root 80x16;
// vertical split yields two 40x16 leaves at x=0 and x=40; horizontal split
// of the left yields 40x8 leaves stacked at y=0,8; closing bottom-left
// gives its rows back to top-left, leaving two 40x16 leaves.
func TestSplitGeometryScenario(t *testing.T) {
	t.Parallel()

	buf := buffer.New(options.NewRegistry())
	tr := window.New(buf, 80, 16)
	root := tr.Root()

	right, err := tr.Split(root, window.Vertical)
	require.NoError(t, err)

	leaves := tr.Leaves(tr.Root())
	require.Len(t, leaves, 2)

	left := leaves[0]
	assert.Equal(t, window.Rect{X: 0, Y: 0, W: 40, H: 16}, tr.Rect(left))
	assert.Equal(t, window.Rect{X: 40, Y: 0, W: 40, H: 16}, tr.Rect(right))

	bottomLeft, err := tr.Split(left, window.Horizontal)
	require.NoError(t, err)

	leaves = tr.Leaves(tr.Root())
	require.Len(t, leaves, 3)

	topLeft := leaves[0]
	assert.Equal(t, window.Rect{X: 0, Y: 0, W: 40, H: 8}, tr.Rect(topLeft))
	assert.Equal(t, window.Rect{X: 0, Y: 8, W: 40, H: 8}, tr.Rect(bottomLeft))

	next, err := tr.Close(bottomLeft)
	require.NoError(t, err)

	leaves = tr.Leaves(tr.Root())
	require.Len(t, leaves, 2)
	assert.Equal(t, next, tr.Focus())

	assert.Equal(t, window.Rect{X: 0, Y: 0, W: 40, H: 16}, tr.Rect(leaves[0]))
	assert.Equal(t, window.Rect{X: 40, Y: 0, W: 40, H: 16}, tr.Rect(leaves[1]))

	for _, l := range leaves {
		assert.Equal(t, buf, tr.Buffer(l))
	}
}

func TestCloseLastLeafRefused(t *testing.T) {
	t.Parallel()

	buf := buffer.New(options.NewRegistry())
	tr := window.New(buf, 80, 24)

	_, err := tr.Close(tr.Root())
	assert.ErrorIs(t, err, window.ErrLastLeaf)
}

func TestFocusTraversal(t *testing.T) {
	t.Parallel()

	buf := buffer.New(options.NewRegistry())
	tr := window.New(buf, 80, 24)
	root := tr.Root()

	right, err := tr.Split(root, window.Vertical)
	require.NoError(t, err)

	leaves := tr.Leaves(tr.Root())
	left := leaves[0]

	got, ok := tr.FocusRight(left)
	assert.True(t, ok)
	assert.Equal(t, right, got)

	got, ok = tr.FocusLeft(right)
	assert.True(t, ok)
	assert.Equal(t, left, got)

	_, ok = tr.FocusLeft(left)
	assert.False(t, ok, "boundary: no window to the left of the leftmost leaf")
}

func TestResizeClampsToMinimumOneCell(t *testing.T) {
	t.Parallel()

	buf := buffer.New(options.NewRegistry())
	tr := window.New(buf, 10, 10)
	root := tr.Root()

	_, err := tr.Split(root, window.Vertical)
	require.NoError(t, err)

	leaves := tr.Leaves(tr.Root())
	left := leaves[0]

	tr.Resize(left, -100, 0)

	assert.GreaterOrEqual(t, tr.Rect(left).W, 1)
	assert.GreaterOrEqual(t, tr.Rect(leaves[1]).W, 1)
}

func TestScrollBringsOffscreenCursorIntoView(t *testing.T) {
	t.Parallel()

	buf := buffer.New(options.NewRegistry())
	tr := window.New(buf, 80, 10)
	root := tr.Root()

	tr.Scroll(root, 50, 0, 80, 10, 0)
	assert.Equal(t, 41, tr.TopLine(root))
}

func TestDisplayColExpandsTabs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, window.DisplayCol([]byte("\tx"), 1, 8))
	assert.Equal(t, 3, window.DisplayCol([]byte("abc"), 3, 8))
}
