package display_test

import (
	"testing"

	"github.com/Release-Candidate/go-modal-editor/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewKeyEventAndResizeEvent(t *testing.T) {
	t.Parallel()

	key := display.NewKeyEvent(display.KeyRune, 'x', display.ModCtrl)
	assert.Equal(t, display.EventKey, key.Variant)
	assert.Equal(t, 'x', key.Ch)
	assert.Equal(t, display.ModCtrl, key.Mods)

	resize := display.NewResizeEvent(80, 24)
	assert.Equal(t, display.EventResize, resize.Variant)
	assert.Equal(t, 80, resize.W)
	assert.Equal(t, 24, resize.H)
}

func TestCellAttrTranslatesLipglossStyle(t *testing.T) {
	t.Parallel()

	s := lipgloss.NewStyle().Bold(true).Underline(true)
	attr := display.CellAttr(s)

	assert.NotZero(t, attr&display.AttrBold)
	assert.NotZero(t, attr&display.AttrUnderline)
	assert.Zero(t, attr&display.AttrReverse)
}

func TestDefaultThemeProducesDistinctStyles(t *testing.T) {
	t.Parallel()

	theme := display.DefaultTheme()
	assert.NotEqual(t, theme.Status.Render("x"), theme.Search.Render("x"))
}
