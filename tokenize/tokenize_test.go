package tokenize_test

import (
	"testing"

	"github.com/Release-Candidate/go-modal-editor/tokenize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeGoLine(t *testing.T) {
	t.Parallel()

	tok := tokenize.ForFilename("main.go", "")
	spans, err := tok.Tokenize([]byte("func main() {"))
	require.NoError(t, err)
	assert.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start)
}

func TestTokenizeUnknownFilenameFallsBack(t *testing.T) {
	t.Parallel()

	tok := tokenize.ForFilename("README.unknownext", "")
	spans, err := tok.Tokenize([]byte("plain text line"))
	require.NoError(t, err)
	assert.NotEmpty(t, spans)
}
