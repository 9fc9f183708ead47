// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     tokenize.go
//
// =============================================================================

// Package tokenize exposes a Tokenizer contract for syntax highlighting
// during render, backed by github.com/alecthomas/chroma/v2. No core
// module depends on this; it is consumed only by the renderer
// (Display contract is styling-agnostic -- tokenize supplies
// the (start,end)->style spans that feed into Cell.Fg/Bg/At).
package tokenize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span is one token's byte range within a single line plus its token
// type, the minimal shape the renderer needs to pick a style.
type Span struct {
	Start, End int
	Type       chroma.TokenType
}

// Tokenizer lexes a line of source text into styled spans and resolves
// each span's token type to a foreground color.
type Tokenizer interface {
	Tokenize(line []byte) ([]Span, error)
	StyleFor(typ chroma.TokenType) string
}

type chromaTokenizer struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// ForFilename picks a lexer by filename/extension (falling back to plain
// text analysis), the same resolution chroma's own CLI uses. styleName
// selects a chroma.Style by name; an empty name selects "monokai", and an
// unknown name gets chroma's own fallback style.
func ForFilename(filename, styleName string) Tokenizer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	lexer = chroma.Coalesce(lexer)

	if styleName == "" {
		styleName = "monokai"
	}

	return &chromaTokenizer{lexer: lexer, style: styles.Get(styleName)}
}

func (t *chromaTokenizer) Tokenize(line []byte) ([]Span, error) {
	it, err := t.lexer.Tokenise(nil, string(line))
	if err != nil {
		return nil, err
	}

	var spans []Span

	pos := 0
	for _, tok := range it.Tokens() {
		end := pos + len(tok.Value)
		spans = append(spans, Span{Start: pos, End: end, Type: tok.Type})
		pos = end
	}

	return spans, nil
}

// StyleFor resolves a chroma token type into a foreground color string
// ("" meaning "use the default"), for the renderer to map onto a Cell.
func (t *chromaTokenizer) StyleFor(typ chroma.TokenType) string {
	entry := t.style.Get(typ)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}

	return ""
}
