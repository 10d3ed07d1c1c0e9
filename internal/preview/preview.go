// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/preview/preview.go
// Summary: Syntax-highlighted file preview rendered as TextView lines.
// Usage: Load(path, style) feeds the demo panel body.

package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/framegrace/texelslide/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

const (
	defaultStyleName = "monokai"
	maxPreviewBytes  = 256 << 10
)

// ErrBinary is returned for content that is not text.
var ErrBinary = errors.New("preview: binary content")

// Document is a highlighted file.
type Document struct {
	Name     string
	Language string
	Lines    []widgets.Line
}

// Load reads path (truncated to a preview-sized prefix) and highlights it.
func Load(path, styleName string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("preview: %w", err)
	}
	return Highlight(filepath.Base(path), truncate(data, maxPreviewBytes), styleName)
}

// truncate cuts data to at most n bytes without splitting a UTF-8 sequence.
func truncate(data []byte, n int) []byte {
	if len(data) <= n {
		return data
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return data[:cut]
}

// Highlight detects the language of content and tokenises it into styled
// lines.
func Highlight(name string, content []byte, styleName string) (Document, error) {
	if enry.IsBinary(content) {
		return Document{}, fmt.Errorf("%w: %s", ErrBinary, name)
	}
	lang := Detect(name, content)
	doc := Document{Name: name, Language: lang}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	lexer := chroma.Coalesce(lexerFor(lang, name, text))
	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return Document{}, fmt.Errorf("preview: tokenise %s: %w", name, err)
	}

	style := styles.Get(styleName)
	if styleName == "" {
		style = styles.Get(defaultStyleName)
	}
	base := style.Get(chroma.Text).Colour

	line := widgets.Line{}
	for tok := it(); tok != chroma.EOF; tok = it() {
		ts := tokenStyle(style.Get(tok.Type), base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				doc.Lines = append(doc.Lines, line)
				line = widgets.Line{}
			}
			if part != "" {
				line = append(line, widgets.Span{Text: part, Style: ts})
			}
		}
	}
	if len(line) > 0 {
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

// Detect names the language of content, preferring the file name.
func Detect(name string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(name); safe && lang != "" {
		return lang
	}
	return enry.GetLanguage(name, content)
}

func lexerFor(lang, name, text string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Match(name); l != nil {
		return l
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) tcell.Style {
	st := tcell.StyleDefault
	if entry.Colour.IsSet() && entry.Colour != base {
		st = st.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
