package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/framegrace/texelslide/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSource = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

func lineText(l widgets.Line) string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func TestHighlightGo(t *testing.T) {
	doc, err := Highlight("main.go", []byte(goSource), "")
	require.NoError(t, err)
	assert.Equal(t, "Go", doc.Language)
	require.Len(t, doc.Lines, 5)
	assert.Equal(t, "func main() {", lineText(doc.Lines[2]))
	assert.Empty(t, doc.Lines[1])

	var keyword widgets.Span
	for _, s := range doc.Lines[0] {
		if s.Text == "package" {
			keyword = s
		}
	}
	require.Equal(t, "package", keyword.Text)
	assert.NotEqual(t, tcell.StyleDefault, keyword.Style, "keywords are coloured")
}

func TestHighlightRejectsBinary(t *testing.T) {
	_, err := Highlight("blob.bin", []byte{0x00, 0x01, 0x02, 0x00, 0xff}, "")
	assert.ErrorIs(t, err, ErrBinary)
}

func TestDetectByContent(t *testing.T) {
	assert.Equal(t, "Go", Detect("main.go", nil))
	assert.Equal(t, "Shell", Detect("run", []byte("#!/bin/sh\necho hi\n")))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.markdown")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nbody\n"), 0o644))

	doc, err := Load(path, "github")
	require.NoError(t, err)
	assert.Equal(t, "notes.markdown", doc.Name)
	assert.Equal(t, "Markdown", doc.Language)
	assert.Equal(t, "# Title", lineText(doc.Lines[0]))

	_, err = Load(filepath.Join(t.TempDir(), "missing"), "")
	assert.Error(t, err)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	data := []byte("aé€")
	for n := 0; n <= len(data); n++ {
		got := truncate(data, n)
		assert.LessOrEqual(t, len(got), n)
		assert.True(t, utf8.Valid(got), "cut at %d gave %q", n, got)
	}
	assert.Equal(t, "a", string(truncate(data, 2)))
	assert.Equal(t, "aé", string(truncate(data, 4)))
	assert.Equal(t, "aé€", string(truncate(data, 6)))
}

func TestLoadTruncatesOnRuneBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	content := strings.Repeat("a", maxPreviewBytes-1) + "é tail"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := Load(path, "")
	require.NoError(t, err)
	require.NotEmpty(t, doc.Lines)
	last := lineText(doc.Lines[len(doc.Lines)-1])
	assert.NotContains(t, last, string(utf8.RuneError))
	assert.True(t, strings.HasSuffix(last, "a"), "the split é is dropped")
}
