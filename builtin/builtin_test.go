package builtin_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/builtin"
	"github.com/fwojciec/docconv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFToText_Convert(t *testing.T) {
	t.Parallel()

	t.Run("embeds short content in full", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewPDFToText().Convert("Sample PDF content")

		require.NoError(t, err)
		assert.Equal(t, "Text content extracted from PDF: Sample PDF content...", out)
	})

	t.Run("keeps only the first 50 characters", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", 50) + "TAIL"

		out, err := builtin.NewPDFToText().Convert(content)

		require.NoError(t, err)
		assert.Equal(t, "Text content extracted from PDF: "+strings.Repeat("a", 50)+"...", out)
		assert.NotContains(t, out, "TAIL")
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("é", 60)

		out, err := builtin.NewPDFToText().Convert(content)

		require.NoError(t, err)
		assert.Equal(t, "Text content extracted from PDF: "+strings.Repeat("é", 50)+"...", out)
	})

	t.Run("accepts empty content", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewPDFToText().Convert("")

		require.NoError(t, err)
		assert.Equal(t, "Text content extracted from PDF: ...", out)
	})
}

func TestTextToHTML_Convert(t *testing.T) {
	t.Parallel()

	t.Run("wraps content in a paragraph", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewTextToHTML().Convert("Sample text content")

		require.NoError(t, err)
		assert.Equal(t, "<!DOCTYPE html>\n<html>\n<body>\n<p>Sample text content</p>\n</body>\n</html>", out)
	})

	t.Run("does not escape markup", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewTextToHTML().Convert("a < b & <b>c</b>")

		require.NoError(t, err)
		assert.Contains(t, out, "<p>a < b & <b>c</b></p>")
	})
}

func TestMarkdownToHTML_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a single heading", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewMarkdownToHTML().Convert("# Heading")

		require.NoError(t, err)
		assert.Equal(t, "<h1>Heading</h1>", out)
	})

	t.Run("appends one closing tag for several headings", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewMarkdownToHTML().Convert("# One\n# Two")

		require.NoError(t, err)
		assert.Equal(t, "<h1>One\n<h1>Two</h1>", out)
	})

	t.Run("replaces markers anywhere in the text", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewMarkdownToHTML().Convert("## Sub")

		require.NoError(t, err)
		assert.Equal(t, "#<h1>Sub</h1>", out)
	})

	t.Run("appends closing tag to empty content", func(t *testing.T) {
		t.Parallel()

		out, err := builtin.NewMarkdownToHTML().Convert("")

		require.NoError(t, err)
		assert.Equal(t, "</h1>", out)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	registered := make(map[string]docconv.ConverterFactory)
	registry := &mock.ConverterRegistry{
		RegisterFn: func(source, target string, factory docconv.ConverterFactory) {
			registered[docconv.NewFormatPair(source, target).Key()] = factory
		},
	}

	builtin.Register(registry)

	require.Len(t, registered, 3)
	assert.IsType(t, &builtin.PDFToText{}, registered["pdf_to_text"]())
	assert.IsType(t, &builtin.TextToHTML{}, registered["text_to_html"]())
	assert.IsType(t, &builtin.MarkdownToHTML{}, registered["markdown_to_html"]())
}
