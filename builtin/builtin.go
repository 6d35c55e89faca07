// Package builtin provides the placeholder converters that every conversion
// system starts with. None of them parse their input: they produce fixed
// shapes around the content so callers can exercise the dispatch path.
package builtin

import (
	"strings"

	"github.com/fwojciec/docconv"
)

// previewLength is the number of characters PDFToText keeps from its input.
const previewLength = 50

var (
	_ docconv.Converter = (*PDFToText)(nil)
	_ docconv.Converter = (*TextToHTML)(nil)
	_ docconv.Converter = (*MarkdownToHTML)(nil)
)

// Register adds the built-in converters to r.
func Register(r docconv.ConverterRegistry) {
	r.Register(string(docconv.FormatPDF), string(docconv.FormatText), func() docconv.Converter { return NewPDFToText() })
	r.Register(string(docconv.FormatText), string(docconv.FormatHTML), func() docconv.Converter { return NewTextToHTML() })
	r.Register(string(docconv.FormatMarkdown), string(docconv.FormatHTML), func() docconv.Converter { return NewMarkdownToHTML() })
}

// PDFToText stands in for PDF text extraction. It reports a preview of
// the first 50 characters of its input.
type PDFToText struct{}

// NewPDFToText creates a new PDFToText converter.
func NewPDFToText() *PDFToText {
	return &PDFToText{}
}

// Convert returns a fixed message embedding the content preview.
func (c *PDFToText) Convert(content string) (string, error) {
	return "Text content extracted from PDF: " + preview(content, previewLength) + "...", nil
}

// TextToHTML wraps plain text in a minimal HTML document.
type TextToHTML struct{}

// NewTextToHTML creates a new TextToHTML converter.
func NewTextToHTML() *TextToHTML {
	return &TextToHTML{}
}

// Convert places content in a single paragraph. Content is not escaped.
func (c *TextToHTML) Convert(content string) (string, error) {
	return "<!DOCTYPE html>\n<html>\n<body>\n<p>" + content + "</p>\n</body>\n</html>", nil
}

// MarkdownToHTML turns "# " markers into <h1> tags.
//
// Every "# " becomes an opening tag but a single </h1> is appended to the
// end of the result, so input with several headings yields unbalanced
// markup. Callers rely on this exact output.
type MarkdownToHTML struct{}

// NewMarkdownToHTML creates a new MarkdownToHTML converter.
func NewMarkdownToHTML() *MarkdownToHTML {
	return &MarkdownToHTML{}
}

// Convert replaces heading markers and appends the closing tag.
func (c *MarkdownToHTML) Convert(content string) (string, error) {
	return strings.ReplaceAll(content, "# ", "<h1>") + "</h1>", nil
}

// preview returns the first n runes of s.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
