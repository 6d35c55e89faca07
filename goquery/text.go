// Package goquery converts HTML documents to plain text using goquery.
package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docconv"
)

var _ docconv.Converter = (*TextConverter)(nil)

// ignoredSelector matches elements whose text is never part of the output.
const ignoredSelector = "head, script, style, noscript, template"

// blockElements start and end a line of output.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "details": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "summary": true, "table": true,
	"tr": true, "ul": true,
}

// TextConverter extracts readable text from HTML. Block elements end up
// on their own lines and runs of whitespace collapse to a single space.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Register adds the html to text conversion to r.
func Register(r docconv.ConverterRegistry) {
	r.Register(string(docconv.FormatHTML), string(docconv.FormatText), func() docconv.Converter {
		return NewTextConverter()
	})
}

// Convert returns the text content of the document body.
func (c *TextConverter) Convert(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docconv.Errorf(docconv.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(ignoredSelector).Remove()

	var b strings.Builder
	collectText(doc.Find("body"), &b)

	return normalizeLines(b.String()), nil
}

// collectText writes the text below sel to b, breaking lines around
// block elements.
func collectText(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		switch name {
		case "#text":
			b.WriteString(strings.Map(flattenSpace, s.Text()))
			return
		case "#comment":
			return
		}

		block := blockElements[name]
		if block {
			b.WriteByte('\n')
		}
		collectText(s, b)
		if block {
			b.WriteByte('\n')
		}
	})
}

// flattenSpace maps every whitespace rune to a plain space so that only
// block elements introduce line breaks.
func flattenSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// normalizeLines collapses whitespace within each line and drops blank lines.
func normalizeLines(s string) string {
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}
