// Package etree converts XML documents to plain text using etree.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docconv"
)

var _ docconv.Converter = (*TextConverter)(nil)

// TextConverter extracts the character data of an XML document.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Register adds the xml to text conversion to r.
func Register(r docconv.ConverterRegistry) {
	r.Register(string(docconv.FormatXML), string(docconv.FormatText), func() docconv.Converter {
		return NewTextConverter()
	})
}

// Convert returns every non-blank run of character data in document order,
// trimmed and one per line. Comments and processing instructions are skipped.
func (c *TextConverter) Convert(xml string) (string, error) {
	if strings.TrimSpace(xml) == "" {
		return "", nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return "", docconv.Errorf(docconv.EINVALID, "failed to parse XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return "", nil
	}

	var lines []string
	collectText(root, &lines)
	return strings.Join(lines, "\n"), nil
}

func collectText(el *etree.Element, lines *[]string) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if text := strings.TrimSpace(t.Data); text != "" {
				*lines = append(*lines, text)
			}
		case *etree.Element:
			collectText(t, lines)
		}
	}
}
