package docconv

import "strings"

// Format names a document format.
type Format string

// Well-known formats.
const (
	FormatPDF      Format = "pdf"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatXML      Format = "xml"
)

// FormatPair is the normalized (source, target) key used for converter lookup.
type FormatPair struct {
	Source Format
	Target Format
}

// NewFormatPair returns the pair for the given format names, lowercased.
// No other normalization is applied: surrounding whitespace is significant.
func NewFormatPair(source, target string) FormatPair {
	return FormatPair{
		Source: Format(strings.ToLower(source)),
		Target: Format(strings.ToLower(target)),
	}
}

// Key renders the pair as "source_to_target".
func (p FormatPair) Key() string {
	return string(p.Source) + "_to_" + string(p.Target)
}

// String returns a human-readable form of the pair.
func (p FormatPair) String() string {
	return string(p.Source) + " -> " + string(p.Target)
}
