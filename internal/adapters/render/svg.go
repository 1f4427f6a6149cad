// Package render draws ASCII-art Lewis diagrams as SVG images packed into
// data URIs, so responses can embed them without serving files.
package render

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Layout constants, in SVG user units.
const (
	GlyphWidth = 12
	LineHeight = 22
	Padding    = 16
	FontSize   = 18
	FontFamily = "IBM Plex Mono, monospace"

	// DataURIPrefix marks a base64-encoded inline SVG image.
	DataURIPrefix = "data:image/svg+xml;base64,"

	minWidth  = 2*Padding + GlyphWidth
	minHeight = 2*Padding + LineHeight
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&apos;", `"`, "&quot;")
)

// SVGRenderer implements ports.DiagramRenderer. The zero value is ready to use.
type SVGRenderer struct{}

// NewSVGRenderer returns a renderer.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

// Render returns a data URI for the diagram. Output depends only on the inputs.
func (r *SVGRenderer) Render(label, ascii string) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(SVG(label, ascii))
}

// SVG lays out each line of ascii as a monospace text row and returns the
// UTF-8 markup.
func SVG(label, ascii string) []byte {
	lines := strings.Split(sanitize(ascii), "\n")

	longest := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = line
		longest = max(longest, utf8.RuneCountInString(line))
	}

	width := max(minWidth, longest*GlyphWidth+2*Padding)
	height := max(minHeight, len(lines)*LineHeight+2*Padding)
	w, h := strconv.Itoa(width), strconv.Itoa(height)

	var b strings.Builder

	b.WriteString("<svg xmlns='http://www.w3.org/2000/svg' width='")
	b.WriteString(w)
	b.WriteString("' height='")
	b.WriteString(h)
	b.WriteString("' role='img' aria-label='")
	b.WriteString(attrEscaper.Replace(sanitize(label)))
	b.WriteString("'>")

	b.WriteString("<rect x='0' y='0' width='")
	b.WriteString(w)
	b.WriteString("' height='")
	b.WriteString(h)
	b.WriteString("' fill='white' stroke='#e5e7eb'/>")

	for i, line := range lines {
		b.WriteString("<text x='")
		b.WriteString(strconv.Itoa(Padding))
		b.WriteString("' y='")
		b.WriteString(strconv.Itoa(Padding + (i+1)*LineHeight))
		b.WriteString("' font-family='" + FontFamily + "' font-size='")
		b.WriteString(strconv.Itoa(FontSize))
		b.WriteString("' xml:space='preserve'>")
		b.WriteString(textEscaper.Replace(line))
		b.WriteString("</text>")
	}

	b.WriteString("</svg>")

	return []byte(b.String())
}

// sanitize replaces invalid UTF-8 and characters XML 1.0 forbids with U+FFFD.
// Newlines, carriage returns and tabs survive.
func sanitize(s string) string {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))

	return strings.Map(func(r rune) rune {
		if allowedXMLChar(r) {
			return r
		}

		return utf8.RuneError
	}, s)
}

func allowedXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20:
		return false
	case r >= 0xD800 && r <= 0xDFFF:
		return false
	case r == 0xFFFE || r == 0xFFFF:
		return false
	default:
		return r <= utf8.MaxRune
	}
}
