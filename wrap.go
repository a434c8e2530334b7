package svg2pdf

import (
	"context"
	"strings"
)

// svgWrapper abstracts the SVG-to-HTML-shell stage to allow test doubles.
type svgWrapper interface {
	Wrap(ctx context.Context, svg []byte) string
}

// Compile-time interface check.
var _ svgWrapper = (*shellWrapper)(nil)

// shellWrapper embeds an SVG document into a minimal full-bleed HTML shell.
// Chrome's print-to-PDF operates on HTML pages; inlining the SVG gives the
// shell CSS control over how the drawing fills the printable area.
type shellWrapper struct{}

const (
	shellHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
html, body { margin: 0; padding: 0; }
body > svg { display: block; width: 100vw; height: 100vh; }
</style>
</head>
<body>
`
	shellFoot = `</body>
</html>
`
)

// Wrap returns the HTML shell with the SVG inlined.
// The XML prolog and DOCTYPE are stripped: they are not valid inside an
// HTML body and some renderers choke on them.
func (w *shellWrapper) Wrap(_ context.Context, svg []byte) string {
	var b strings.Builder
	content := stripXMLProlog(string(svg))
	b.Grow(len(shellHead) + len(content) + len(shellFoot))
	b.WriteString(shellHead)
	b.WriteString(content)
	b.WriteString(shellFoot)
	return b.String()
}

// stripXMLProlog removes a leading <?xml ...?> declaration, <!DOCTYPE ...>,
// and comments from an SVG document, returning the content from the <svg>
// root onward. Comments need their own terminator: a ">" inside the comment
// body does not end it.
func stripXMLProlog(s string) string {
	trimmed := strings.TrimLeft(s, " \t\r\n")

	for {
		switch {
		case strings.HasPrefix(trimmed, "<!--"):
			end := strings.Index(trimmed, "-->")
			if end < 0 {
				return trimmed
			}
			trimmed = strings.TrimLeft(trimmed[end+len("-->"):], " \t\r\n")
		case strings.HasPrefix(trimmed, "<?"), strings.HasPrefix(trimmed, "<!"):
			end := strings.Index(trimmed, ">")
			if end < 0 {
				return trimmed
			}
			trimmed = strings.TrimLeft(trimmed[end+1:], " \t\r\n")
		default:
			return trimmed
		}
	}
}
