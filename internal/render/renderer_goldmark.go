package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// mathSpan matches display math first so $$...$$ is never consumed as two
// empty inline spans.
var mathSpan = regexp.MustCompile(`(?s)\$\$.+?\$\$|\$[^$\n]+\$`)

type goldmarkRenderer struct {
	engine goldmark.Markdown
}

// NewGoldmarkRenderer constructs the default Renderer: GFM extensions,
// automatic heading ids, raw HTML passed through. The returned value is
// stateless and safe for concurrent use.
func NewGoldmarkRenderer() Renderer {
	return &goldmarkRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// Render implements [Renderer]. With math enabled, dollar-delimited spans are
// swapped for placeholder tokens before conversion and restored afterwards,
// so markdown syntax inside a formula (underscores, asterisks) is not
// interpreted.
func (r *goldmarkRenderer) Render(markdown string, math bool) (string, error) {
	var spans []string
	if math {
		markdown = mathSpan.ReplaceAllStringFunc(markdown, func(m string) string {
			spans = append(spans, m)
			return mathToken(len(spans) - 1)
		})
	}

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	out := buf.String()
	for i, span := range spans {
		out = strings.Replace(out, mathToken(i), html.EscapeString(span), 1)
	}
	return out, nil
}

// mathToken must survive markdown conversion byte-for-byte, so it is plain
// ASCII letters and digits.
func mathToken(i int) string {
	return fmt.Sprintf("MATHSPAN%dNAPSHTAM", i)
}
