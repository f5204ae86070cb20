package render

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

// DetectDirection classifies text by its first strong bidirectional
// character: Hebrew, Arabic and related scripts yield RTL, Latin and other
// left-to-right scripts yield LTR. Text with no strong character (digits,
// punctuation, whitespace) stays DirectionAuto.
func DetectDirection(text string) models.Direction {
	for len(text) > 0 {
		props, size := bidi.LookupString(text)
		switch props.Class() {
		case bidi.L:
			return models.DirectionLTR
		case bidi.R, bidi.AL:
			return models.DirectionRTL
		}
		text = text[size:]
	}
	return models.DirectionAuto
}

var (
	blockTag      = regexp.MustCompile(`<(p|h[1-6]|li|blockquote|td|th)(\s[^>]*)?>`)
	inlineCodeTag = regexp.MustCompile(`<code(\s[^>]*)?>`)
	preTag        = regexp.MustCompile(`<pre(\s[^>]*)?>`)
)

// ApplyDirection stamps dir attributes onto the rendered fragment according
// to the three direction preferences. General text direction goes on
// paragraph-level tags, the inline code direction on <code> tags outside
// <pre>, and the code block direction on <pre> tags. DirectionAuto emits
// dir="auto" so the browser falls back to first-strong detection per element.
func ApplyDirection(html string, prefs models.Preferences) string {
	html = stampDir(html, preTag, prefs.CodeBlock)
	html = stampOutsidePre(html, blockTag, prefs.General)
	html = stampOutsidePre(html, inlineCodeTag, prefs.InlineCode)
	return html
}

// stampOutsidePre applies stampDir to everything except <pre> regions, whose
// inner <code> tag must keep the code block direction.
func stampOutsidePre(html string, tag *regexp.Regexp, dir models.Direction) string {
	var b strings.Builder
	rest := html
	for {
		start := strings.Index(rest, "<pre")
		if start < 0 {
			b.WriteString(stampDir(rest, tag, dir))
			break
		}
		end := strings.Index(rest[start:], "</pre>")
		if end < 0 {
			b.WriteString(stampDir(rest[:start], tag, dir))
			b.WriteString(rest[start:])
			break
		}
		end += start + len("</pre>")
		b.WriteString(stampDir(rest[:start], tag, dir))
		b.WriteString(rest[start:end])
		rest = rest[end:]
	}
	return b.String()
}

func stampDir(html string, tag *regexp.Regexp, dir models.Direction) string {
	return tag.ReplaceAllStringFunc(html, func(m string) string {
		if strings.Contains(m, " dir=") {
			return m
		}
		return strings.Replace(m, ">", ` dir="`+string(dir)+`">`, 1)
	})
}

// codeBlockClass marks fenced code blocks for the client-side syntax
// highlighter.
const codeBlockClass = "code-block"

// EnhanceCodeBlocks tags every <pre> element with the highlighter hook class.
// Existing class attributes (goldmark emits language-* on the inner <code>)
// are left untouched.
func EnhanceCodeBlocks(html string) string {
	return preTag.ReplaceAllStringFunc(html, func(m string) string {
		if strings.Contains(m, "class=") {
			return m
		}
		return strings.Replace(m, ">", ` class="`+codeBlockClass+`">`, 1)
	})
}
