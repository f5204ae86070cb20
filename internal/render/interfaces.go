// Package render converts document markdown to HTML and applies the
// post-render hooks the editor core owes the presentation layer: text
// direction stamping and code block tagging.
package render

// Renderer maps markdown text to an HTML fragment. When math is enabled,
// dollar-delimited spans pass through the conversion verbatim so a
// client-side math engine can typeset them.
type Renderer interface {
	Render(markdown string, math bool) (string, error)
}
