package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.Direction
	}{
		{name: "latin", in: "hello world", want: models.DirectionLTR},
		{name: "persian", in: "سلام دنیا", want: models.DirectionRTL},
		{name: "arabic", in: "مرحبا", want: models.DirectionRTL},
		{name: "hebrew", in: "שלום", want: models.DirectionRTL},
		{name: "leading digits then persian", in: "123 سلام", want: models.DirectionRTL},
		{name: "leading punctuation then latin", in: "... hello", want: models.DirectionLTR},
		{name: "digits only", in: "12345", want: models.DirectionAuto},
		{name: "empty", in: "", want: models.DirectionAuto},
		{name: "mixed first strong wins", in: "hello سلام", want: models.DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDirection(tt.in))
		})
	}
}

func TestApplyDirection_StampsBlocks(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.General = models.DirectionRTL

	out := ApplyDirection("<p>سلام</p><h2>title</h2>", prefs)
	assert.Equal(t, `<p dir="rtl">سلام</p><h2 dir="rtl">title</h2>`, out)
}

func TestApplyDirection_InlineCodeSeparateFromBlocks(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.General = models.DirectionRTL
	prefs.InlineCode = models.DirectionLTR

	out := ApplyDirection("<p>متن <code>x = 1</code></p>", prefs)
	assert.Contains(t, out, `<p dir="rtl">`)
	assert.Contains(t, out, `<code dir="ltr">`)
}

func TestApplyDirection_CodeBlockKeepsOwnDirection(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.General = models.DirectionRTL
	prefs.CodeBlock = models.DirectionLTR
	prefs.InlineCode = models.DirectionRTL

	html := `<p>text</p><pre><code class="language-go">func main() {}</code></pre>`
	out := ApplyDirection(html, prefs)

	assert.Contains(t, out, `<pre dir="ltr">`)
	// the code tag inside pre belongs to the block, not the inline preference
	assert.NotContains(t, out, `<code dir="rtl"`)
	assert.Contains(t, out, `<p dir="rtl">`)
}

func TestApplyDirection_AutoEmitsAuto(t *testing.T) {
	out := ApplyDirection("<p>hi</p>", models.DefaultPreferences())
	assert.Equal(t, `<p dir="auto">hi</p>`, out)
}

func TestApplyDirection_ExistingDirKept(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.General = models.DirectionRTL

	out := ApplyDirection(`<p dir="ltr">fixed</p>`, prefs)
	assert.Equal(t, `<p dir="ltr">fixed</p>`, out)
}

func TestEnhanceCodeBlocks(t *testing.T) {
	out := EnhanceCodeBlocks("<pre><code>x</code></pre>")
	assert.Equal(t, `<pre class="code-block"><code>x</code></pre>`, out)

	// already-classed pre untouched
	withClass := `<pre class="hljs"><code>y</code></pre>`
	assert.Equal(t, withClass, EnhanceCodeBlocks(withClass))
}
