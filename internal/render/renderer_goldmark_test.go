package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldmarkRenderer_BasicMarkdown(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("# Title\n\nSome *emphasis* here.", false)
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestGoldmarkRenderer_GFMTables(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |", false)
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestGoldmarkRenderer_TaskLists(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("- [ ] buy milk\n- [x] done", false)
	require.NoError(t, err)

	assert.Contains(t, out, `type="checkbox"`)
}

func TestGoldmarkRenderer_PersianText(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("سلام **دنیا**", false)
	require.NoError(t, err)

	assert.Contains(t, out, "سلام")
	assert.Contains(t, out, "<strong>دنیا</strong>")
}

func TestGoldmarkRenderer_MathDisabledLeavesDollars(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("cost is $5 and $6", false)
	require.NoError(t, err)

	assert.Contains(t, out, "$5 and $6")
}

func TestGoldmarkRenderer_MathSpansPassThrough(t *testing.T) {
	r := NewGoldmarkRenderer()

	// underscores inside the formula must not become emphasis
	out, err := r.Render("inline $a_1 + a_2$ math", true)
	require.NoError(t, err)

	assert.Contains(t, out, "$a_1 + a_2$")
	assert.NotContains(t, out, "<em>")
}

func TestGoldmarkRenderer_DisplayMathPassThrough(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("$$\nE = mc^2\n$$", true)
	require.NoError(t, err)

	assert.Contains(t, out, "E = mc^2")
	assert.NotContains(t, out, "MATHSPAN")
}
