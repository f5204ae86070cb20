package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain words lowered and hyphenated", in: "New File", want: "new-file"},
		{name: "already sanitized", in: "new-file", want: "new-file"},
		{name: "surrounding whitespace", in: "  Notes  ", want: "notes"},
		{name: "punctuation collapses", in: "My!!!Notes???", want: "my-notes"},
		{name: "dots and underscores kept", in: "release_v1.2", want: "release_v1.2"},
		{name: "hyphen runs collapse", in: "a---b", want: "a-b"},
		{name: "leading and trailing hyphens trimmed", in: "-draft-", want: "draft"},
		{name: "empty input", in: "", want: "untitled-file"},
		{name: "whitespace only", in: "   ", want: "untitled-file"},
		{name: "nothing survives", in: "یادداشت‌ها", want: "untitled-file"},
		{name: "mixed script keeps latin", in: "یادداشت notes", want: "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeName_Truncation(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := SanitizeName(long)
	assert.Len(t, got, 100)

	// a hyphen landing on the cut boundary must not survive as a trailing one
	boundary := strings.Repeat("a", 99) + "-" + strings.Repeat("b", 50)
	assert.Equal(t, strings.Repeat("a", 99), SanitizeName(boundary))
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"New File",
		"  Mixed CASE  and   spaces ",
		"یادداشت‌ها",
		strings.Repeat("x-", 120),
		"",
	}

	for _, in := range inputs {
		once := SanitizeName(in)
		assert.Equal(t, once, SanitizeName(once), "input %q", in)
	}
}

func TestRemotePath(t *testing.T) {
	assert.Equal(t, "new-file.md", RemotePath("New File"))
	assert.Equal(t, "untitled-file.md", RemotePath(""))
}

func TestNameFromPath(t *testing.T) {
	assert.Equal(t, "todo", NameFromPath("todo.md"))
	assert.Equal(t, "readme", NameFromPath("readme"))
}
