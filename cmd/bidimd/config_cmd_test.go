package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", maskToken(""))
	assert.Equal(t, "****", maskToken("abcd"))
	assert.Equal(t, "ghp_****wxyz", maskToken("ghp_0123456789wxyz"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool(" 1 "))
	assert.False(t, parseBool("false"))
	assert.False(t, parseBool("yes"))
	assert.False(t, parseBool(""))
}
