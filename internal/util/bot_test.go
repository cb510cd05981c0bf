package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "short", Truncate("short", 255))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))

	long := Truncate("🟩🟩🟩🟩🟩🟩", 4)
	assert.Equal(t, []rune("🟩🟩🟩…"), []rune(long))
}
