package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunksEmpty(t *testing.T) {
	assert.Nil(t, Chunks("", 100))
}

func TestChunksShortText(t *testing.T) {
	got := Chunks("short", 100)
	assert.Equal(t, []string{"short"}, got)
}

func TestChunksExactBoundary(t *testing.T) {
	got := Chunks("abcdef", 3)
	assert.Equal(t, []string{"abc", "def"}, got)
}

func TestChunksReassembly(t *testing.T) {
	text := strings.Repeat("0123456789", 1234)
	got := Chunks(text, 4000)
	require.Len(t, got, 4)
	for _, seg := range got[:3] {
		assert.Len(t, []rune(seg), 4000)
	}
	assert.Equal(t, text, strings.Join(got, ""))
}

func TestChunksRuneSafe(t *testing.T) {
	// Multibyte runes must never be split mid-character.
	text := strings.Repeat("я", 10)
	got := Chunks(text, 3)
	require.Len(t, got, 4)
	assert.Equal(t, "яяя", got[0])
	assert.Equal(t, "я", got[3])
	assert.Equal(t, text, strings.Join(got, ""))
}

func TestChunksNonPositiveLimit(t *testing.T) {
	got := Chunks("anything", 0)
	assert.Equal(t, []string{"anything"}, got)
}
