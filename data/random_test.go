package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	for _, n := range []int{0, 1, 6, 8, 500} {
		s := RandomString(n)
		assert.Len(t, s, n)
		for _, r := range s {
			assert.True(t, strings.ContainsRune(Alphanumeric, r), "unexpected character %q", r)
		}
	}
}

func TestRandomStringNegativeLength(t *testing.T) {
	assert.Equal(t, "", RandomString(-1))
}

func TestRandomStringFromUsesOnlyGivenAlphabet(t *testing.T) {
	s := RandomStringFrom("ab", 200)
	assert.Len(t, s, 200)
	assert.Equal(t, "", strings.Trim(s, "ab"))
	// with 200 draws from two symbols, both are all but certain to appear
	assert.Contains(t, s, "a")
	assert.Contains(t, s, "b")
}

func TestRandomStringFromMultibyteAlphabet(t *testing.T) {
	s := RandomStringFrom("äö", 10)
	assert.Equal(t, 10, len([]rune(s)))
}

func TestRandomStringFromEmptyAlphabetPanics(t *testing.T) {
	assert.Panics(t, func() { RandomStringFrom("", 1) })
}

func TestRandomStringsDoNotCollide(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := RandomString(8)
		assert.False(t, seen[s], "collision on %q", s)
		seen[s] = true
	}
}
