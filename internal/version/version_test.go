package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abcdef1", shortCommit("abcdef1234567890"))
	assert.Equal(t, "abc", shortCommit("abc"))
}

func TestString_UsesLdflagsCommit(t *testing.T) {
	old := Commit
	t.Cleanup(func() { Commit = old })

	Commit = "0123456789abcdef"
	assert.Contains(t, String(), "commit: 0123456")
}
