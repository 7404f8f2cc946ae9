package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteURLFile(t *testing.T) {
	path, err := WriteURLFile(t.TempDir(), "urls.txt", "\r\n", "a", "b")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\n", string(data))
}

func TestRandomURLs_Deterministic(t *testing.T) {
	a := RandomURLs(7, 20)
	b := RandomURLs(7, 20)

	assert.Len(t, a, 20)
	assert.Equal(t, a, b)
	for _, u := range a {
		assert.NotEmpty(t, u)
	}
}
