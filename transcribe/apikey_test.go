package transcribe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/srijan/shruti/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(path, []byte("sk-test-1234\n"), 0o600))

	key, err := LoadKey(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-1234", key)
}

func TestLoadKeyMissing(t *testing.T) {
	_, err := LoadKey(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConfiguration))
}

func TestLoadKeyEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "whitespace only", content: "  \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "key.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadKey(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrConfiguration))
		})
	}
}
