package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureVaultExists(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", ".genpad")

		require.NoError(t, EnsureVaultExists(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("accepts existing directory", func(t *testing.T) {
		assert.NoError(t, EnsureVaultExists(t.TempDir()))
	})

	t.Run("rejects a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vault")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		err := EnsureVaultExists(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("rejects read-only directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ro")
		require.NoError(t, os.Mkdir(path, 0555))
		t.Cleanup(func() { _ = os.Chmod(path, 0755) })

		err := EnsureVaultExists(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient permissions")
	})

	t.Run("rejects empty path", func(t *testing.T) {
		assert.Error(t, EnsureVaultExists(""))
	})
}
