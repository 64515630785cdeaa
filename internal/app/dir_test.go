package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureGitignoreRuleCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	require.NoError(t, ensureGitignoreRule(path, "/data\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data\n", string(data))
}

func TestEnsureGitignoreRuleAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("*.log"), 0o644))

	require.NoError(t, ensureGitignoreRule(path, "/data\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*.log\n/data\n", string(data))
}

func TestEnsureGitignoreRuleIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	require.NoError(t, ensureGitignoreRule(path, "/data\n"))
	require.NoError(t, ensureGitignoreRule(path, "/data\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data\n", string(data))
}

func TestEnsureDataDirCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, ensureDataDir(dir, false))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
