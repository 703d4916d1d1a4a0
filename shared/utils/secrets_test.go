package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecretsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := SecretsDir
	SecretsDir = dir
	t.Cleanup(func() { SecretsDir = prev })
	return dir
}

func TestReadSecret(t *testing.T) {
	dir := withSecretsDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ai_api_key"), []byte("  sk-test\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blank"), []byte("\n"), 0o600))

	secret, err := ReadSecret("ai_api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", secret)

	_, err = ReadSecret("missing")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	_, err = ReadSecret("blank")
	assert.ErrorIs(t, err, ErrSecretEmpty)
}

func TestReadOptionalSecret(t *testing.T) {
	dir := withSecretsDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ai_api_key"), []byte("sk-test"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blank"), []byte(""), 0o600))

	secret, ok, err := ReadOptionalSecret("ai_api_key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sk-test", secret)

	for _, name := range []string{"missing", "blank"} {
		secret, ok, err = ReadOptionalSecret(name)
		require.NoError(t, err, name)
		assert.False(t, ok, name)
		assert.Empty(t, secret, name)
	}
}
