// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPrefersEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "env-token")

	dir := t.TempDir()
	writeTokenFile(t, dir, "file-token\n")

	got, err := Token(dir)
	require.NoError(t, err)
	assert.Equal(t, "env-token", got)
}

func TestTokenFallsBackToFile(t *testing.T) {
	t.Setenv(EnvVar, "")

	dir := t.TempDir()
	writeTokenFile(t, dir, "  file-token  \n")

	got, err := Token(dir)
	require.NoError(t, err)
	assert.Equal(t, "file-token", got)
}

func TestTokenMissingEverywhere(t *testing.T) {
	t.Setenv(EnvVar, "")

	got, err := Token(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokenTrimsEnvWhitespace(t *testing.T) {
	t.Setenv(EnvVar, "  padded-token \n")

	got, err := Token(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "padded-token", got)
}

func writeTokenFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte(content), 0o600))
}
