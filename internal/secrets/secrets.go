// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the Threads API access token from the places an
// operator may put it: the THREADS_TOKEN environment variable (optionally
// populated from a .env file) or a plain-text file in a secrets directory.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvVar is the environment variable holding the access token.
const EnvVar = "THREADS_TOKEN"

// tokenFile is the file name checked inside the secrets directory.
const tokenFile = "threads-token"

// Token returns the access token, preferring the environment over the
// secrets directory. Before reading the environment it loads a .env file
// from the working directory when one exists. A missing token is not an
// error here; callers decide whether absence is fatal.
func Token(dir string) (string, error) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv(EnvVar)); v != "" {
		return v, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
