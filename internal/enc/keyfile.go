package enc

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
)

// keyFileBytes is the random payload size written into a generated key
// file, before base64 encoding.
const keyFileBytes = 4096

// EnsureKeyFile creates dir/cokacenc.key (4096 random bytes, base64
// encoded) with 0600 permissions if it doesn't already exist, creating dir
// itself with 0700 permissions first.
func EnsureKeyFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "cokacenc.key")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	raw := make([]byte, keyFileBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// LoadKeyFile reads path and returns its trimmed contents as the password
// material, erroring if the file is empty after trimming.
func LoadKeyFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyKeyFile
	}
	return trimmed, nil
}
