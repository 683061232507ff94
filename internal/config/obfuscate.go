package config

import "encoding/base64"

// obfuscationKey is a fixed XOR key, not a secret — remote profile
// passwords are obfuscated to avoid shoulder-surfing a plaintext settings
// file, not encrypted against a motivated reader.
var obfuscationKey = []byte("cokacdir_remote_v1_key")

const obfuscatedPrefix = "enc:"

func xorWithKey(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ obfuscationKey[i%len(obfuscationKey)]
	}
	return out
}

// obfuscate encodes s for storage, or returns "" unchanged.
func obfuscate(s string) string {
	if s == "" {
		return ""
	}
	return obfuscatedPrefix + base64.StdEncoding.EncodeToString(xorWithKey([]byte(s)))
}

// deobfuscate reverses obfuscate. Values without the "enc:" prefix are
// passed through unchanged, so settings files written before this scheme
// existed keep working.
func deobfuscate(s string) string {
	if s == "" {
		return ""
	}
	if len(s) < len(obfuscatedPrefix) || s[:len(obfuscatedPrefix)] != obfuscatedPrefix {
		return s
	}
	raw, err := base64.StdEncoding.DecodeString(s[len(obfuscatedPrefix):])
	if err != nil {
		return s
	}
	return string(xorWithKey(raw))
}
