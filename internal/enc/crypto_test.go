package enc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	iv, err := GenerateIV()
	require.NoError(t, err)
	h := Header{Version: Version, Salt: salt, IV: iv}

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	assert.Equal(t, HeaderLen, buf.Len())

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestReadHeaderBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, HeaderLen))
	_, err := ReadHeader(buf)
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadHeaderBadVersion(t *testing.T) {
	var buf bytes.Buffer
	salt, _ := GenerateSalt()
	iv, _ := GenerateIV()
	require.NoError(t, WriteHeader(&buf, Header{Version: 99, Salt: salt, IV: iv}))
	_, err := ReadHeader(&buf)
	var verr *UnsupportedVersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, uint32(99), verr.Version)
}

func TestChunkEncryptDecryptRoundTrip(t *testing.T) {
	key := DeriveKey([]byte("correct horse battery staple"), [16]byte{1, 2, 3})
	iv, err := GenerateIV()
	require.NoError(t, err)

	plaintext := []byte("the quick brown fox jumps over the lazy dog, repeated enough to span multiple AES blocks for a real streaming test")

	enc, err := NewChunkEncryptor(key, iv)
	require.NoError(t, err)
	var ciphertext []byte
	// feed in small, irregular chunks to exercise the partial-block buffer.
	for i := 0; i < len(plaintext); i += 7 {
		end := i + 7
		if end > len(plaintext) {
			end = len(plaintext)
		}
		ciphertext = append(ciphertext, enc.Update(plaintext[i:end])...)
	}
	ciphertext = append(ciphertext, enc.Finalize()...)
	assert.Equal(t, 0, len(ciphertext)%16)

	decrypted, err := DecryptChunkStreaming(key, iv, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestChunkEncryptEmptyPlaintext(t *testing.T) {
	key := DeriveKey([]byte("pw"), [16]byte{})
	iv, _ := GenerateIV()
	enc, err := NewChunkEncryptor(key, iv)
	require.NoError(t, err)
	ciphertext := enc.Finalize()
	assert.Equal(t, 16, len(ciphertext))

	decrypted, err := DecryptChunkStreaming(key, iv, ciphertext)
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestDecryptChunkInvalidPadding(t *testing.T) {
	key := DeriveKey([]byte("pw"), [16]byte{})
	iv, _ := GenerateIV()
	// an empty chunk encrypts to one block of pure padding (16 bytes of
	// 0x10). In CBC the single block's plaintext is XORed with the IV, so
	// decrypting under an IV whose last byte is flipped turns the final
	// padding byte into 0x10^0xFF = 0xEF, which is never a valid pad length.
	enc, err := NewChunkEncryptor(key, iv)
	require.NoError(t, err)
	ciphertext := enc.Finalize()
	badIV := iv
	badIV[len(badIV)-1] ^= 0xFF
	_, err = DecryptChunkStreaming(key, badIV, ciphertext)
	assert.Error(t, err)
}
