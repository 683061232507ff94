package enc

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Magic is the 8-byte container signature every cokacenc v2 chunk starts
// with.
var Magic = [8]byte{'C', 'O', 'K', 'A', 'C', 'E', 'N', 'C'}

const (
	// Version is the only container version this package writes or reads.
	Version = 2

	aesBlockSize      = 16
	keyLen            = 32
	saltLen           = 16
	ivLen             = 16
	pbkdf2Iterations  = 100_000
	// HeaderLen is magic(8) + version(4) + salt(16) + iv(16), the fixed
	// prefix of every chunk file, with no filename field.
	HeaderLen = 8 + 4 + saltLen + ivLen
)

// Header is the fixed-size cleartext prefix of a chunk file.
type Header struct {
	Version uint32
	Salt    [saltLen]byte
	IV      [ivLen]byte
}

// GenerateSalt returns a fresh random PBKDF2 salt.
func GenerateSalt() ([saltLen]byte, error) {
	var s [saltLen]byte
	_, err := rand.Read(s[:])
	return s, err
}

// GenerateIV returns a fresh random AES-CBC initialization vector.
func GenerateIV() ([ivLen]byte, error) {
	var iv [ivLen]byte
	_, err := rand.Read(iv[:])
	return iv, err
}

// DeriveKey derives a 32-byte AES-256 key from password and salt using
// PBKDF2-HMAC-SHA512 with 100,000 iterations.
func DeriveKey(password []byte, salt [saltLen]byte) []byte {
	return pbkdf2.Key(password, salt[:], pbkdf2Iterations, keyLen, sha512.New)
}

// WriteHeader writes the 44-byte cleartext header to w.
func WriteHeader(w io.Writer, h Header) error {
	buf := make([]byte, HeaderLen)
	copy(buf[0:8], Magic[:])
	binary.LittleEndian.PutUint32(buf[8:12], h.Version)
	copy(buf[12:12+saltLen], h.Salt[:])
	copy(buf[12+saltLen:12+saltLen+ivLen], h.IV[:])
	_, err := w.Write(buf)
	return err
}

// ReadHeader reads and validates the 44-byte cleartext header from r.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, err
	}
	var h Header
	if string(buf[0:8]) != string(Magic[:]) {
		return Header{}, ErrInvalidMagic
	}
	h.Version = binary.LittleEndian.Uint32(buf[8:12])
	if h.Version != Version {
		return Header{}, &UnsupportedVersionError{Version: h.Version}
	}
	copy(h.Salt[:], buf[12:12+saltLen])
	copy(h.IV[:], buf[12+saltLen:12+saltLen+ivLen])
	return h, nil
}

// ChunkEncryptor buffers plaintext into full AES blocks and encrypts them
// with CBC as soon as a full block is available, deferring PKCS7 padding of
// the final partial block to Finalize. This mirrors a streaming cipher so
// pack() never has to hold a whole chunk's plaintext in memory at once.
type ChunkEncryptor struct {
	block   cipher.Block
	mode    cipher.BlockMode
	pending []byte
}

// NewChunkEncryptor constructs a ChunkEncryptor keyed by key, chained from
// iv.
func NewChunkEncryptor(key []byte, iv [ivLen]byte) (*ChunkEncryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &ChunkEncryptor{block: block, mode: cipher.NewCBCEncrypter(block, iv[:])}, nil
}

// Update feeds more plaintext in and returns any newly completed encrypted
// blocks.
func (c *ChunkEncryptor) Update(plaintext []byte) []byte {
	c.pending = append(c.pending, plaintext...)
	n := len(c.pending) - (len(c.pending) % aesBlockSize)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	c.mode.CryptBlocks(out, c.pending[:n])
	c.pending = c.pending[n:]
	return out
}

// Finalize pads the remaining partial block with PKCS7 and encrypts it,
// returning exactly one block of output.
func (c *ChunkEncryptor) Finalize() []byte {
	padLen := aesBlockSize - len(c.pending)%aesBlockSize
	padded := make([]byte, len(c.pending)+padLen)
	copy(padded, c.pending)
	for i := len(c.pending); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	out := make([]byte, len(padded))
	c.mode.CryptBlocks(out, padded)
	return out
}

// DecryptChunkStreaming decrypts all ciphertext with CBC and validates and
// strips PKCS7 padding from the final block. ciphertext must be a whole
// number of AES blocks and non-empty.
func DecryptChunkStreaming(key []byte, iv [ivLen]byte, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aesBlockSize != 0 {
		return nil, fmt.Errorf("cokacenc: ciphertext length %d is not a positive multiple of the block size", len(ciphertext))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	mode := cipher.NewCBCDecrypter(block, iv[:])
	plain := make([]byte, len(ciphertext))
	mode.CryptBlocks(plain, ciphertext)

	padByte := plain[len(plain)-1]
	if padByte < 1 || int(padByte) > aesBlockSize {
		return nil, ErrInvalidPadding
	}
	padStart := len(plain) - int(padByte)
	for i := padStart; i < len(plain); i++ {
		if plain[i] != padByte {
			return nil, ErrInvalidPadding
		}
	}
	return plain[:padStart], nil
}
