// Package vault encrypts Canvas API tokens at rest with AES-256-GCM.
// Ciphertext is stored in a packed binary form so a single bytea column
// carries everything needed to decrypt: a version byte, the nonce and
// the sealed payload.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	nonceSize    = 12
	versionMagic = byte('E')
	headerSize   = 1 + nonceSize
)

var (
	// ErrMalformed is returned when packed ciphertext is too short or
	// carries an unknown version byte.
	ErrMalformed = errors.New("vault: malformed ciphertext")

	// ErrKeySize is returned when a data key is not KeySize bytes long.
	ErrKeySize = fmt.Errorf("vault: data key must be %d bytes", KeySize)
)

// Cipher seals and opens token material. The aad argument binds a
// ciphertext to its owning record so values cannot be swapped between
// rows without detection.
type Cipher interface {
	Encrypt(aad, plainText []byte) ([]byte, error)
	Decrypt(aad, packedText []byte) ([]byte, error)
}

type symmetric struct {
	aesgcm cipher.AEAD
}

// NewCipher builds a Cipher from a raw 32-byte data key.
func NewCipher(key []byte) (Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}

	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, err
	}

	return &symmetric{aesgcm: aesgcm}, nil
}

// NewCipherFromBase64 builds a Cipher from a base64-encoded data key, the
// form the key takes in EASEBOARD_DATA_KEY.
func NewCipherFromBase64(encoded string) (Cipher, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("vault: decode data key: %w", err)
	}

	return NewCipher(key)
}

// GenerateDataKey returns a fresh random data key, base64 encoded.
func GenerateDataKey() (string, error) {
	key, err := RandomBytes(KeySize)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(key), nil
}

// RandomBytes reads size bytes from the system CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}

func (s *symmetric) Encrypt(aad, plainText []byte) ([]byte, error) {
	// Never use more than 2^32 random nonces with a given key because of
	// the risk of a repeat.
	nonce, err := RandomBytes(nonceSize)
	if err != nil {
		return nil, err
	}

	sealed := s.aesgcm.Seal(nil, nonce, plainText, aad)

	packed := make([]byte, headerSize+len(sealed))
	packed[0] = versionMagic
	copy(packed[1:], nonce)
	copy(packed[headerSize:], sealed)

	return packed, nil
}

func (s *symmetric) Decrypt(aad, packedText []byte) ([]byte, error) {
	if len(packedText) < headerSize+s.aesgcm.Overhead() {
		return nil, ErrMalformed
	}
	if packedText[0] != versionMagic {
		return nil, ErrMalformed
	}

	nonce := packedText[1:headerSize]
	sealed := packedText[headerSize:]

	return s.aesgcm.Open(nil, nonce, sealed, aad)
}
