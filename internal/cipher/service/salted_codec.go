package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// SaltedCodec implements the random-salt ciphertext format: base64(salt || ciphertext).
//
// Every encryption draws a fresh 32-byte salt and derives the key and IV with
// PBKDF2-HMAC-SHA256 at 100,000 iterations. There is no authentication tag: a modified
// ciphertext is detected only when it breaks the padding.
//
// Thread safety:
//
//	The codec is safe for concurrent use. Derived key material is local to each call.
type SaltedCodec struct {
	deriver KeyDeriver
	rand    io.Reader
}

// NewSaltedCodec creates a SaltedCodec with the salted PBKDF2 parameters and crypto/rand.
func NewSaltedCodec() *SaltedCodec {
	return &SaltedCodec{
		deriver: NewSaltedDeriver(),
		rand:    rand.Reader,
	}
}

// Encrypt encrypts plaintext and returns base64(salt || ciphertext).
// Returns an error if the random source fails.
func (c *SaltedCodec) Encrypt(plaintext, password string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	salt := make([]byte, cipherDomain.SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	material, err := c.deriver.Derive(
		[]byte(password),
		salt,
		cipherDomain.KeySize,
		cipherDomain.BlockSize,
	)
	if err != nil {
		return "", err
	}
	defer material.Zero()

	ciphertext, err := encryptCBC(material, []byte(plaintext))
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, len(salt)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt decrypts a base64 salted ciphertext.
//
// Whitespace inside the base64 is ignored. Returns ErrMalformedCiphertext for invalid base64
// or a frame shorter than the salt, and ErrDecryptionFailed when the cipher rejects the
// remainder.
func (c *SaltedCodec) Decrypt(ciphertext, password string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := decodeBase64(ciphertext)
	if err != nil {
		return "", err
	}
	if len(raw) < cipherDomain.SaltSize {
		return "", fmt.Errorf(
			"%w: %d bytes is shorter than the %d byte salt",
			cipherDomain.ErrMalformedCiphertext,
			len(raw),
			cipherDomain.SaltSize,
		)
	}

	salt, body := raw[:cipherDomain.SaltSize], raw[cipherDomain.SaltSize:]

	material, err := c.deriver.Derive(
		[]byte(password),
		salt,
		cipherDomain.KeySize,
		cipherDomain.BlockSize,
	)
	if err != nil {
		return "", err
	}
	defer material.Zero()

	plaintext, err := decryptCBC(material, body)
	if err != nil {
		return "", err
	}
	return decodeText(plaintext), nil
}
