package service

import (
	"crypto/sha256"
	"encoding/base64"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// LegacyCodec implements the fixed-salt ciphertext format: base64(AES-256-CBC(plaintext)).
//
// The password is hashed with SHA-256 and the digest is stretched with PBKDF2-HMAC-SHA1
// over the constant legacy salt. Equal inputs always produce equal ciphertexts, which leaks
// plaintext equality. Use SaltedCodec for new data.
type LegacyCodec struct {
	deriver KeyDeriver
}

// NewLegacyCodec creates a LegacyCodec with the legacy PBKDF2 parameters.
func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{deriver: NewLegacyDeriver()}
}

// Encrypt encrypts plaintext and returns base64(ciphertext).
func (c *LegacyCodec) Encrypt(plaintext, password string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	material, err := c.derive(password)
	if err != nil {
		return "", err
	}
	defer material.Zero()

	ciphertext, err := encryptCBC(material, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decrypts a base64 legacy ciphertext. Whitespace inside the base64 is ignored, and
// a whitespace-only ciphertext decrypts to "".
// Returns ErrMalformedCiphertext for invalid base64 and ErrDecryptionFailed when the cipher
// rejects the input.
func (c *LegacyCodec) Decrypt(ciphertext, password string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := decodeBase64(ciphertext)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	material, err := c.derive(password)
	if err != nil {
		return "", err
	}
	defer material.Zero()

	plaintext, err := decryptCBC(material, raw)
	if err != nil {
		return "", err
	}
	return decodeText(plaintext), nil
}

func (c *LegacyCodec) derive(password string) (cipherDomain.DerivedKeyMaterial, error) {
	digest := sha256.Sum256([]byte(password))
	defer cipherDomain.Zero(digest[:])

	return c.deriver.Derive(
		digest[:],
		cipherDomain.LegacySalt(),
		cipherDomain.KeySize,
		cipherDomain.BlockSize,
	)
}
