// Package service provides password-based AES-256-CBC encryption.
// Implements PBKDF2 key derivation and the legacy and salted ciphertext formats.
package service

import (
	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// KeyDeriver defines the interface for deriving an AES key and IV from a password and salt.
type KeyDeriver interface {
	// Derive returns keyLen key bytes followed by ivLen IV bytes from a single derivation stream.
	Derive(password, salt []byte, keyLen, ivLen int) (cipherDomain.DerivedKeyMaterial, error)
}

// Codec defines the interface for a password-based ciphertext format.
//
// Empty input is a no-op on both directions and returns ("", nil).
type Codec interface {
	// Encrypt encrypts plaintext under password and returns base64 text.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt decrypts base64 ciphertext under password.
	Decrypt(ciphertext, password string) (string, error)
}
