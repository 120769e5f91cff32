// Package domain defines the password-based cipher schemes, their parameters and errors.
package domain

import "fmt"

// Scheme identifies the ciphertext format of a blob.
//
// Blobs carry no version tag or algorithm identifier, so the scheme that produced a
// ciphertext must be known out-of-band and selected explicitly when decrypting.
type Scheme string

const (
	// Legacy is the fixed-salt format: base64(ciphertext).
	//
	// The salt is a compile-time constant shared by every call, and the password is
	// pre-hashed with SHA-256 before key derivation. Identical inputs always produce
	// identical ciphertexts. Only use it to read data that was written in this format.
	Legacy Scheme = "legacy"

	// Salted is the random-salt format: base64(salt(32) || ciphertext).
	//
	// Every encryption draws a fresh 32-byte salt, so identical inputs produce distinct
	// ciphertexts. The raw password bytes feed key derivation directly.
	Salted Scheme = "salted"
)

// IsValid reports whether the scheme is supported.
func (s Scheme) IsValid() bool {
	switch s {
	case Legacy, Salted:
		return true
	default:
		return false
	}
}

// ParseScheme converts a string to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	scheme := Scheme(s)
	if !scheme.IsValid() {
		return "", fmt.Errorf("%w: %q (valid options: legacy, salted)", ErrUnsupportedScheme, s)
	}
	return scheme, nil
}

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// BlockSize is the AES block size in bytes, which is also the CBC IV size.
	BlockSize = 16
	// SaltSize is the size of the random salt prefixed to salted ciphertexts.
	SaltSize = 32

	// LegacyIterations is the PBKDF2 iteration count of the legacy format.
	LegacyIterations = 1000
	// SaltedIterations is the PBKDF2 iteration count of the salted format.
	// Changing it makes every existing salted ciphertext undecryptable.
	SaltedIterations = 100_000
)

// legacySalt is the salt of the legacy format.
//
// A constant salt defeats the purpose of salting: equal passwords derive equal keys and
// precomputation against the format is possible. It is kept because changing it changes
// the wire format of every existing legacy ciphertext.
var legacySalt = [8]byte{1, 2, 3, 4, 5, 6, 7, 8}

// LegacySalt returns a copy of the fixed legacy salt.
func LegacySalt() []byte {
	salt := legacySalt
	return salt[:]
}
