package service

import (
	"crypto/aes"
	"crypto/sha1" //nolint:gosec // legacy format derives with HMAC-SHA1
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// PBKDF2Deriver implements KeyDeriver using PBKDF2 (RFC 8018) with a configurable PRF.
//
// The key and IV are read from one output stream of keyLen+ivLen bytes, so the IV is the
// continuation of the key rather than an independent derivation. Both schemes depend on
// this layout for byte compatibility.
//
// The deriver holds no mutable state and is safe for concurrent use.
type PBKDF2Deriver struct {
	iterations int
	prf        func() hash.Hash
}

// NewPBKDF2Deriver creates a PBKDF2Deriver with the given iteration count and PRF hash.
func NewPBKDF2Deriver(iterations int, prf func() hash.Hash) *PBKDF2Deriver {
	return &PBKDF2Deriver{
		iterations: iterations,
		prf:        prf,
	}
}

// NewLegacyDeriver creates the deriver of the legacy format: HMAC-SHA1, 1000 iterations.
func NewLegacyDeriver() *PBKDF2Deriver {
	return NewPBKDF2Deriver(cipherDomain.LegacyIterations, sha1.New)
}

// NewSaltedDeriver creates the deriver of the salted format: HMAC-SHA256, 100,000 iterations.
func NewSaltedDeriver() *PBKDF2Deriver {
	return NewPBKDF2Deriver(cipherDomain.SaltedIterations, sha256.New)
}

// Derive returns the key and IV derived from password and salt.
//
// keyLen must be a valid AES key size (16, 24 or 32) and ivLen must equal the AES block
// size, otherwise ErrInvalidDerivationLength is returned. The caller owns the returned
// material and should call Zero on it once the cipher has been initialized.
func (d *PBKDF2Deriver) Derive(
	password, salt []byte,
	keyLen, ivLen int,
) (cipherDomain.DerivedKeyMaterial, error) {
	switch keyLen {
	case 16, 24, 32:
	default:
		return cipherDomain.DerivedKeyMaterial{}, cipherDomain.ErrInvalidDerivationLength
	}
	if ivLen != aes.BlockSize {
		return cipherDomain.DerivedKeyMaterial{}, cipherDomain.ErrInvalidDerivationLength
	}

	stream := pbkdf2.Key(password, salt, d.iterations, keyLen+ivLen, d.prf)
	return cipherDomain.DerivedKeyMaterial{
		Key: stream[:keyLen:keyLen],
		IV:  stream[keyLen:],
	}, nil
}
