package domain

import (
	"errors"

	apperrors "github.com/allisson/passcrypt/internal/errors"
)

// Cipher error definitions.
//
// Input-derived failures wrap apperrors.ErrInvalidInput so the HTTP layer reports them
// as 422. ErrInvalidDerivationLength is a programming error and stays unwrapped.
var (
	// ErrUnsupportedScheme indicates the requested cipher scheme is unknown.
	ErrUnsupportedScheme = apperrors.Wrap(apperrors.ErrInvalidInput, "unsupported cipher scheme")

	// ErrMalformedCiphertext indicates the ciphertext is not valid base64 or is shorter
	// than the minimum frame of its scheme.
	ErrMalformedCiphertext = apperrors.Wrap(apperrors.ErrInvalidInput, "malformed ciphertext")

	// ErrDecryptionFailed indicates the cipher rejected the ciphertext.
	//
	// Causes include a wrong password, truncation, tampering or a ciphertext produced by
	// the other scheme. The specific cause is not disclosed.
	ErrDecryptionFailed = apperrors.Wrap(apperrors.ErrInvalidInput, "decryption failed")

	// ErrInvalidDerivationLength indicates a key or IV length incompatible with AES was
	// requested from key derivation.
	ErrInvalidDerivationLength = errors.New("invalid key derivation length")
)
