package domain

import (
	"github.com/allisson/passcrypt/internal/errors"
)

// Digest error definitions.
var (
	// ErrUnsupportedAlgorithm indicates the requested digest selector is unknown.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported digest algorithm")

	// ErrInvalidKeySize indicates the MAC key length is not accepted by the algorithm.
	//
	// Triple-DES MAC accepts 16 or 24 byte keys. HMAC accepts any length.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")
)
