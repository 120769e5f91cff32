// Package service computes digests and MACs over ASCII-encoded text.
package service

import (
	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

// Hasher defines the interface for computing a hex digest of text.
type Hasher interface {
	// Hash returns the lowercase hex digest of input under alg.
	// key is only used by keyed algorithms; nil selects the default key.
	Hash(input string, alg digestDomain.Algorithm, key []byte) (string, error)
}
