// Package domain defines the digest algorithm selectors and their errors.
package domain

import (
	"fmt"
	"strings"
)

// Algorithm selects a digest or MAC construction.
type Algorithm string

const (
	// HMAC is HMAC-SHA1, kept as its own selector for callers of the generic name.
	HMAC Algorithm = "hmac"
	// HMACMD5 is HMAC with MD5.
	HMACMD5 Algorithm = "hmac-md5"
	// HMACSHA1 is HMAC with SHA-1.
	HMACSHA1 Algorithm = "hmac-sha1"
	// HMACSHA256 is HMAC with SHA-256.
	HMACSHA256 Algorithm = "hmac-sha256"
	// HMACSHA384 is HMAC with SHA-384.
	HMACSHA384 Algorithm = "hmac-sha384"
	// HMACSHA512 is HMAC with SHA-512.
	HMACSHA512 Algorithm = "hmac-sha512"
	// MACTripleDES is a CBC-MAC over triple DES producing an 8-byte tag.
	MACTripleDES Algorithm = "mac-tripledes"
	// MD5 is the MD5 digest. Broken for collision resistance.
	MD5 Algorithm = "md5"
	// RIPEMD160 is the RIPEMD-160 digest.
	RIPEMD160 Algorithm = "ripemd160"
	// SHA1 is the SHA-1 digest. Broken for collision resistance.
	SHA1 Algorithm = "sha1"
	// SHA256 is the SHA-256 digest.
	SHA256 Algorithm = "sha256"
	// SHA384 is the SHA-384 digest.
	SHA384 Algorithm = "sha384"
	// SHA512 is the SHA-512 digest.
	SHA512 Algorithm = "sha512"

	// DefaultAlgorithm is used when no selector is given.
	DefaultAlgorithm = SHA256
)

// Algorithms lists every supported selector.
func Algorithms() []Algorithm {
	return []Algorithm{
		HMAC, HMACMD5, HMACSHA1, HMACSHA256, HMACSHA384, HMACSHA512,
		MACTripleDES, MD5, RIPEMD160, SHA1, SHA256, SHA384, SHA512,
	}
}

// IsValid reports whether the selector is supported.
func (a Algorithm) IsValid() bool {
	for _, alg := range Algorithms() {
		if a == alg {
			return true
		}
	}
	return false
}

// IsKeyed reports whether the algorithm is a MAC that takes a key.
func (a Algorithm) IsKeyed() bool {
	return a == MACTripleDES || strings.HasPrefix(string(a), "hmac")
}

// ParseAlgorithm converts a string to an Algorithm, case-insensitively.
// An empty string yields DefaultAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return DefaultAlgorithm, nil
	}

	alg := Algorithm(strings.ToLower(s))
	if !alg.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return alg, nil
}
