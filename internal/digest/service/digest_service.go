package service

import (
	"crypto/hmac"
	"crypto/md5"  //nolint:gosec // md5 is a supported legacy selector
	"crypto/sha1" //nolint:gosec // sha1 is a supported legacy selector
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is a supported legacy selector

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

// DigestService implements Hasher over the thirteen supported selectors.
//
// Input text is encoded as single-byte ASCII before hashing, so "café" and "caf?" hash
// identically. Keyed algorithms called without a key use an empty HMAC key or an all-zero
// triple DES key, which makes their output a plain checksum rather than a MAC.
//
// The service is stateless and safe for concurrent use.
type DigestService struct{}

// NewDigestService creates a new DigestService.
func NewDigestService() *DigestService {
	return &DigestService{}
}

// Hash returns the lowercase hex digest of input under alg.
//
// Returns ErrUnsupportedAlgorithm for an unknown selector and ErrInvalidKeySize for a key
// the algorithm rejects. Unkeyed algorithms ignore key.
func (s *DigestService) Hash(input string, alg digestDomain.Algorithm, key []byte) (string, error) {
	h, err := newHash(alg, key)
	if err != nil {
		return "", err
	}

	_, _ = h.Write(encodeASCII(input))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ComputeHash returns the lowercase hex digest of input under alg with the default key,
// or "" on any failure. An empty alg selects DefaultAlgorithm.
func (s *DigestService) ComputeHash(input string, alg digestDomain.Algorithm) string {
	if alg == "" {
		alg = digestDomain.DefaultAlgorithm
	}
	digest, err := s.Hash(input, alg, nil)
	if err != nil {
		return ""
	}
	return digest
}

func newHash(alg digestDomain.Algorithm, key []byte) (hash.Hash, error) {
	switch alg {
	case digestDomain.HMAC, digestDomain.HMACSHA1:
		return hmac.New(sha1.New, key), nil
	case digestDomain.HMACMD5:
		return hmac.New(md5.New, key), nil
	case digestDomain.HMACSHA256:
		return hmac.New(sha256.New, key), nil
	case digestDomain.HMACSHA384:
		return hmac.New(sha512.New384, key), nil
	case digestDomain.HMACSHA512:
		return hmac.New(sha512.New, key), nil
	case digestDomain.MACTripleDES:
		return newTripleDESMAC(key)
	case digestDomain.MD5:
		return md5.New(), nil
	case digestDomain.RIPEMD160:
		return ripemd160.New(), nil
	case digestDomain.SHA1:
		return sha1.New(), nil
	case digestDomain.SHA256:
		return sha256.New(), nil
	case digestDomain.SHA384:
		return sha512.New384(), nil
	case digestDomain.SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", digestDomain.ErrUnsupportedAlgorithm, alg)
	}
}
