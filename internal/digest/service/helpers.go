package service

import (
	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

// ComputeHash returns the lowercase hex digest of input under alg, or "" on any failure.
func ComputeHash(input string, alg digestDomain.Algorithm) string {
	return NewDigestService().ComputeHash(input, alg)
}
