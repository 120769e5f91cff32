package dto

import (
	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

// HashResponse contains a computed digest.
type HashResponse struct {
	Digest    string `json:"digest"`
	Algorithm string `json:"algorithm"`
}

// MapHashResponse builds a HashResponse.
func MapHashResponse(digest string, alg digestDomain.Algorithm) HashResponse {
	return HashResponse{
		Digest:    digest,
		Algorithm: string(alg),
	}
}
