// Package dto provides data transfer objects for the digest HTTP API.
package dto

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
	customValidation "github.com/allisson/passcrypt/internal/validation"
)

// supportedAlgorithm accepts any selector ParseAlgorithm understands, including the empty default.
var supportedAlgorithm = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if _, err := digestDomain.ParseAlgorithm(s); err != nil {
		return validation.NewError("validation_algorithm", "must be a supported digest algorithm")
	}
	return nil
})

// HashRequest contains the parameters for computing a digest.
type HashRequest struct {
	Input     string `json:"input"`
	Algorithm string `json:"algorithm"`     // empty selects sha256
	Key       string `json:"key,omitempty"` // base64-encoded, keyed algorithms only
}

// Validate checks if the hash request is valid.
func (r *HashRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Algorithm, supportedAlgorithm),
		validation.Field(&r.Key, customValidation.Base64),
	)
}

// Params returns the parsed algorithm and decoded key. Call Validate first.
func (r *HashRequest) Params() (digestDomain.Algorithm, []byte, error) {
	alg, err := digestDomain.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return "", nil, err
	}

	if r.Key == "" {
		return alg, nil, nil
	}

	key, err := base64.StdEncoding.DecodeString(r.Key)
	if err != nil {
		return "", nil, err
	}
	return alg, key, nil
}
