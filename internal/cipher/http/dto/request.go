// Package dto provides data transfer objects for the cipher HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	customValidation "github.com/allisson/passcrypt/internal/validation"
)

// EncryptRequest contains the parameters for encrypting text.
type EncryptRequest struct {
	Scheme    string `json:"scheme"` // "legacy" or "salted"; empty selects the server default
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`
}

// Validate checks if the encrypt request is valid.
// Empty plaintext and empty password are both accepted.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Scheme,
			customValidation.OneOf(cipherDomain.Legacy, cipherDomain.Salted),
		),
	)
}

// DecryptRequest contains the parameters for decrypting a ciphertext.
//
// The scheme is required: ciphertexts carry no format marker, so the server cannot
// infer which scheme produced them.
type DecryptRequest struct {
	Scheme     string `json:"scheme"`
	Ciphertext string `json:"ciphertext"` // standard padded base64
	Password   string `json:"password"`
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Scheme,
			validation.Required,
			customValidation.NotBlank,
			customValidation.OneOf(cipherDomain.Legacy, cipherDomain.Salted),
		),
		validation.Field(&r.Ciphertext,
			customValidation.Base64,
		),
	)
}
