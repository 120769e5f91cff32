package dto

import (
	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// EncryptResponse contains the result of an encryption operation.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
	Scheme     string `json:"scheme"`
}

// MapEncryptResponse builds an EncryptResponse.
func MapEncryptResponse(ciphertext string, scheme cipherDomain.Scheme) EncryptResponse {
	return EncryptResponse{
		Ciphertext: ciphertext,
		Scheme:     string(scheme),
	}
}

// DecryptResponse contains the result of a decryption operation.
// SECURITY: The Plaintext field contains sensitive data and should be transmitted over HTTPS.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
	Scheme    string `json:"scheme"`
}

// MapDecryptResponse builds a DecryptResponse.
func MapDecryptResponse(plaintext string, scheme cipherDomain.Scheme) DecryptResponse {
	return DecryptResponse{
		Plaintext: plaintext,
		Scheme:    string(scheme),
	}
}
