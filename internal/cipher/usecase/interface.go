package usecase

import (
	"context"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// CipherUseCase defines the interface for password-based encryption operations.
//
// An empty input returns ("", nil). Any other failure returns an error, so an empty
// plaintext is never confused with a failed decryption.
type CipherUseCase interface {
	Encrypt(ctx context.Context, scheme cipherDomain.Scheme, plaintext, password string) (string, error)
	Decrypt(ctx context.Context, scheme cipherDomain.Scheme, ciphertext, password string) (string, error)
}
