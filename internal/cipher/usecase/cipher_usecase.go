// Package usecase implements password-based encryption operations over the supported schemes.
//
// The use case selects the codec for the requested scheme and returns an explicit error
// when decryption fails, unlike the fail-soft helpers in the service package which collapse
// every failure into an empty string.
//
// # Usage Example
//
//	cipherUC := usecase.NewCipherUseCase(service.NewLegacyCodec(), service.NewSaltedCodec())
//
//	ciphertext, err := cipherUC.Encrypt(ctx, cipherDomain.Salted, "Hello World", "123456@123")
//
//	plaintext, err := cipherUC.Decrypt(ctx, cipherDomain.Salted, ciphertext, "123456@123")
//	if errors.Is(err, cipherDomain.ErrDecryptionFailed) {
//	    // wrong password or tampered ciphertext
//	}
package usecase

import (
	"context"
	"fmt"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	cipherService "github.com/allisson/passcrypt/internal/cipher/service"
)

type cipherUseCase struct {
	codecs map[cipherDomain.Scheme]cipherService.Codec
}

// codec returns the codec registered for scheme.
func (c *cipherUseCase) codec(scheme cipherDomain.Scheme) (cipherService.Codec, error) {
	codec, ok := c.codecs[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", cipherDomain.ErrUnsupportedScheme, scheme)
	}
	return codec, nil
}

// Encrypt encrypts plaintext under password with the given scheme.
//
// Key derivation is CPU bound and not interruptible, so the context is only checked
// before it starts.
func (c *cipherUseCase) Encrypt(
	ctx context.Context,
	scheme cipherDomain.Scheme,
	plaintext, password string,
) (string, error) {
	codec, err := c.codec(scheme)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ciphertext, err := codec.Encrypt(plaintext, password)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with %s scheme: %w", scheme, err)
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext under password with the given scheme.
//
// Returns ErrMalformedCiphertext when the input cannot be framed and ErrDecryptionFailed
// when the cipher rejects it.
func (c *cipherUseCase) Decrypt(
	ctx context.Context,
	scheme cipherDomain.Scheme,
	ciphertext, password string,
) (string, error) {
	codec, err := c.codec(scheme)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	plaintext, err := codec.Decrypt(ciphertext, password)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt with %s scheme: %w", scheme, err)
	}
	return plaintext, nil
}

// NewCipherUseCase creates a new CipherUseCase with one codec per supported scheme.
func NewCipherUseCase(legacy, salted cipherService.Codec) CipherUseCase {
	return &cipherUseCase{
		codecs: map[cipherDomain.Scheme]cipherService.Codec{
			cipherDomain.Legacy: legacy,
			cipherDomain.Salted: salted,
		},
	}
}
