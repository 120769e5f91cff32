package usecase

import (
	"context"
	"time"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	"github.com/allisson/passcrypt/internal/metrics"
)

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.BusinessMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.BusinessMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for encryption operations.
func (c *cipherUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	scheme cipherDomain.Scheme,
	plaintext, password string,
) (string, error) {
	start := time.Now()
	ciphertext, err := c.next.Encrypt(ctx, scheme, plaintext, password)
	c.record(ctx, "cipher_encrypt", start, err)
	return ciphertext, err
}

// Decrypt records metrics for decryption operations.
func (c *cipherUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	scheme cipherDomain.Scheme,
	ciphertext, password string,
) (string, error) {
	start := time.Now()
	plaintext, err := c.next.Decrypt(ctx, scheme, ciphertext, password)
	c.record(ctx, "cipher_decrypt", start, err)
	return plaintext, err
}

func (c *cipherUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cipher", operation, status)
	c.metrics.RecordDuration(ctx, "cipher", operation, time.Since(start), status)
}
