package usecase

import (
	"context"
	"time"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
	"github.com/allisson/passcrypt/internal/metrics"
)

// digestUseCaseWithMetrics decorates DigestUseCase with metrics instrumentation.
type digestUseCaseWithMetrics struct {
	next    DigestUseCase
	metrics metrics.BusinessMetrics
}

// NewDigestUseCaseWithMetrics wraps a DigestUseCase with metrics recording.
func NewDigestUseCaseWithMetrics(useCase DigestUseCase, m metrics.BusinessMetrics) DigestUseCase {
	return &digestUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Hash records metrics for digest operations.
func (d *digestUseCaseWithMetrics) Hash(
	ctx context.Context,
	input string,
	alg digestDomain.Algorithm,
	key []byte,
) (string, error) {
	start := time.Now()
	digest, err := d.next.Hash(ctx, input, alg, key)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "digest", "digest_hash", status)
	d.metrics.RecordDuration(ctx, "digest", "digest_hash", time.Since(start), status)

	return digest, err
}
