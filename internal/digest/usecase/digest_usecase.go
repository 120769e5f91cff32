// Package usecase implements digest operations with optional metrics and memoization.
//
// Decorators compose around the base use case in the DI container:
//
//	digestUC := usecase.NewDigestUseCase(service.NewDigestService())
//	digestUC = usecase.NewDigestUseCaseWithCache(digestUC, memoryCache, cacheMetrics, ttl)
//	digestUC = usecase.NewDigestUseCaseWithMetrics(digestUC, businessMetrics)
package usecase

import (
	"context"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
	digestService "github.com/allisson/passcrypt/internal/digest/service"
)

type digestUseCase struct {
	hasher digestService.Hasher
}

// Hash validates the selector and delegates to the hasher.
func (d *digestUseCase) Hash(
	ctx context.Context,
	input string,
	alg digestDomain.Algorithm,
	key []byte,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !alg.IsValid() {
		return "", digestDomain.ErrUnsupportedAlgorithm
	}
	return d.hasher.Hash(input, alg, key)
}

// NewDigestUseCase creates a new DigestUseCase backed by hasher.
func NewDigestUseCase(hasher digestService.Hasher) DigestUseCase {
	return &digestUseCase{hasher: hasher}
}
