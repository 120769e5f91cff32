package usecase

import (
	"context"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

// DigestUseCase defines the interface for computing digests of text.
type DigestUseCase interface {
	// Hash returns the lowercase hex digest of input under alg. key is only used by keyed
	// algorithms; an empty key selects the algorithm's default key.
	Hash(ctx context.Context, input string, alg digestDomain.Algorithm, key []byte) (string, error)
}
