package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/allisson/passcrypt/internal/cache"
	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
	"github.com/allisson/passcrypt/internal/metrics"
)

const digestCacheName = "digest"

// digestUseCaseWithCache memoizes DigestUseCase results.
//
// Entries are keyed by the algorithm and a SHA-256 fingerprint of the key and input, so
// neither the input text nor the MAC key is held in the cache key space.
type digestUseCaseWithCache struct {
	next    DigestUseCase
	cache   cache.Cache
	metrics metrics.CacheMetrics
	ttl     time.Duration
}

// NewDigestUseCaseWithCache wraps a DigestUseCase with memoization for ttl.
func NewDigestUseCaseWithCache(
	useCase DigestUseCase,
	c cache.Cache,
	m metrics.CacheMetrics,
	ttl time.Duration,
) DigestUseCase {
	return &digestUseCaseWithCache{
		next:    useCase,
		cache:   c,
		metrics: m,
		ttl:     ttl,
	}
}

// Hash returns the memoized digest, computing it on a miss. Errors are not memoized.
func (d *digestUseCaseWithCache) Hash(
	ctx context.Context,
	input string,
	alg digestDomain.Algorithm,
	key []byte,
) (string, error) {
	result := metrics.CacheHit
	digest, err := cache.GetOrSetTyped(ctx, d.cache, cacheKey(alg, key, input),
		func(ctx context.Context) (string, error) {
			result = metrics.CacheMiss
			return d.next.Hash(ctx, input, alg, key)
		},
		d.ttl,
	)
	if err != nil {
		return "", err
	}

	d.metrics.RecordLookup(ctx, digestCacheName, result)
	return digest, nil
}

// cacheKey returns alg + ":" + hex(SHA-256(len(key) || key || input)).
// The length prefix keeps (key, input) pairs with the same concatenation apart.
func cacheKey(alg digestDomain.Algorithm, key []byte, input string) string {
	h := sha256.New()
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(key)))
	h.Write(length[:])
	h.Write(key)
	h.Write([]byte(input))
	return string(alg) + ":" + hex.EncodeToString(h.Sum(nil))
}
