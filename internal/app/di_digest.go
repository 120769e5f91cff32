package app

import (
	"fmt"

	"github.com/allisson/passcrypt/internal/cache"
	digestHTTP "github.com/allisson/passcrypt/internal/digest/http"
	digestService "github.com/allisson/passcrypt/internal/digest/service"
	digestUseCase "github.com/allisson/passcrypt/internal/digest/usecase"
)

// DigestCache returns the cache backing the digest use case.
func (c *Container) DigestCache() cache.Cache {
	c.digestCacheInit.Do(func() {
		memoryCache := cache.NewMemoryCache(cache.WithLogger(c.Logger()))

		c.mu.Lock()
		c.digestCache = memoryCache
		c.mu.Unlock()
	})
	return c.digestCache
}

// DigestUseCase returns the digest use case, decorated with metrics and, when enabled, memoization.
func (c *Container) DigestUseCase() (digestUseCase.DigestUseCase, error) {
	var err error
	c.digestUseCaseInit.Do(func() {
		c.digestUseCase, err = c.initDigestUseCase()
		if err != nil {
			c.setInitError("digestUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("digestUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.digestUseCase, nil
}

// DigestHandler returns the digest HTTP handler.
func (c *Container) DigestHandler() (*digestHTTP.DigestHandler, error) {
	var err error
	c.digestHandlerInit.Do(func() {
		c.digestHandler, err = c.initDigestHandler()
		if err != nil {
			c.setInitError("digestHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("digestHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.digestHandler, nil
}

// initDigestUseCase composes the digest use case. Metrics wrap the cache, so every
// request is counted whether or not it was served from memory.
func (c *Container) initDigestUseCase() (digestUseCase.DigestUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for digest use case: %w", err)
	}

	useCase := digestUseCase.NewDigestUseCase(digestService.NewDigestService())

	if c.config.DigestCacheEnabled {
		cacheMetrics, err := c.CacheMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get cache metrics for digest use case: %w", err)
		}

		useCase = digestUseCase.NewDigestUseCaseWithCache(
			useCase,
			c.DigestCache(),
			cacheMetrics,
			c.config.DigestCacheTTL,
		)
	}

	return digestUseCase.NewDigestUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initDigestHandler creates the digest handler.
func (c *Container) initDigestHandler() (*digestHTTP.DigestHandler, error) {
	useCase, err := c.DigestUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get digest use case for digest handler: %w", err)
	}

	return digestHTTP.NewDigestHandler(useCase, c.Logger()), nil
}
