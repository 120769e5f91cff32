package app

import (
	"fmt"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	cipherHTTP "github.com/allisson/passcrypt/internal/cipher/http"
	cipherService "github.com/allisson/passcrypt/internal/cipher/service"
	cipherUseCase "github.com/allisson/passcrypt/internal/cipher/usecase"
)

// CipherUseCase returns the cipher use case, decorated with business metrics.
func (c *Container) CipherUseCase() (cipherUseCase.CipherUseCase, error) {
	var err error
	c.cipherUseCaseInit.Do(func() {
		c.cipherUseCase, err = c.initCipherUseCase()
		if err != nil {
			c.setInitError("cipherUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cipherUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cipherUseCase, nil
}

// CipherHandler returns the cipher HTTP handler.
func (c *Container) CipherHandler() (*cipherHTTP.CipherHandler, error) {
	var err error
	c.cipherHandlerInit.Do(func() {
		c.cipherHandler, err = c.initCipherHandler()
		if err != nil {
			c.setInitError("cipherHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cipherHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cipherHandler, nil
}

// initCipherUseCase creates the cipher use case with both codecs.
func (c *Container) initCipherUseCase() (cipherUseCase.CipherUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for cipher use case: %w", err)
	}

	useCase := cipherUseCase.NewCipherUseCase(
		cipherService.NewLegacyCodec(),
		cipherService.NewSaltedCodec(),
	)

	return cipherUseCase.NewCipherUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCipherHandler creates the cipher handler using the configured default scheme.
func (c *Container) initCipherHandler() (*cipherHTTP.CipherHandler, error) {
	defaultScheme, err := cipherDomain.ParseScheme(c.config.DefaultCipherScheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default cipher scheme: %w", err)
	}

	useCase, err := c.CipherUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher use case for cipher handler: %w", err)
	}

	return cipherHTTP.NewCipherHandler(useCase, defaultScheme, c.Logger()), nil
}
