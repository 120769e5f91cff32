// Package http provides HTTP handlers for password-based encryption and decryption.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	"github.com/allisson/passcrypt/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/passcrypt/internal/cipher/usecase"
	"github.com/allisson/passcrypt/internal/httputil"
	customValidation "github.com/allisson/passcrypt/internal/validation"
)

// CipherHandler handles HTTP requests for encryption and decryption.
type CipherHandler struct {
	cipherUseCase cipherUseCase.CipherUseCase
	defaultScheme cipherDomain.Scheme // used when an encrypt request names no scheme
	logger        *slog.Logger
}

// NewCipherHandler creates a new cipher handler with required dependencies.
func NewCipherHandler(
	cipherUseCase cipherUseCase.CipherUseCase,
	defaultScheme cipherDomain.Scheme,
	logger *slog.Logger,
) *CipherHandler {
	return &CipherHandler{
		cipherUseCase: cipherUseCase,
		defaultScheme: defaultScheme,
		logger:        logger,
	}
}

// EncryptHandler encrypts plaintext under a password.
// POST /v1/cipher/encrypt
// Returns 200 OK with the base64 ciphertext. Empty plaintext returns an empty ciphertext.
func (h *CipherHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	scheme := h.defaultScheme
	if req.Scheme != "" {
		scheme = cipherDomain.Scheme(req.Scheme)
	}

	ciphertext, err := h.cipherUseCase.Encrypt(c.Request.Context(), scheme, req.Plaintext, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncryptResponse(ciphertext, scheme))
}

// DecryptHandler decrypts a ciphertext under a password.
// POST /v1/cipher/decrypt
// Returns 200 OK with the plaintext, or 422 Unprocessable Entity when decryption fails.
func (h *CipherHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	scheme := cipherDomain.Scheme(req.Scheme)
	plaintext, err := h.cipherUseCase.Decrypt(c.Request.Context(), scheme, req.Ciphertext, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDecryptResponse(plaintext, scheme))
}
