// Package http provides the HTTP handler for computing digests.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passcrypt/internal/digest/http/dto"
	digestUseCase "github.com/allisson/passcrypt/internal/digest/usecase"
	"github.com/allisson/passcrypt/internal/httputil"
	customValidation "github.com/allisson/passcrypt/internal/validation"
)

// DigestHandler handles HTTP requests for digest computation.
type DigestHandler struct {
	digestUseCase digestUseCase.DigestUseCase
	logger        *slog.Logger
}

// NewDigestHandler creates a new digest handler with required dependencies.
func NewDigestHandler(digestUseCase digestUseCase.DigestUseCase, logger *slog.Logger) *DigestHandler {
	return &DigestHandler{
		digestUseCase: digestUseCase,
		logger:        logger,
	}
}

// HashHandler computes the digest of the request input.
// POST /v1/digest
// Returns 200 OK with the lowercase hex digest.
func (h *DigestHandler) HashHandler(c *gin.Context) {
	var req dto.HashRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	alg, key, err := req.Params()
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	digest, err := h.digestUseCase.Hash(c.Request.Context(), req.Input, alg, key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapHashResponse(digest, alg))
}
