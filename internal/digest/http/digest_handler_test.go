package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
	"github.com/allisson/passcrypt/internal/digest/http/dto"
	"github.com/allisson/passcrypt/internal/digest/usecase/mocks"
	"github.com/allisson/passcrypt/internal/httputil"
)

// setupTestDigestHandler creates a test digest handler with mocked dependencies.
func setupTestDigestHandler(t *testing.T) (*DigestHandler, *mocks.MockDigestUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockDigestUseCase := mocks.NewMockDigestUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDigestHandler(mockDigestUseCase, logger), mockDigestUseCase
}

func TestDigestHandler_HashHandler(t *testing.T) {
	t.Run("Success_DefaultAlgorithm", func(t *testing.T) {
		handler, mockUseCase := setupTestDigestHandler(t)

		mockUseCase.EXPECT().
			Hash(mock.Anything, "hello", digestDomain.SHA256, []byte(nil)).
			Return("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/digest", dto.HashRequest{Input: "hello"})
		handler.HashHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.HashResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", response.Digest)
		assert.Equal(t, "sha256", response.Algorithm)
	})

	t.Run("Success_KeyedAlgorithm", func(t *testing.T) {
		handler, mockUseCase := setupTestDigestHandler(t)

		mockUseCase.EXPECT().
			Hash(mock.Anything, "hello", digestDomain.HMACSHA256, []byte("key")).
			Return("deadbeef", nil).
			Once()

		request := dto.HashRequest{Input: "hello", Algorithm: "HMAC-SHA256", Key: "a2V5"}
		c, w := createTestContext(http.MethodPost, "/v1/digest", request)
		handler.HashHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"digest":"deadbeef","algorithm":"hmac-sha256"}`, w.Body.String())
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestDigestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/digest", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.HashHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_UnknownAlgorithm", func(t *testing.T) {
		handler, _ := setupTestDigestHandler(t)

		request := dto.HashRequest{Input: "hello", Algorithm: "crc32"}
		c, w := createTestContext(http.MethodPost, "/v1/digest", request)
		handler.HashHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response.Error)
	})

	t.Run("Error_InvalidKeySize", func(t *testing.T) {
		handler, mockUseCase := setupTestDigestHandler(t)

		mockUseCase.EXPECT().
			Hash(mock.Anything, "hello", digestDomain.MACTripleDES, []byte("key")).
			Return("", digestDomain.ErrInvalidKeySize).
			Once()

		request := dto.HashRequest{Input: "hello", Algorithm: "mac-tripledes", Key: "a2V5"}
		c, w := createTestContext(http.MethodPost, "/v1/digest", request)
		handler.HashHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response.Error)
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestDigestHandler(t)

		mockUseCase.EXPECT().
			Hash(mock.Anything, "hello", digestDomain.SHA256, []byte(nil)).
			Return("", errors.New("boom")).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/digest", dto.HashRequest{Input: "hello"})
		handler.HashHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
