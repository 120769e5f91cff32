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

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	"github.com/allisson/passcrypt/internal/cipher/http/dto"
	"github.com/allisson/passcrypt/internal/cipher/usecase/mocks"
	"github.com/allisson/passcrypt/internal/httputil"
)

// setupTestCipherHandler creates a test cipher handler with mocked dependencies.
func setupTestCipherHandler(t *testing.T) (*CipherHandler, *mocks.MockCipherUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCipherUseCase := mocks.NewMockCipherUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewCipherHandler(mockCipherUseCase, cipherDomain.Salted, logger)

	return handler, mockCipherUseCase
}

func decodeErrorResponse(t *testing.T, body []byte) httputil.ErrorResponse {
	t.Helper()
	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response))
	return response
}

func TestCipherHandler_EncryptHandler(t *testing.T) {
	t.Run("Success_ExplicitScheme", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		request := dto.EncryptRequest{Scheme: "legacy", Plaintext: "Hello World", Password: "123456@123"}

		mockUseCase.EXPECT().
			Encrypt(mock.Anything, cipherDomain.Legacy, "Hello World", "123456@123").
			Return("VVDN3z76lqcl4DW8j4rxZA==", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/cipher/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.EncryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "VVDN3z76lqcl4DW8j4rxZA==", response.Ciphertext)
		assert.Equal(t, "legacy", response.Scheme)
	})

	t.Run("Success_DefaultScheme", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		request := dto.EncryptRequest{Plaintext: "Hello World", Password: "pw"}

		mockUseCase.EXPECT().
			Encrypt(mock.Anything, cipherDomain.Salted, "Hello World", "pw").
			Return("c2FsdGVk", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/cipher/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.EncryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "salted", response.Scheme)
	})

	t.Run("Success_EmptyPlaintext", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.EXPECT().
			Encrypt(mock.Anything, cipherDomain.Salted, "", "").
			Return("", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/cipher/encrypt", dto.EncryptRequest{})
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ciphertext":"","scheme":"salted"}`, w.Body.String())
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/cipher/encrypt", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeErrorResponse(t, w.Body.Bytes()).Error)
	})

	t.Run("Error_ValidationFailed_UnknownScheme", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		request := dto.EncryptRequest{Scheme: "rot13", Plaintext: "Hello World"}

		c, w := createTestContext(http.MethodPost, "/v1/cipher/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeErrorResponse(t, w.Body.Bytes()).Error)
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.EXPECT().
			Encrypt(mock.Anything, cipherDomain.Salted, "Hello World", "pw").
			Return("", errors.New("failed to generate salt")).
			Once()

		request := dto.EncryptRequest{Scheme: "salted", Plaintext: "Hello World", Password: "pw"}
		c, w := createTestContext(http.MethodPost, "/v1/cipher/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeErrorResponse(t, w.Body.Bytes()).Error)
	})
}

func TestCipherHandler_DecryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		request := dto.DecryptRequest{
			Scheme:     "legacy",
			Ciphertext: "VVDN3z76lqcl4DW8j4rxZA==",
			Password:   "123456@123",
		}

		mockUseCase.EXPECT().
			Decrypt(mock.Anything, cipherDomain.Legacy, "VVDN3z76lqcl4DW8j4rxZA==", "123456@123").
			Return("Hello World", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/cipher/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DecryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Hello World", response.Plaintext)
		assert.Equal(t, "legacy", response.Scheme)
	})

	t.Run("Error_DecryptionFailed", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		request := dto.DecryptRequest{Scheme: "salted", Ciphertext: "c2FsdGVk", Password: "wrong"}

		mockUseCase.EXPECT().
			Decrypt(mock.Anything, cipherDomain.Salted, "c2FsdGVk", "wrong").
			Return("", cipherDomain.ErrDecryptionFailed).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/cipher/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "invalid_input", decodeErrorResponse(t, w.Body.Bytes()).Error)
	})

	t.Run("Error_ValidationFailed_MissingScheme", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		request := dto.DecryptRequest{Ciphertext: "c2FsdGVk"}

		c, w := createTestContext(http.MethodPost, "/v1/cipher/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		response := decodeErrorResponse(t, w.Body.Bytes())
		assert.Equal(t, "validation_error", response.Error)
		assert.Contains(t, response.Message, "scheme")
	})

	t.Run("Error_ValidationFailed_InvalidBase64", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		request := dto.DecryptRequest{Scheme: "salted", Ciphertext: "not-base64!!"}

		c, w := createTestContext(http.MethodPost, "/v1/cipher/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeErrorResponse(t, w.Body.Bytes()).Error)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/cipher/decrypt", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("{")))

		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
