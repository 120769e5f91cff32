package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptDecrypt(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ciphertext := Encrypt("Hello World", "123456@123")
		assert.Equal(t, "VVDN3z76lqcl4DW8j4rxZA==", ciphertext)
		assert.Equal(t, "Hello World", Decrypt(ciphertext, "123456@123"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Encrypt("", "pw"))
		assert.Empty(t, Decrypt("", "pw"))
	})

	t.Run("malformed input yields empty", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Empty(t, Decrypt("not-base64!!", "pw"))
		})
	})

	t.Run("trailing newline preserves plaintext", func(t *testing.T) {
		ciphertext := Encrypt("Hello World", "pw")
		assert.Equal(t, "Hello World", Decrypt(ciphertext+"\n", "pw"))
	})

	t.Run("trailing garbage yields empty", func(t *testing.T) {
		ciphertext := Encrypt("Hello World", "pw")
		assert.Empty(t, Decrypt(ciphertext+"asd", "pw"))
	})
}

func TestAesEncryptDecrypt(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ciphertext := AesEncrypt("Hello World", "123456@123")
		assert.Len(t, ciphertext, 64)
		assert.Equal(t, "Hello World", AesDecrypt(ciphertext, "123456@123"))
	})

	t.Run("round trip empty password", func(t *testing.T) {
		ciphertext := AesEncrypt("Hello World", "")
		assert.NotEmpty(t, ciphertext)
		assert.Equal(t, "Hello World", AesDecrypt(ciphertext, ""))
	})

	t.Run("non deterministic", func(t *testing.T) {
		assert.NotEqual(t, AesEncrypt("Hello World", "pw"), AesEncrypt("Hello World", "pw"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, AesEncrypt("", "pw"))
		assert.Empty(t, AesDecrypt("", "pw"))
	})

	t.Run("wrong password never yields plaintext", func(t *testing.T) {
		ciphertext := AesEncrypt("Hello World", "right")
		assert.NotEqual(t, "Hello World", AesDecrypt(ciphertext, "wrong"))
	})

	t.Run("malformed input yields empty", func(t *testing.T) {
		assert.Empty(t, AesDecrypt("not-base64!!", "pw"))
	})

	t.Run("trailing garbage yields empty", func(t *testing.T) {
		ciphertext := AesEncrypt("Hello World", "pw")
		assert.Empty(t, AesDecrypt(ciphertext+"asd", "pw"))
	})
}
