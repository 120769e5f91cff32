package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// encryptCBC encrypts plaintext with AES-CBC and PKCS#7 padding.
// The output is always a non-empty multiple of the block size.
func encryptCBC(material cipherDomain.DerivedKeyMaterial, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(material.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	defer cipherDomain.Zero(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, material.IV).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// decryptCBC decrypts AES-CBC ciphertext and strips PKCS#7 padding.
// Empty input, partial blocks and invalid padding all return ErrDecryptionFailed.
func decryptCBC(material cipherDomain.DerivedKeyMaterial, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(material.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, cipherDomain.ErrDecryptionFailed
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, material.IV).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext, block.BlockSize())
	if !ok {
		cipherDomain.Zero(plaintext)
		return nil, cipherDomain.ErrDecryptionFailed
	}
	return unpadded, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}

	valid := 1
	for _, b := range data[len(data)-n:] {
		valid &= subtle.ConstantTimeByteEq(b, byte(n))
	}
	if valid != 1 {
		return nil, false
	}
	return data[:len(data)-n], true
}
