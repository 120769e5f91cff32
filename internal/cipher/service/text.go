package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
)

// decodeText converts decrypted bytes to a string, replacing invalid UTF-8 sequences with
// U+FFFD, and zeroes the source buffer.
func decodeText(b []byte) string {
	defer cipherDomain.Zero(b)
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// decodeBase64 decodes standard base64, skipping spaces, tabs and line breaks anywhere in s.
func decodeBase64(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)

	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cipherDomain.ErrMalformedCiphertext, err)
	}
	return raw, nil
}
