package service

// Fail-soft helpers.
//
// These functions never return an error: every failure, including a wrong password,
// malformed base64, a truncated frame or bad padding, yields "". A caller that needs to
// tell an empty plaintext apart from a failed decryption should use the codecs directly.

// Encrypt encrypts plaintext with the legacy fixed-salt format.
func Encrypt(plaintext, password string) string {
	return failSoft(NewLegacyCodec().Encrypt(plaintext, password))
}

// Decrypt decrypts a legacy fixed-salt ciphertext.
func Decrypt(ciphertext, password string) string {
	return failSoft(NewLegacyCodec().Decrypt(ciphertext, password))
}

// AesEncrypt encrypts plaintext with the random-salt format.
func AesEncrypt(plaintext, password string) string {
	return failSoft(NewSaltedCodec().Encrypt(plaintext, password))
}

// AesDecrypt decrypts a random-salt ciphertext.
func AesDecrypt(ciphertext, password string) string {
	return failSoft(NewSaltedCodec().Decrypt(ciphertext, password))
}

func failSoft(s string, err error) string {
	if err != nil {
		return ""
	}
	return s
}
