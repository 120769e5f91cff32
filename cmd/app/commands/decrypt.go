package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cipherDomain "github.com/allisson/passcrypt/internal/cipher/domain"
	"github.com/allisson/passcrypt/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/passcrypt/internal/cipher/usecase"
)

// RunDecrypt decrypts a base64 ciphertext under password and writes the plaintext.
// A wrong password or a tampered ciphertext is reported as an error, never as output.
func RunDecrypt(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	logger *slog.Logger,
	writer io.Writer,
	schemeStr string,
	ciphertext string,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	scheme, err := cipherDomain.ParseScheme(schemeStr)
	if err != nil {
		return err
	}

	logger.Debug("decrypting text", slog.String("scheme", string(scheme)))

	plaintext, err := useCase.Decrypt(ctx, scheme, ciphertext, password)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.MapDecryptResponse(plaintext, scheme))
	}

	_, err = fmt.Fprintln(writer, plaintext)
	return err
}
