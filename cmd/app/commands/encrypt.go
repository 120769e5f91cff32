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

// RunEncrypt encrypts plaintext under password and writes the base64 ciphertext.
// Text output is the bare ciphertext so it can be piped; JSON output also names the scheme.
func RunEncrypt(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	logger *slog.Logger,
	writer io.Writer,
	schemeStr string,
	plaintext string,
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

	logger.Debug("encrypting text", slog.String("scheme", string(scheme)))

	ciphertext, err := useCase.Encrypt(ctx, scheme, plaintext, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.MapEncryptResponse(ciphertext, scheme))
	}

	_, err = fmt.Fprintln(writer, ciphertext)
	return err
}
