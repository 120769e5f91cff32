package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
	"github.com/allisson/passcrypt/internal/digest/http/dto"
	digestUseCase "github.com/allisson/passcrypt/internal/digest/usecase"
)

// RunHash writes the lowercase hex digest of input.
// keyB64 is an optional standard base64 MAC key, ignored by unkeyed algorithms.
func RunHash(
	ctx context.Context,
	useCase digestUseCase.DigestUseCase,
	logger *slog.Logger,
	writer io.Writer,
	input string,
	algorithmStr string,
	keyB64 string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	alg, err := digestDomain.ParseAlgorithm(algorithmStr)
	if err != nil {
		return err
	}

	var key []byte
	if keyB64 != "" {
		key, err = base64.StdEncoding.DecodeString(keyB64)
		if err != nil {
			return fmt.Errorf("invalid key: must be base64-encoded: %w", err)
		}
	}

	logger.Debug("computing digest",
		slog.String("algorithm", string(alg)),
		slog.Bool("keyed", len(key) > 0),
	)

	digest, err := useCase.Hash(ctx, input, alg, key)
	if err != nil {
		return fmt.Errorf("failed to compute digest: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.MapHashResponse(digest, alg))
	}

	_, err = fmt.Fprintln(writer, digest)
	return err
}
