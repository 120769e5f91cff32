package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passcrypt/cmd/app/commands"
	"github.com/allisson/passcrypt/internal/app"
	"github.com/allisson/passcrypt/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func passwordFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "Password (prompted for when omitted; an empty value is a valid password)",
		Sources: cli.EnvVars("PASSCRYPT_PASSWORD"),
	}
}

// newCLIContainer builds a container for a single command invocation, without the
// metrics exporter and digest cache that only the server uses.
func newCLIContainer() (*config.Config, *app.Container) {
	cfg := config.Load()
	cfg.MetricsEnabled = false
	cfg.DigestCacheEnabled = false
	return cfg, app.NewContainer(cfg)
}

// stdinArg is the positional argument that reads the value from standard input.
const stdinArg = "-"

// resolvePassword returns the --password flag value, or prompts for it when the flag is unset.
// Prompting is refused when the input was already read from stdin.
func resolvePassword(cmd *cli.Command, inputFromStdin bool) (string, error) {
	if cmd.IsSet("password") {
		return cmd.String("password"), nil
	}
	if inputFromStdin {
		return "", errors.New("--password is required when the input is read from stdin")
	}
	return commands.ReadPassword(commands.DefaultIO(), "Password: ")
}

// singleArg returns the only positional argument.
//
// The argument "-" reads the value from stdin, dropping one trailing line break. This is the
// way to pass an empty value, since the command line parser discards empty arguments.
func singleArg(cmd *cli.Command, name string, stdin io.Reader) (value string, fromStdin bool, err error) {
	if cmd.Args().Len() != 1 {
		return "", false, fmt.Errorf(
			"expected exactly one %s argument, got %d (use %q to read it from stdin)",
			name,
			cmd.Args().Len(),
			stdinArg,
		)
	}

	arg := cmd.Args().First()
	if arg != stdinArg {
		return arg, false, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", true, fmt.Errorf("failed to read %s from stdin: %w", name, err)
	}
	value = strings.TrimSuffix(string(data), "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, true, nil
}

func getCipherCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encrypt",
			Usage:     "Encrypt text under a password",
			ArgsUsage: "<plaintext | ->",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "scheme",
					Aliases: []string{"s"},
					Usage:   "Cipher scheme: 'salted' or 'legacy' (defaults to DEFAULT_CIPHER_SCHEME)",
				},
				passwordFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				plaintext, fromStdin, err := singleArg(cmd, "plaintext", commands.DefaultIO().Reader)
				if err != nil {
					return err
				}

				cfg, container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				scheme := cmd.String("scheme")
				if scheme == "" {
					scheme = cfg.DefaultCipherScheme
				}

				password, err := resolvePassword(cmd, fromStdin)
				if err != nil {
					return err
				}

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					scheme,
					plaintext,
					password,
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a base64 ciphertext under a password",
			ArgsUsage: "<ciphertext | ->",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "scheme",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Cipher scheme the ciphertext was produced with: 'salted' or 'legacy'",
				},
				passwordFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				ciphertext, fromStdin, err := singleArg(cmd, "ciphertext", commands.DefaultIO().Reader)
				if err != nil {
					return err
				}

				_, container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				password, err := resolvePassword(cmd, fromStdin)
				if err != nil {
					return err
				}

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("scheme"),
					ciphertext,
					password,
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "hash",
			Usage:     "Compute the digest of text",
			ArgsUsage: "<input | ->",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "sha256",
					Usage:   "Digest algorithm (md5, sha1, sha256, sha384, sha512, ripemd160, hmac-*, mac-tripledes)",
				},
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Base64-encoded MAC key for keyed algorithms",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				input, _, err := singleArg(cmd, "input", commands.DefaultIO().Reader)
				if err != nil {
					return err
				}

				_, container := newCLIContainer()
				defer func() { _ = container.Shutdown(ctx) }()

				digestUseCase, err := container.DigestUseCase()
				if err != nil {
					return err
				}

				return commands.RunHash(
					ctx,
					digestUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					input,
					cmd.String("algorithm"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
	}
}
