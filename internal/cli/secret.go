package cli

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/secrets"
)

// secretKeys maps the names accepted on the command line to keyring keys.
var secretKeys = map[string]string{
	"password": secrets.PasswordHash,
	"token":    secrets.TokenSecret,
}

func secretKey(name string) (string, error) {
	key, ok := secretKeys[name]
	if !ok {
		return "", fmt.Errorf("unknown secret %q: must be password or token", name)
	}
	return key, nil
}

// NewSecretCommand creates the secret command group.
func NewSecretCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Store the shared password and token secret in the OS keyring",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <password|token> [value]",
		Short: "Store a secret",
		Long: `Store a secret in the OS keyring.

The password is stored as a bcrypt hash. It is read from stdin when no value
is given. A token secret is generated when no value is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretKey(args[0])
			if err != nil {
				return err
			}

			value, err := secretValue(key, args[1:], cmd)
			if err != nil {
				return err
			}
			if err := secrets.Set(key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s in the keyring\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear <password|token>",
		Short: "Remove a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretKey(args[0])
			if err != nil {
				return err
			}
			if err := secrets.Delete(key); err != nil && !errors.Is(err, secrets.ErrNotFound) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func secretValue(key string, args []string, cmd *cobra.Command) (string, error) {
	if key == secrets.TokenSecret {
		if len(args) > 0 {
			return args[0], nil
		}
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		return hex.EncodeToString(buf), nil
	}

	password, err := readValue(args, cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	if auth.IsBcryptHash(password) {
		return password, nil
	}
	return auth.HashPassword(password)
}

// NewHashPasswordCommand creates the hash-password command.
func NewHashPasswordCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Print the bcrypt hash of a password, for auth.password_hash or
WEDPLAN_PASSWORD_HASH. The password is read from stdin when not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readValue(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
