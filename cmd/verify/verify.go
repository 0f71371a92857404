package verify

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/util/command"
)

const (
	indexFlag   = "index"
	addressFlag = "address"
)

var ErrAddressMismatch = errors.New("derived address does not match")

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the mnemonic derives an expected address",
		Long: `Derives the account at --index and compares its address with --address.
Exits non-zero if the addresses differ, e.g. because of a wrong passphrase.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	cmd.Flags().Uint32(indexFlag, 0, "account index to derive")
	cmd.Flags().String(addressFlag, "", "expected address")
	_ = cmd.MarkFlagRequired(addressFlag)

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	index, _ := cmd.Flags().GetUint32(indexFlag)
	expected, _ := cmd.Flags().GetString(addressFlag)

	ctx := log.Logger.WithContext(cmd.Context())
	secrets := command.NewSecretReader(os.Stdin, cmd.ErrOrStderr())

	return command.WithDeriver(ctx, cfg, secrets, func(ctx context.Context, d *command.Deriver) error {
		valid, err := account.VerifyAddress(ctx, d.Accounts, d.Request(0, 1), index, expected)
		if err != nil {
			return err
		}

		if !valid {
			return errors.Wrapf(ErrAddressMismatch, "account %d", index)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "account %d matches %s\n", index, expected)
		return nil
	})
}
