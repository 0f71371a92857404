package derive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/util/command"
)

const (
	countFlag = "count"
	startFlag = "start"
	jsonFlag  = "json"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a batch of accounts and print address and private key",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().Int(countFlag, 1, "number of accounts to derive")
	cmd.Flags().Uint32(startFlag, 0, "index of the first account")
	cmd.Flags().Bool(jsonFlag, false, "print accounts as JSON")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt(countFlag)
	start, _ := cmd.Flags().GetUint32(startFlag)
	asJSON, _ := cmd.Flags().GetBool(jsonFlag)

	ctx := log.Logger.WithContext(cmd.Context())
	secrets := command.NewSecretReader(os.Stdin, cmd.ErrOrStderr())

	return command.WithDeriver(ctx, cfg, secrets, func(ctx context.Context, d *command.Deriver) error {
		accounts, err := d.Accounts.Generate(ctx, d.Request(start, count))
		if err != nil {
			return errors.Wrap(err, "failed to derive accounts")
		}

		if asJSON {
			return PrintJSON(cmd.OutOrStdout(), accounts)
		}

		return PrintTable(cmd.OutOrStdout(), accounts)
	})
}

// PrintTable writes one tab-aligned line per account.
func PrintTable(w io.Writer, accounts []account.Account) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // column padding

	fmt.Fprintln(tw, "INDEX\tPATH\tADDRESS\tPRIVATE KEY")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", acc.Index, acc.Path, acc.Address, acc.PrivateKeyHex)
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to print accounts")
	}

	return nil
}

func PrintJSON(w io.Writer, accounts []account.Account) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(accounts); err != nil {
		return errors.Wrap(err, "failed to encode accounts")
	}

	return nil
}
