package export

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/export"
	"github/chapool/hdderive/internal/util/command"
)

const (
	fileFlag           = "file"
	includeAddressFlag = "include-address"
)

func newEnv() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Append ACCOUNT_<index>_PRIVATE_KEY lines to a dotenv file",
		Args:  cobra.NoArgs,
		RunE:  runEnv,
	}

	addBatchFlags(cmd)
	cmd.Flags().String(fileFlag, "", "dotenv file to append to (default $HDD_EXPORT_ENV_FILE or .env)")
	cmd.Flags().Bool(includeAddressFlag, false, "also write ACCOUNT_<index>_ADDRESS")

	return cmd
}

func runEnv(cmd *cobra.Command, _ []string) error {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(fileFlag) {
		cfg.Export.EnvFile, _ = cmd.Flags().GetString(fileFlag)
	}
	if cmd.Flags().Changed(includeAddressFlag) {
		cfg.Export.IncludeAddress, _ = cmd.Flags().GetBool(includeAddressFlag)
	}

	ctx := log.Logger.WithContext(cmd.Context())
	secrets := command.NewSecretReader(os.Stdin, cmd.ErrOrStderr())

	return command.WithDeriver(ctx, cfg, secrets, func(ctx context.Context, d *command.Deriver) error {
		exporter := export.NewEnvFile(d.Config.Export.EnvFile, d.Config.Export.IncludeAddress)
		if err := exportBatch(ctx, cmd, d, exporter); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "accounts written to %s\n", d.Config.Export.EnvFile)
		return nil
	})
}
