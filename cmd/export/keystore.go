package export

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/export"
	"github/chapool/hdderive/internal/keystore"
	"github/chapool/hdderive/internal/util/command"
)

const (
	dirFlag   = "dir"
	lightFlag = "light"

	minPasswordLength = 8
)

func newKeystore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Write one encrypted keystore v3 file per account",
		Long: `Encrypts every derived private key into an Ethereum keystore v3 file named
UTC--<timestamp>--<address>. The password is read from $HDD_KEYSTORE_PASSWORD
or prompted for.`,
		Args: cobra.NoArgs,
		RunE: runKeystore,
	}

	addBatchFlags(cmd)
	cmd.Flags().String(dirFlag, "", "target directory (default $HDD_EXPORT_KEYSTORE_DIR or keystore)")
	cmd.Flags().Bool(lightFlag, false, "use light scrypt parameters, faster but weaker")

	return cmd
}

func runKeystore(cmd *cobra.Command, _ []string) error {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(dirFlag) {
		cfg.Export.KeystoreDir, _ = cmd.Flags().GetString(dirFlag)
	}
	if cmd.Flags().Changed(lightFlag) {
		cfg.Export.LightScrypt, _ = cmd.Flags().GetBool(lightFlag)
	}

	ctx := log.Logger.WithContext(cmd.Context())
	secrets := command.NewSecretReader(os.Stdin, cmd.ErrOrStderr())

	return command.WithDeriver(ctx, cfg, secrets, func(ctx context.Context, d *command.Deriver) error {
		password := d.Config.Secrets.KeystorePassword
		if password == "" {
			password, err = secrets.ReadConfirmedSecret(
				fmt.Sprintf("Enter keystore password (min %d characters): ", minPasswordLength), minPasswordLength)
			if err != nil {
				return errors.Wrap(err, "failed to read keystore password")
			}
		}

		params := keystore.DefaultScryptParams()
		if d.Config.Export.LightScrypt {
			params = keystore.LightScryptParams()
		}

		exporter := export.NewKeystoreDir(d.Config.Export.KeystoreDir, password, params)
		if err := exportBatch(ctx, cmd, d, exporter); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "keystore files written to %s\n", d.Config.Export.KeystoreDir)
		return nil
	})
}
