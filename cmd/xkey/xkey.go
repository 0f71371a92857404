package xkey

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/address"
	"github/chapool/hdderive/internal/hdwallet"
	"github/chapool/hdderive/internal/util/command"
)

const masterPath = "m"

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "xkey",
		Short: "Print the extended keys of the node at --path",
		Long: `Prints the serialized extended private and public key (xprv/xpub, or tprv/tpub
with --testnet) of the node at --path, e.g. m/44'/60'/0'. A trailing slash is
ignored, so m/44'/60'/0'/0/ prints the parent of the accounts. Without --path the
master node is printed.`,
		Args: cobra.NoArgs,
		RunE: run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := command.ConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	path := masterPath
	if cmd.Flags().Changed(command.PathFlag) {
		// a template's trailing slash only marks where the account index goes
		path = strings.TrimSuffix(cfg.Derivation.PathTemplate, "/")
	}

	params := hdwallet.MainNetParams()
	if testnet, _ := cmd.Flags().GetBool(command.TestnetFlag); testnet {
		params = hdwallet.TestNetParams()
	}

	ctx := log.Logger.WithContext(cmd.Context())
	secrets := command.NewSecretReader(os.Stdin, cmd.ErrOrStderr())

	return command.WithDeriver(ctx, cfg, secrets, func(ctx context.Context, d *command.Deriver) error {
		node, err := d.Accounts.Node(ctx, d.Config.Secrets.Mnemonic, d.Config.Secrets.Passphrase, path)
		if err != nil {
			return err
		}

		addr, err := address.FromNode(node)
		if err != nil {
			return errors.Wrap(err, "failed to derive address")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "path:    %s\n", path)
		fmt.Fprintf(out, "xprv:    %s\n", node.ExtendedPrivateKey(params))
		fmt.Fprintf(out, "xpub:    %s\n", node.ExtendedPublicKey(params))
		fmt.Fprintf(out, "address: %s\n", addr)

		return nil
	})
}
