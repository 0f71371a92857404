package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/config"
)

const (
	MnemonicFlag         = "mnemonic"
	PassphraseFlag       = "passphrase"
	PathFlag             = "path"
	WorkersFlag          = "workers"
	ValidateMnemonicFlag = "validate-mnemonic"
	MetricsTextfileFlag  = "metrics-textfile"
	TestnetFlag          = "testnet"
)

// AddDerivationFlags registers the flags shared by all derivation commands as persistent flags of cmd.
// Defaults are empty, unset flags keep the value from the environment.
func AddDerivationFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(MnemonicFlag, "", "BIP39 mnemonic (default $HDD_MNEMONIC, prompted when empty)")
	flags.String(PassphraseFlag, "", "BIP39 passphrase (default $HDD_PASSPHRASE)")
	flags.String(PathFlag, "", "derivation path template, a trailing slash appends the account index (default $HDD_DERIVATION_PATH_TEMPLATE or m/44'/60'/0'/0/)")
	flags.Int(WorkersFlag, 0, "number of parallel derivation workers (default $HDD_DERIVATION_WORKERS or 1)")
	flags.Bool(ValidateMnemonicFlag, false, "reject mnemonics with unknown words or a bad checksum")
	flags.String(MetricsTextfileFlag, "", "write prometheus metrics to this file at exit")
	flags.Bool(TestnetFlag, false, "use testnet version bytes for extended keys")
}

// ConfigFromFlags returns the environment config with every explicitly set derivation flag applied on top.
func ConfigFromFlags(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfigFromEnv()
	flags := cmd.Flags()

	var err error
	if flags.Changed(MnemonicFlag) {
		if cfg.Secrets.Mnemonic, err = flags.GetString(MnemonicFlag); err != nil {
			return cfg, errors.Wrapf(err, "failed to read --%s", MnemonicFlag)
		}
	}

	if flags.Changed(PassphraseFlag) {
		if cfg.Secrets.Passphrase, err = flags.GetString(PassphraseFlag); err != nil {
			return cfg, errors.Wrapf(err, "failed to read --%s", PassphraseFlag)
		}
	}

	if flags.Changed(PathFlag) {
		if cfg.Derivation.PathTemplate, err = flags.GetString(PathFlag); err != nil {
			return cfg, errors.Wrapf(err, "failed to read --%s", PathFlag)
		}
	}

	if flags.Changed(WorkersFlag) {
		if cfg.Derivation.Workers, err = flags.GetInt(WorkersFlag); err != nil {
			return cfg, errors.Wrapf(err, "failed to read --%s", WorkersFlag)
		}
	}

	if flags.Changed(ValidateMnemonicFlag) {
		if cfg.Derivation.ValidateMnemonic, err = flags.GetBool(ValidateMnemonicFlag); err != nil {
			return cfg, errors.Wrapf(err, "failed to read --%s", ValidateMnemonicFlag)
		}
	}

	if flags.Changed(MetricsTextfileFlag) {
		if cfg.Metrics.TextfilePath, err = flags.GetString(MetricsTextfileFlag); err != nil {
			return cfg, errors.Wrapf(err, "failed to read --%s", MetricsTextfileFlag)
		}
	}

	return cfg, nil
}
