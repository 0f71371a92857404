package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/cmd/derive"
	"github/chapool/hdderive/cmd/export"
	"github/chapool/hdderive/cmd/verify"
	"github/chapool/hdderive/cmd/xkey"
	"github/chapool/hdderive/internal/config"
	"github/chapool/hdderive/internal/util/command"
)

const dotEnvFile = ".env"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "hdderive",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Derives Ethereum accounts from a BIP39 mnemonic along BIP32/BIP44 paths.
Configuration is read from HDD_* environment variables and a local .env file,
flags take precedence.`, config.ModuleName),
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := config.LoadDotEnv(dotEnvFile); err != nil {
			return err
		}

		setupLogger(config.DefaultConfigFromEnv().Logger)
		return nil
	},
}

func setupLogger(cfg config.Logger) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.Level)

	// Logs go to stderr, stdout is reserved for results
	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	command.AddDerivationFlags(rootCmd)

	// attach the subcommands
	rootCmd.AddCommand(
		derive.New(),
		export.New(),
		verify.New(),
		xkey.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
