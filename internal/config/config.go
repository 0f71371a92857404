package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github/chapool/hdderive/internal/hdwallet"
)

const envPrefix = "HDD"

type Logger struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

type Derivation struct {
	PathTemplate     string
	Workers          int
	ValidateMnemonic bool
}

type Export struct {
	EnvFile        string
	IncludeAddress bool
	KeystoreDir    string
	LightScrypt    bool
}

type Metrics struct {
	// TextfilePath is written in node-exporter textfile format at the end of a run, empty disables it.
	TextfilePath string
}

// Secrets are never printed or marshalled.
type Secrets struct {
	Mnemonic         string `json:"-"`
	Passphrase       string `json:"-"`
	KeystorePassword string `json:"-"`
}

type Config struct {
	Logger     Logger
	Derivation Derivation
	Export     Export
	Metrics    Metrics
	Secrets    Secrets `json:"-"`
}

// DefaultConfigFromEnv returns the config built from HDD_* environment variables.
// Keys map to variables by upper-casing and replacing dots, e.g. derivation.workers
// is read from HDD_DERIVATION_WORKERS.
func DefaultConfigFromEnv() Config {
	v := newViper()

	level, err := zerolog.ParseLevel(v.GetString("logger.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return Config{
		Logger: Logger{
			Level:              level,
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
		Derivation: Derivation{
			PathTemplate:     v.GetString("derivation.path_template"),
			Workers:          v.GetInt("derivation.workers"),
			ValidateMnemonic: v.GetBool("derivation.validate_mnemonic"),
		},
		Export: Export{
			EnvFile:        v.GetString("export.env_file"),
			IncludeAddress: v.GetBool("export.include_address"),
			KeystoreDir:    v.GetString("export.keystore_dir"),
			LightScrypt:    v.GetBool("export.light_scrypt"),
		},
		Metrics: Metrics{
			TextfilePath: v.GetString("metrics.textfile_path"),
		},
		Secrets: Secrets{
			Mnemonic:         v.GetString("mnemonic"),
			Passphrase:       v.GetString("passphrase"),
			KeystorePassword: v.GetString("keystore_password"),
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logger.level", zerolog.InfoLevel.String())
	v.SetDefault("logger.pretty_print_console", true)
	v.SetDefault("derivation.path_template", hdwallet.DefaultPathTemplate)
	v.SetDefault("derivation.workers", 1)
	v.SetDefault("derivation.validate_mnemonic", false)
	v.SetDefault("export.env_file", ".env")
	v.SetDefault("export.include_address", false)
	v.SetDefault("export.keystore_dir", "keystore")
	v.SetDefault("export.light_scrypt", false)
	v.SetDefault("metrics.textfile_path", "")
	v.SetDefault("mnemonic", "")
	v.SetDefault("passphrase", "")
	v.SetDefault("keystore_password", "")

	return v
}
