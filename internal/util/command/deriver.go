package command

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/config"
	"github/chapool/hdderive/internal/metrics"
	"github/chapool/hdderive/internal/mnemonic"
	"github/chapool/hdderive/internal/util"
)

// Deriver bundles what a command needs to derive accounts for one run.
type Deriver struct {
	Config   config.Config
	Accounts account.Service
	Metrics  *metrics.Metrics
}

// Request returns the batch request for count accounts starting at start.
func (d *Deriver) Request(start uint32, count int) account.Request {
	return account.Request{
		Mnemonic:     d.Config.Secrets.Mnemonic,
		Passphrase:   d.Config.Secrets.Passphrase,
		PathTemplate: d.Config.Derivation.PathTemplate,
		Start:        start,
		Count:        count,
	}
}

// WithDeriver resolves the secrets, runs f and writes the metrics textfile if one is configured.
// Missing secrets are read from secrets, which may be nil when prompting is not possible.
func WithDeriver(ctx context.Context, cfg config.Config, secrets *SecretReader, f func(ctx context.Context, d *Deriver) error) error {
	log := util.LogFromContext(ctx)

	if cfg.Secrets.Mnemonic == "" {
		if secrets == nil {
			return errors.New("no mnemonic given")
		}

		phrase, err := secrets.ReadSecret("Enter mnemonic: ")
		if err != nil {
			return errors.Wrap(err, "failed to read mnemonic")
		}
		cfg.Secrets.Mnemonic = phrase

		passphrase, err := secrets.ReadOptionalSecret("Enter passphrase (empty for none): ")
		if err != nil {
			return errors.Wrap(err, "failed to read passphrase")
		}
		cfg.Secrets.Passphrase = passphrase
	}

	if cfg.Derivation.ValidateMnemonic {
		if err := mnemonic.Validate(cfg.Secrets.Mnemonic); err != nil {
			return err
		}
	}

	m := metrics.New()
	d := &Deriver{
		Config:   cfg,
		Accounts: account.NewService(cfg.Derivation.Workers, m),
		Metrics:  m,
	}

	resultErr := f(ctx, d)

	if cfg.Metrics.TextfilePath != "" {
		if err := m.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Error().Err(err).Str("path", cfg.Metrics.TextfilePath).Msg("Failed to write metrics textfile")
			if resultErr == nil {
				resultErr = err
			}
		}
	}

	return resultErr
}
