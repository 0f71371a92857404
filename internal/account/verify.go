package account

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/hdderive/internal/address"
	"github/chapool/hdderive/internal/util"
)

// VerifyAddress derives the account at index and compares its address with expected.
// This is used to confirm that a mnemonic and passphrase belong to a known wallet
// before its accounts are exported.
func VerifyAddress(ctx context.Context, svc Service, req Request, index uint32, expected string) (bool, error) {
	log := util.LogFromContext(ctx).With().Str("component", "address_verification").Logger()

	if !address.IsChecksumValid(expected) {
		log.Warn().Str("expected", expected).Msg("Expected address has no valid EIP-55 checksum, comparing case-insensitively")
	}

	derived, err := svc.Derive(ctx, req, index)
	if err != nil {
		log.Error().Err(err).Msg("Failed to derive verification address")
		return false, errors.Wrap(err, "failed to derive verification address")
	}

	if !address.Equal(derived.Address, expected) {
		log.Warn().
			Str("derived", derived.Address).
			Str("expected", expected).
			Uint32("index", index).
			Msg("Address verification failed: addresses do not match")
		return false, nil
	}

	log.Info().Uint32("index", index).Msg("Address verification successful")
	return true, nil
}
