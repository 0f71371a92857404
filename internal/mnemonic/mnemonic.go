package mnemonic

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("mnemonic is not a valid BIP39 English phrase")

// Normalize collapses runs of whitespace to single spaces. The seed is derived
// from the exact phrase, so this is only applied where the caller opts in.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}

// Validate checks word count, wordlist membership and checksum.
func Validate(phrase string) error {
	if !bip39.IsMnemonicValid(Normalize(phrase)) {
		return ErrInvalidMnemonic
	}

	return nil
}
