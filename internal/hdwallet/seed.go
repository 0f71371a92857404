package hdwallet

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Seed is the 64-byte BIP39 seed of a mnemonic and passphrase.
type Seed [SeedSize]byte

// NewSeed stretches a mnemonic into a seed.
// BIP39: seed = PBKDF2(NFKD(mnemonic), "mnemonic" + NFKD(passphrase), 2048, 64, SHA512)
//
// The mnemonic is not checked against a word list. An empty passphrase is valid.
func NewSeed(mnemonic string, passphrase string) Seed {
	password := norm.NFKD.String(mnemonic)
	salt := seedSaltPrefix + norm.NFKD.String(passphrase)

	key := pbkdf2.Key([]byte(password), []byte(salt), seedRounds, SeedSize, sha512.New)

	var seed Seed
	copy(seed[:], key)
	return seed
}

// Bytes returns a copy of the seed.
func (s Seed) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, s[:])
	return out
}
