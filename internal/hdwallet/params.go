package hdwallet

const (
	// HardenedKeyStart is the index offset of the first hardened child (2^31).
	HardenedKeyStart uint32 = 0x80000000

	// SeedSize is the length of a BIP39 seed in bytes (512 bits).
	SeedSize = 64

	// MinSeedBytes and MaxSeedBytes bound the seed accepted by NewMaster (BIP32: 128 to 512 bits).
	MinSeedBytes = 16
	MaxSeedBytes = 64

	// DefaultPathTemplate is the BIP44 Ethereum account path; the account index is appended.
	DefaultPathTemplate = "m/44'/60'/0'/0/"

	seedRounds     = 2048
	seedSaltPrefix = "mnemonic"
	masterHMACKey  = "Bitcoin seed"

	// maxDepth is the deepest node an extended key can describe (depth is a single byte).
	maxDepth = 255
)

// Params groups the version bytes used when serializing extended keys.
type Params struct {
	Name           string
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// MainNetParams returns the xprv/xpub version bytes.
func MainNetParams() Params {
	return Params{
		Name:           "mainnet",
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub
	}
}

// TestNetParams returns the tprv/tpub version bytes.
func TestNetParams() Params {
	return Params{
		Name:           "testnet",
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // tpub
	}
}

// knownParams lists the networks ParseExtendedKey recognizes.
func knownParams() []Params {
	return []Params{MainNetParams(), TestNetParams()}
}
