package address

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/hdderive/internal/hdwallet"
)

const (
	publicKeyLen = 64
	hexPrefix    = "0x"
)

// ErrInvalidPublicKey is returned for public keys that are not 64 bytes of x || y.
var ErrInvalidPublicKey = errors.New("public key must be 64 bytes (x || y)")

// FromPublicKey derives the EIP-55 checksummed address of an uncompressed public key.
// address = last 20 bytes of Keccak256(x || y)
func FromPublicKey(publicKey []byte) (string, error) {
	if len(publicKey) != publicKeyLen {
		return "", ErrInvalidPublicKey
	}

	hash := crypto.Keccak256(publicKey)
	return common.BytesToAddress(hash[len(hash)-common.AddressLength:]).Hex(), nil
}

// FromPrivateKey derives the EIP-55 checksummed address of a private key.
func FromPrivateKey(privateKey []byte) (string, error) {
	publicKey, err := hdwallet.UncompressedPublicKey(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to recover public key")
	}

	return FromPublicKey(publicKey)
}

// FromNode derives the address of a node's private key.
func FromNode(node *hdwallet.Node) (string, error) {
	return FromPublicKey(node.UncompressedPublicKey())
}

// IsChecksumValid reports whether s is a 0x-prefixed address whose letter casing
// matches its EIP-55 checksum. All-lowercase and all-uppercase addresses carry no
// checksum and are rejected.
func IsChecksumValid(s string) bool {
	if !strings.HasPrefix(s, hexPrefix) || !common.IsHexAddress(s) {
		return false
	}

	return common.HexToAddress(s).Hex() == s
}

// Equal compares two addresses ignoring letter case.
func Equal(a string, b string) bool {
	if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
		return false
	}

	return common.HexToAddress(a) == common.HexToAddress(b)
}
