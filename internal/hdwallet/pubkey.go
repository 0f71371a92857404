package hdwallet

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	privateKeyLen          = 32
	chainCodeLen           = 32
	compressedPubKeyLen    = 33
	uncompressedPubKeyLen  = 64
	serializedPrefixLength = 1
)

// parseScalar interprets a 32-byte big-endian private key as a scalar in [1, n-1].
func parseScalar(privateKey []byte) (*secp256k1.ModNScalar, error) {
	if len(privateKey) != privateKeyLen {
		return nil, &InvalidScalarError{Reason: "private key must be 32 bytes"}
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(privateKey); overflow {
		return nil, &InvalidScalarError{Reason: "private key is not below the curve order"}
	}

	if k.IsZero() {
		return nil, &InvalidScalarError{Reason: "private key is zero"}
	}

	return &k, nil
}

func publicKey(privateKey []byte) (*secp256k1.PublicKey, error) {
	k, err := parseScalar(privateKey)
	if err != nil {
		return nil, err
	}

	return secp256k1.NewPrivateKey(k).PubKey(), nil
}

// CompressedPublicKey returns Q = k*G as 0x02/0x03 || x (33 bytes).
func CompressedPublicKey(privateKey []byte) ([]byte, error) {
	pub, err := publicKey(privateKey)
	if err != nil {
		return nil, err
	}

	return pub.SerializeCompressed(), nil
}

// UncompressedPublicKey returns Q = k*G as x || y (64 bytes, no 0x04 prefix).
func UncompressedPublicKey(privateKey []byte) ([]byte, error) {
	pub, err := publicKey(privateKey)
	if err != nil {
		return nil, err
	}

	return pub.SerializeUncompressed()[serializedPrefixLength:], nil
}
