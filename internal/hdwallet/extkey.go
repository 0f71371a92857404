package hdwallet

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

const (
	// serializedKeyLen is version(4) || depth(1) || fingerprint(4) || child(4) || chain code(32) || key(33).
	serializedKeyLen = 78
	checksumLen      = 4
)

// ExtendedKey is the BIP32 serialization tuple of a node.
// Key holds 0x00 || private key for private keys, or the compressed public key.
type ExtendedKey struct {
	Version           [4]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildIndex        uint32
	ChainCode         [32]byte
	Key               [33]byte
}

// NewExtendedKey builds an extended key from its parts. key is either a 32-byte
// private key or a 33-byte compressed public key.
func NewExtendedKey(version [4]byte, key []byte, chainCode []byte, depth uint8, parentFingerprint [4]byte, childIndex uint32) (*ExtendedKey, error) {
	if len(chainCode) != chainCodeLen {
		return nil, errors.New("chain code must be 32 bytes")
	}

	ek := &ExtendedKey{
		Version:           version,
		Depth:             depth,
		ParentFingerprint: parentFingerprint,
		ChildIndex:        childIndex,
	}
	copy(ek.ChainCode[:], chainCode)

	switch len(key) {
	case privateKeyLen:
		if _, err := parseScalar(key); err != nil {
			return nil, err
		}
		copy(ek.Key[1:], key)
	case compressedPubKeyLen:
		if _, err := secp256k1.ParsePubKey(key); err != nil {
			return nil, errors.Wrap(ErrInvalidKeyData, "public key must be a compressed secp256k1 point")
		}
		copy(ek.Key[:], key)
	default:
		return nil, errors.Wrapf(ErrInvalidKeyData, "unexpected key length %d", len(key))
	}

	return ek, nil
}

// ExtendedPrivateKey returns the xprv tuple of the node.
func (n *Node) ExtendedPrivateKey(params Params) *ExtendedKey {
	ek := &ExtendedKey{
		Version:           params.HDPrivateKeyID,
		Depth:             n.depth,
		ParentFingerprint: n.parentFingerprint,
		ChildIndex:        n.childIndex,
		ChainCode:         n.chainCode,
	}
	copy(ek.Key[1:], n.key[:])
	return ek
}

// ExtendedPublicKey returns the xpub tuple of the node.
func (n *Node) ExtendedPublicKey(params Params) *ExtendedKey {
	ek := &ExtendedKey{
		Version:           params.HDPublicKeyID,
		Depth:             n.depth,
		ParentFingerprint: n.parentFingerprint,
		ChildIndex:        n.childIndex,
		ChainCode:         n.chainCode,
	}
	copy(ek.Key[:], n.PublicKey())
	return ek
}

// IsPrivate reports whether the key data is 0x00 || private key.
func (k *ExtendedKey) IsPrivate() bool {
	return k.Key[0] == 0x00
}

// PrivateKey returns the 32-byte private key of a private extended key.
func (k *ExtendedKey) PrivateKey() ([]byte, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}

	out := make([]byte, privateKeyLen)
	copy(out, k.Key[1:])
	return out, nil
}

// PublicKey returns the compressed public key, computing it for private keys.
func (k *ExtendedKey) PublicKey() ([]byte, error) {
	if !k.IsPrivate() {
		out := make([]byte, compressedPubKeyLen)
		copy(out, k.Key[:])
		return out, nil
	}

	return CompressedPublicKey(k.Key[1:])
}

// Neuter returns the public counterpart of a private extended key using the public
// version of params. Public keys are returned unchanged.
func (k *ExtendedKey) Neuter(params Params) (*ExtendedKey, error) {
	if !k.IsPrivate() {
		neutered := *k
		return &neutered, nil
	}

	pub, err := k.PublicKey()
	if err != nil {
		return nil, err
	}

	neutered := *k
	neutered.Version = params.HDPublicKeyID
	copy(neutered.Key[:], pub)
	return &neutered, nil
}

// Serialize returns the 78-byte payload without checksum.
func (k *ExtendedKey) Serialize() []byte {
	buf := make([]byte, 0, serializedKeyLen)
	buf = append(buf, k.Version[:]...)
	buf = append(buf, k.Depth)
	buf = append(buf, k.ParentFingerprint[:]...)
	buf = binary.BigEndian.AppendUint32(buf, k.ChildIndex)
	buf = append(buf, k.ChainCode[:]...)
	buf = append(buf, k.Key[:]...)
	return buf
}

// String returns the base58 encoding of the payload followed by the first 4 bytes
// of its double SHA-256.
func (k *ExtendedKey) String() string {
	payload := k.Serialize()
	payload = append(payload, chainhash.DoubleHashB(payload)[:checksumLen]...)
	return base58.Encode(payload)
}

// ParseExtendedKey decodes a base58 xprv/xpub (or tprv/tpub) string.
func ParseExtendedKey(encoded string) (*ExtendedKey, error) {
	decoded := base58.Decode(encoded)
	if len(decoded) != serializedKeyLen+checksumLen {
		return nil, ErrInvalidKeyLength
	}

	payload, checksum := decoded[:serializedKeyLen], decoded[serializedKeyLen:]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:checksumLen], checksum) {
		return nil, ErrInvalidChecksum
	}

	ek := &ExtendedKey{}
	copy(ek.Version[:], payload[0:4])
	ek.Depth = payload[4]
	copy(ek.ParentFingerprint[:], payload[5:9])
	ek.ChildIndex = binary.BigEndian.Uint32(payload[9:13])
	copy(ek.ChainCode[:], payload[13:45])
	copy(ek.Key[:], payload[45:78])

	private, ok := versionKind(ek.Version)
	if !ok {
		return nil, ErrUnknownVersion
	}

	if private != ek.IsPrivate() {
		return nil, errors.Wrap(ErrInvalidKeyData, "key data does not match version")
	}

	if private {
		if _, err := parseScalar(ek.Key[1:]); err != nil {
			return nil, errors.Wrap(ErrInvalidKeyData, err.Error())
		}
	} else if _, err := secp256k1.ParsePubKey(ek.Key[:]); err != nil {
		return nil, errors.Wrap(ErrInvalidKeyData, err.Error())
	}

	if ek.Depth == 0 && (ek.ParentFingerprint != [4]byte{} || ek.ChildIndex != 0) {
		return nil, errors.Wrap(ErrInvalidKeyData, "master key with non-zero parent fingerprint or index")
	}

	return ek, nil
}

// versionKind reports whether version is a known private (true) or public (false) id.
func versionKind(version [4]byte) (private bool, known bool) {
	for _, params := range knownParams() {
		switch version {
		case params.HDPrivateKeyID:
			return true, true
		case params.HDPublicKeyID:
			return false, true
		}
	}

	return false, false
}
