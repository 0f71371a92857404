package hdwallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// Node is a private BIP32 node: a scalar, its chain code and its position in the tree.
// Nodes are never modified; Child returns a new one.
type Node struct {
	key               [32]byte
	chainCode         [32]byte
	depth             uint8
	parentFingerprint [4]byte
	childIndex        uint32
}

// NewMaster derives the master node from a seed.
// BIP32: I = HMAC-SHA512(Key = "Bitcoin seed", Data = seed), key = IL, chain code = IR
func NewMaster(seed []byte) (*Node, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLength
	}

	mac := hmac.New(sha512.New, []byte(masterHMACKey))
	mac.Write(seed)
	sum := mac.Sum(nil)

	node, err := NewNode(sum[:32], sum[32:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master node")
	}

	return node, nil
}

// NewNode creates a root node from a raw private key and chain code.
func NewNode(privateKey []byte, chainCode []byte) (*Node, error) {
	if _, err := parseScalar(privateKey); err != nil {
		return nil, err
	}

	if len(chainCode) != chainCodeLen {
		return nil, errors.New("chain code must be 32 bytes")
	}

	node := &Node{}
	copy(node.key[:], privateKey)
	copy(node.chainCode[:], chainCode)
	return node, nil
}

// Child derives the private child node at index. Indices >= HardenedKeyStart are hardened.
func (n *Node) Child(index uint32) (*Node, error) {
	if n.depth == maxDepth {
		return nil, ErrDepthExceeded
	}

	var parentKey secp256k1.ModNScalar
	parentKey.SetBytes(&n.key)

	//nolint:mnd // 1 prefix byte + 32 key bytes + 4 index bytes
	data := make([]byte, 0, 37)
	if index >= HardenedKeyStart {
		data = append(data, 0x00)
		data = append(data, n.key[:]...)
	} else {
		data = append(data, n.publicKey().SerializeCompressed()...)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	key, chainCode := deriveChildKey(&n.chainCode, data, &parentKey, index)

	return &Node{
		key:               key,
		chainCode:         chainCode,
		depth:             n.depth + 1,
		parentFingerprint: n.Fingerprint(),
		childIndex:        index,
	}, nil
}

// deriveChildKey runs derivation rounds until one yields a valid key. A round is
// retried with data = 0x01 || IR || ser32(index) when IL >= n or the sum is zero.
// There is no cap on the number of rounds; a round fails with probability below 2^-127.
func deriveChildKey(chainCode *[32]byte, data []byte, parentKey *secp256k1.ModNScalar, index uint32) (key [32]byte, childChainCode [32]byte) {
	for {
		childKey, ir, ok := childRound(chainCode, data, parentKey)
		if ok {
			childKey.PutBytes(&key)
			copy(childChainCode[:], ir)
			return key, childChainCode
		}

		data = append(data[:0], 0x01)
		data = append(data, ir...)
		data = binary.BigEndian.AppendUint32(data, index)
	}
}

// childRound computes I = HMAC-SHA512(chainCode, data) and IL + parentKey mod n.
// ok is false when IL >= n or the sum is zero.
func childRound(chainCode *[32]byte, data []byte, parentKey *secp256k1.ModNScalar) (childKey secp256k1.ModNScalar, ir []byte, ok bool) {
	mac := hmac.New(sha512.New, chainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)

	overflow := childKey.SetByteSlice(sum[:32])
	childKey.Add(parentKey)

	return childKey, sum[32:], !overflow && !childKey.IsZero()
}

// Derive walks path starting at n.
func (n *Node) Derive(path DerivationPath) (*Node, error) {
	node := n
	for _, index := range path {
		child, err := node.Child(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
		node = child
	}

	return node, nil
}

func (n *Node) publicKey() *secp256k1.PublicKey {
	return secp256k1.PrivKeyFromBytes(n.key[:]).PubKey()
}

// PrivateKey returns a copy of the 32-byte private key.
// WARNING: Caller must clear the private key after use
func (n *Node) PrivateKey() []byte {
	out := make([]byte, len(n.key))
	copy(out, n.key[:])
	return out
}

// PrivateKeyHex returns the private key as lowercase hex without a 0x prefix.
func (n *Node) PrivateKeyHex() string {
	return hex.EncodeToString(n.key[:])
}

// ChainCode returns a copy of the chain code.
func (n *Node) ChainCode() []byte {
	out := make([]byte, len(n.chainCode))
	copy(out, n.chainCode[:])
	return out
}

// PublicKey returns the 33-byte compressed public key.
func (n *Node) PublicKey() []byte {
	return n.publicKey().SerializeCompressed()
}

// UncompressedPublicKey returns the 64-byte x || y public key.
func (n *Node) UncompressedPublicKey() []byte {
	return n.publicKey().SerializeUncompressed()[serializedPrefixLength:]
}

// Fingerprint is the first 4 bytes of HASH160 of the compressed public key.
func (n *Node) Fingerprint() [4]byte {
	var fp [4]byte
	copy(fp[:], btcutil.Hash160(n.PublicKey()))
	return fp
}

func (n *Node) Depth() uint8 {
	return n.depth
}

func (n *Node) ParentFingerprint() [4]byte {
	return n.parentFingerprint
}

func (n *Node) ChildIndex() uint32 {
	return n.childIndex
}
