package hdwallet

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSeedLength = errors.New("seed length must be between 128 and 512 bits")
	ErrDepthExceeded     = errors.New("cannot derive a key with more than 255 indices in its path")
	ErrIndexOutOfRange   = errors.New("account index must be below the hardened offset")

	ErrInvalidKeyLength = errors.New("serialized extended key has the wrong length")
	ErrInvalidChecksum  = errors.New("serialized extended key has a bad checksum")
	ErrUnknownVersion   = errors.New("serialized extended key has an unknown version")
	ErrInvalidKeyData   = errors.New("serialized extended key carries invalid key data")
	ErrNotPrivate       = errors.New("extended key is not private")
)

// MalformedPathError is returned when a derivation path string cannot be parsed.
// Derivation for the path never starts.
type MalformedPathError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *MalformedPathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("malformed derivation path %q: %s", e.Path, e.Reason)
	}

	return fmt.Sprintf("malformed derivation path %q at segment %q: %s", e.Path, e.Segment, e.Reason)
}

// InvalidScalarError is returned when a private key is not in [1, n-1].
type InvalidScalarError struct {
	Reason string
}

func (e *InvalidScalarError) Error() string {
	return "invalid private key scalar: " + e.Reason
}
