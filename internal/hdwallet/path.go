package hdwallet

import (
	"fmt"
	"strconv"
	"strings"
)

const rootMarker = "m"

// DerivationPath is a parsed BIP32 path. Hardened components have HardenedKeyStart added.
type DerivationPath []uint32

// ParsePath converts a path such as "m/44'/60'/0'/0/7" into its indices.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
//
// The path must start with "m". Each segment is a decimal child number below 2^31,
// optionally followed by ', h or H to mark it hardened.
func ParsePath(path string) (DerivationPath, error) {
	if path == rootMarker {
		return DerivationPath{}, nil
	}

	if !strings.HasPrefix(path, rootMarker+"/") {
		return nil, &MalformedPathError{Path: path, Reason: `path must start with "m/"`}
	}

	segments := strings.Split(path[len(rootMarker)+1:], "/")
	result := make(DerivationPath, 0, len(segments))
	for _, segment := range segments {
		index, err := parseSegment(path, segment)
		if err != nil {
			return nil, err
		}
		result = append(result, index)
	}

	return result, nil
}

func parseSegment(path string, segment string) (uint32, error) {
	number := segment
	var offset uint32
	if n := len(number); n > 0 && isHardenedMarker(number[n-1]) {
		number = number[:n-1]
		offset = HardenedKeyStart
	}

	if number == "" {
		return 0, &MalformedPathError{Path: path, Segment: segment, Reason: "empty child number"}
	}

	value, err := strconv.ParseUint(number, 10, 32)
	if err != nil {
		return 0, &MalformedPathError{Path: path, Segment: segment, Reason: "child number is not a non-negative integer"}
	}

	if uint32(value) >= HardenedKeyStart {
		return 0, &MalformedPathError{Path: path, Segment: segment, Reason: "child number must be below 2^31"}
	}

	return uint32(value) + offset, nil
}

func isHardenedMarker(c byte) bool {
	return c == '\'' || c == 'h' || c == 'H'
}

// String renders the canonical form, e.g. m/44'/60'/0'/0/0.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString(rootMarker)
	for _, index := range p {
		if index >= HardenedKeyStart {
			fmt.Fprintf(&b, "/%d'", index-HardenedKeyStart)
			continue
		}
		fmt.Fprintf(&b, "/%d", index)
	}

	return b.String()
}

// PathTemplate is a derivation path whose final segment is filled with an account index.
type PathTemplate struct {
	base     DerivationPath
	hardened bool
}

// ParsePathTemplate parses a path template.
//
// A trailing slash ("m/44'/60'/0'/0/") appends the index as a new non-hardened segment.
// Without it, the final segment is replaced by the index and keeps its hardened marker,
// so "m/44'/60'/0'/0/0" and "m/44'/60'/0'/0/" describe the same accounts.
func ParsePathTemplate(template string) (PathTemplate, error) {
	if trimmed, ok := strings.CutSuffix(template, "/"); ok {
		base, err := ParsePath(trimmed)
		if err != nil {
			return PathTemplate{}, err
		}

		return PathTemplate{base: base}, nil
	}

	path, err := ParsePath(template)
	if err != nil {
		return PathTemplate{}, err
	}

	if len(path) == 0 {
		return PathTemplate{}, &MalformedPathError{Path: template, Reason: "template has no segment to hold the account index"}
	}

	last := len(path) - 1
	return PathTemplate{
		base:     path[:last],
		hardened: path[last] >= HardenedKeyStart,
	}, nil
}

// Base returns the path shared by every account of the template.
func (t PathTemplate) Base() DerivationPath {
	base := make(DerivationPath, len(t.base))
	copy(base, t.base)
	return base
}

// ChildIndex returns the leaf index used for the given account index.
func (t PathTemplate) ChildIndex(index uint32) (uint32, error) {
	if index >= HardenedKeyStart {
		return 0, ErrIndexOutOfRange
	}

	if t.hardened {
		return index + HardenedKeyStart, nil
	}

	return index, nil
}

// At returns the full path of the given account index.
func (t PathTemplate) At(index uint32) (DerivationPath, error) {
	leaf, err := t.ChildIndex(index)
	if err != nil {
		return nil, err
	}

	return append(t.Base(), leaf), nil
}
