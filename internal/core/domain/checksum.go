// Package domain contains the core domain models of the checksum graph: checksums,
// checksum sets and the typed nodes that carry child checksums.
package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"go.trai.ch/zerr"
)

// ChecksumSize is the length in bytes of a Checksum.
const ChecksumSize = sha256.Size

// Checksum identifies an object by the SHA-256 digest of its canonical encoding.
// Two objects with the same checksum are the same object.
type Checksum [ChecksumSize]byte

// NullChecksum denotes "no object". It is never resolved or fetched.
var NullChecksum Checksum

// ChecksumOf returns the checksum of the given encoded object.
func ChecksumOf(data []byte) Checksum {
	return sha256.Sum256(data)
}

// ParseChecksum parses the lowercase hex form produced by Checksum.String.
func ParseChecksum(s string) (Checksum, error) {
	var c Checksum
	if len(s) != hex.EncodedLen(ChecksumSize) {
		return c, zerr.With(zerr.Wrap(ErrInvalidChecksum, "unexpected checksum length"), "checksum", s)
	}
	if _, err := hex.Decode(c[:], []byte(s)); err != nil {
		return c, zerr.With(zerr.Wrap(ErrInvalidChecksum, err.Error()), "checksum", s)
	}
	return c, nil
}

// IsNull reports whether c is the null checksum.
func (c Checksum) IsNull() bool {
	return c == NullChecksum
}

// String returns the lowercase hex form of the checksum.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// Short returns an abbreviated form suitable for log lines.
func (c Checksum) Short() string {
	return c.String()[:12]
}

// Compare orders checksums bytewise.
func (c Checksum) Compare(other Checksum) int {
	return bytes.Compare(c[:], other[:])
}

// RefKind implements ChildRef.
func (Checksum) RefKind() RefKind {
	return RefChecksum
}

// MarshalText implements encoding.TextMarshaler.
func (c Checksum) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Checksum) UnmarshalText(text []byte) error {
	parsed, err := ParseChecksum(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
