// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers: 128-bit identifiers that embed a 48-bit millisecond timestamp
// followed by 80 bits of entropy, and that sort by creation time in both
// their binary and their 26-character Crockford Base32 text form.
//
// The binary layout is fixed and big-endian:
//
//	bytes [0,6)  48-bit Unix millisecond timestamp
//	bytes [6,16) entropy (random mode), or a 32-bit counter followed by
//	             48 bits of entropy (monotonic mode)
//
// Identifiers are produced by a Generator; see NewGenerator for the
// available modes and their ordering guarantees.
package ulid

import (
	"bytes"
	"time"
)

// ULID is a 16-byte identifier. The zero value is valid and sorts before
// every generated identifier.
type ULID [16]byte

// BinarySize is the length of a ULID in its binary form.
const BinarySize = 16

// MaxTimestamp is the largest Unix millisecond timestamp representable in
// the 48-bit timestamp field (around the year 10889).
const MaxTimestamp uint64 = 1<<48 - 1

var (
	// Zero is the zero-value ULID, all 16 bytes zero.
	Zero ULID

	// Max is the largest possible ULID, all 16 bytes 0xFF.
	Max = ULID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
)

// Timestamp returns the Unix millisecond timestamp stored in the first
// 6 bytes. It is total: any 16-byte value has a timestamp, whether or not it
// was produced by this package.
func (id ULID) Timestamp() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Time returns the timestamp field as a time.Time in the local location.
func (id ULID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp()))
}

// SetTimestamp writes ms into the timestamp field, leaving the entropy bytes
// untouched. It returns ErrBigTimestamp if ms does not fit in 48 bits.
func (id *ULID) SetTimestamp(ms uint64) error {
	if ms > MaxTimestamp {
		return ErrBigTimestamp
	}
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
	return nil
}

// Timestamp converts a time.Time to Unix milliseconds for use with
// Generator.NewWithTimestamp, truncating values beyond MaxTimestamp.
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixMilli()) & MaxTimestamp
}

// Entropy returns a copy of the 10 entropy bytes.
func (id ULID) Entropy() []byte {
	e := make([]byte, 10)
	copy(e, id[6:])
	return e
}

// Bytes returns a copy of the raw 16-byte representation.
func (id ULID) Bytes() []byte {
	b := make([]byte, BinarySize)
	copy(b, id[:])
	return b
}

// IsZero reports whether id is the zero ULID.
func (id ULID) IsZero() bool {
	return id == Zero
}

// Compare returns -1, 0 or 1 depending on whether id sorts before, equal to
// or after other under unsigned byte-wise comparison. Because the timestamp
// occupies the most significant bytes, this order is chronological first and
// entropy-ordered within a millisecond.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether a sorts strictly before b. It is suitable as a
// comparison function for sorting packages.
func Less(a, b ULID) bool {
	return a.Compare(b) < 0
}

// Hash returns a polynomial rolling hash (h := h*31 + b over all 16 bytes)
// for use in equality-keyed lookup structures. It has no security
// properties.
func (id ULID) Hash() uint32 {
	var h uint32
	for _, b := range id {
		h = h*31 + uint32(b)
	}
	return h
}

// MarshalText implements encoding.TextMarshaler, producing the canonical
// 26-character form.
func (id ULID) MarshalText() ([]byte, error) {
	return id.AppendFormat(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, producing the raw
// 16 bytes.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It returns
// ErrDataSize unless data is exactly 16 bytes.
func (id *ULID) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return ErrDataSize
	}
	copy(id[:], data)
	return nil
}
