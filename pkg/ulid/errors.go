package ulid

import "errors"

var (
	// ErrDataSize is returned when parsing or unmarshaling input of the
	// wrong length.
	ErrDataSize = errors.New("ulid: bad data size when unmarshaling")

	// ErrInvalidCharacters is returned when parsing input containing a
	// character outside the Crockford Base32 alphabet.
	ErrInvalidCharacters = errors.New("ulid: bad data characters when unmarshaling")

	// ErrOverflow is returned by ParseStrict when the first character of a
	// 26-character string is larger than '7', so the encoded value would
	// exceed 128 bits.
	ErrOverflow = errors.New("ulid: overflow when unmarshaling")

	// ErrBigTimestamp is returned when a caller-supplied timestamp does not
	// fit in the 48-bit timestamp field.
	ErrBigTimestamp = errors.New("ulid: timestamp too big")

	// ErrMonotonicOverflow is returned when the monotonic counter is
	// exhausted within a single millisecond. Failing is deliberate: wrapping
	// the counter would silently break the strict ordering guarantee.
	ErrMonotonicOverflow = errors.New("ulid: monotonic counter overflow")

	// ErrNoEntropy is returned when the configured entropy source fails.
	// The generator never falls back to a weaker source on its own.
	ErrNoEntropy = errors.New("ulid: entropy source unavailable")
)
