package ulid

// Encoding is Crockford's Base32 alphabet, chosen to avoid visually
// ambiguous characters.
const Encoding = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// EncodedSize is the length of the canonical text form.
const EncodedSize = 26

// legacyEncodedSize is the length of the 25-character compatibility form,
// which omits the leading character and so only covers 125 bits.
const legacyEncodedSize = 25

// dec maps an input byte to its 5-bit value, or -1 when the byte is not
// decodable. Decoding is case-insensitive and tolerates the common
// transcription confusions O->0 and I/L->1. U is not in the alphabet and
// stays invalid.
var dec = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Encoding); i++ {
		c := Encoding[i]
		t[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = int8(i)
		}
	}
	t['O'], t['o'] = 0, 0
	t['I'], t['i'] = 1, 1
	t['L'], t['l'] = 1, 1
	return t
}()

// String returns the canonical 26-character form. The 128-bit value is
// right-aligned in the 130 bits covered by 26 characters, so the first
// character carries only 3 bits and is never larger than '7'.
func (id ULID) String() string {
	return string(id.AppendFormat(nil))
}

// AppendFormat appends the canonical 26-character form to dst and returns
// the extended slice.
func (id ULID) AppendFormat(dst []byte) []byte {
	v := uint128FromBytes(id)
	var buf [EncodedSize]byte
	for i := EncodedSize - 1; i >= 0; i-- {
		buf[i] = Encoding[v.lo64()&0x1F]
		v = v.shr(5)
	}
	return append(dst, buf[:]...)
}

// Parse decodes s permissively: case-insensitive, with O read as 0 and I or
// L read as 1. It accepts the canonical 26-character form, discarding the
// 2 bits of the first character that exceed 128 bits without validating
// them, and the 25-character legacy form, zero-extending it to 128 bits.
// Any other length fails with ErrDataSize and any undecodable character
// with ErrInvalidCharacters.
func Parse(s string) (ULID, error) {
	return parse(s, false)
}

// ParseStrict decodes the canonical form only: exactly 26 characters, and
// the first character must not exceed '7' (ErrOverflow otherwise). It is
// otherwise as permissive as Parse about case and confusable characters.
func ParseStrict(s string) (ULID, error) {
	return parse(s, true)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MustParseStrict is like ParseStrict but panics on error.
func MustParseStrict(s string) ULID {
	id, err := ParseStrict(s)
	if err != nil {
		panic(err)
	}
	return id
}

func parse(s string, strict bool) (ULID, error) {
	switch len(s) {
	case EncodedSize:
		if strict {
			d := dec[s[0]]
			if d < 0 {
				return Zero, ErrInvalidCharacters
			}
			if d > 7 {
				return Zero, ErrOverflow
			}
		}
	case legacyEncodedSize:
		if strict {
			return Zero, ErrDataSize
		}
	default:
		return Zero, ErrDataSize
	}

	// Accumulate 5 bits per character. For 26-character input this covers
	// 130 bits; the top 2 shift out of the accumulator, which is exactly the
	// permissive discard.
	var v uint128
	for i := 0; i < len(s); i++ {
		d := dec[s[i]]
		if d < 0 {
			return Zero, ErrInvalidCharacters
		}
		v = v.shl(5).or64(uint64(d))
	}
	return ULID(v.bytes()), nil
}
