package ulid_test

import (
	"crypto/rand"
	"strings"
	"testing"

	oklogulid "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaenen/ulid/pkg/ulid"
)

// canonical is the well-known ULID example value.
const canonical = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func randomULID(t *testing.T) ulid.ULID {
	t.Helper()
	var id ulid.ULID
	_, err := rand.Read(id[:])
	require.NoError(t, err)
	return id
}

func TestStringLength(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := randomULID(t).String()
		assert.Len(t, s, ulid.EncodedSize)
		assert.LessOrEqual(t, s[0], byte('7'))
	}
	assert.Equal(t, strings.Repeat("0", 26), ulid.Zero.String())
	assert.Equal(t, "7"+strings.Repeat("Z", 25), ulid.Max.String())
}

func TestParseStringRoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := randomULID(t)

		parsed, err := ulid.Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)

		parsed, err = ulid.ParseStrict(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestCanonicalVector(t *testing.T) {
	id, err := ulid.ParseStrict(canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, id.String())
	assert.Equal(t, id, ulid.MustParse(canonical))
	assert.Equal(t, id, ulid.MustParseStrict(canonical))
}

func TestParsePermissive(t *testing.T) {
	want := ulid.MustParse(canonical)

	t.Run("Lowercase", func(t *testing.T) {
		got, err := ulid.Parse(strings.ToLower(canonical))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ConfusableCharacters", func(t *testing.T) {
		s := strings.NewReplacer("0", "O", "1", "I").Replace(canonical)
		got, err := ulid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		s = strings.NewReplacer("0", "o", "1", "l").Replace(canonical)
		got, err = ulid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("OverflowBitsDiscarded", func(t *testing.T) {
		// 26 Zs carry 130 one-bits; the permissive path keeps the low 128.
		got, err := ulid.Parse(strings.Repeat("Z", 26))
		require.NoError(t, err)
		assert.Equal(t, ulid.Max, got)
	})
}

func TestParseRejects(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		err   error
	}{
		{"TooShort", canonical[:24], ulid.ErrDataSize},
		{"TooLong", canonical + "0", ulid.ErrDataSize},
		{"Empty", "", ulid.ErrDataSize},
		{"LetterU", canonical[:10] + "U" + canonical[11:], ulid.ErrInvalidCharacters},
		{"LetterULower", canonical[:10] + "u" + canonical[11:], ulid.ErrInvalidCharacters},
		{"Punctuation", canonical[:25] + "!", ulid.ErrInvalidCharacters},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ulid.Parse(tc.input)
			assert.ErrorIs(t, err, tc.err)

			_, err = ulid.ParseStrict(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseStrictOverflow(t *testing.T) {
	s := "8" + canonical[1:]

	_, err := ulid.ParseStrict(s)
	assert.ErrorIs(t, err, ulid.ErrOverflow)

	// The permissive path accepts the same input and discards the two
	// excess bits.
	_, err = ulid.Parse(s)
	assert.NoError(t, err)

	_, err = ulid.ParseStrict(strings.Repeat("Z", 26))
	assert.ErrorIs(t, err, ulid.ErrOverflow)
}

func TestParseLegacy25(t *testing.T) {
	id := randomULID(t)
	id[0] &= 0x1F // top 3 bits clear, so the first character is '0'

	s := id.String()
	require.Equal(t, byte('0'), s[0])

	got, err := ulid.Parse(s[1:])
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ulid.ParseStrict(s[1:])
	assert.ErrorIs(t, err, ulid.ErrDataSize)
}

func TestAppendFormat(t *testing.T) {
	id := ulid.MustParse(canonical)
	buf := id.AppendFormat([]byte("id="))
	assert.Equal(t, "id="+canonical, string(buf))
}

// TestOklogCompatibility pins the codec to the reference Go implementation:
// the same 16 bytes must produce the same 26 characters and parse back to
// the same bytes.
func TestOklogCompatibility(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := randomULID(t)

		assert.Equal(t, oklogulid.ULID(id).String(), id.String())

		theirs, err := oklogulid.ParseStrict(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, ulid.ULID(theirs))
	}

	theirs := oklogulid.MustParse(canonical)
	assert.Equal(t, ulid.ULID(theirs), ulid.MustParse(canonical))
}
