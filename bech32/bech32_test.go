package bech32

import (
	"bytes"
	"strings"
	"testing"

	dcrbech32 "github.com/decred/dcrd/bech32"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestDecodeValid(t *testing.T) {
	for _, s := range []string{
		"A12UEL5L",
		"a12uel5l",
		"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
		"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw",
		"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w",
		"?1ezyfcl",
	} {
		hrp, data, err := Decode(s)
		require.NoError(t, err, s)
		// re-encoding always gives the lowercase form back
		enc, err := Encode(hrp, data)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(s), enc)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"\x201nwldj5", ErrInvalidCharacter{Char: ' ', Index: 0}},
		{"de1lg7wt\xff", ErrInvalidCharacter{Char: 0xff, Index: 8}},
		{"x1b4n0q5v", ErrInvalidCharacter{Char: 'b', Index: 2}},
		{"pzry9x0s0muk", ErrInvalidSeparatorIndex(-1)},
		{"1pzry9x0s0muk", ErrInvalidSeparatorIndex(0)},
		{"10a06t8", ErrInvalidSeparatorIndex(0)},
		{"li1dgmt3", ErrPayloadTooShort(5)},
		{"a1", ErrPayloadTooShort(0)},
		{"A12uEL5L", ErrMixedCase{}},
		{strings.Repeat("a", 84) + "1569pvx", ErrInvalidLength(91)},
	}
	for _, tt := range tests {
		_, _, err := Decode(tt.in)
		require.Equal(t, tt.want, err, "%q", tt.in)
	}
	// the checksum of an uppercase hrp is computed over its lowercase form
	_, _, err := Decode("A1G7SGD8")
	require.ErrorAs(t, err, new(ErrInvalidChecksum))
}

func TestDecodeNoLimit(t *testing.T) {
	data := make([]byte, 300)
	s, err := Encode("naddr", data)
	require.NoError(t, err)
	_, _, err = Decode(s)
	require.Equal(t, ErrInvalidLength(len(s)), err)
	_, got, err := DecodeNoLimit(s)
	require.NoError(t, err)
	require.Equal(t, data, got)

	_, _, err = DecodeNoLimit("a1" + strings.Repeat("q", MaxLengthNoLimit))
	require.Equal(t, ErrInvalidLength(MaxLengthNoLimit+2), err)
}

func TestEncodeKnownAnswer(t *testing.T) {
	conv, err := ConvertBits([]byte("Test data"), 8, 5, true)
	require.NoError(t, err)
	enc, err := Encode("customHrp!11111q", conv)
	require.NoError(t, err)
	require.Equal(t, "customhrp!11111q123jhxapqv3shgcgkxpuhe", enc)
}

func TestEncodeRejects(t *testing.T) {
	_, err := Encode("", nil)
	require.Equal(t, ErrInvalidSeparatorIndex(0), err)
	_, err = Encode("npub", []byte{32})
	require.Equal(t, ErrInvalidDataByte(32), err)
	_, err = Encode("n pub", nil)
	require.Equal(t, ErrInvalidCharacter{Char: ' ', Index: 1}, err)
	_, err = Encode("x", make([]byte, MaxLengthNoLimit))
	require.ErrorAs(t, err, new(ErrInvalidLength))
}

// TestChecksumDetectsSingleSubstitution flips every data character of a
// string to every other charset character and expects a checksum failure.
func TestChecksumDetectsSingleSubstitution(t *testing.T) {
	s, err := EncodeFromBase256("npub", frand.Bytes(32))
	require.NoError(t, err)
	sep := strings.LastIndexByte(s, Separator)
	for i := sep + 1; i < len(s); i++ {
		for j := 0; j < len(Charset); j++ {
			if Charset[j] == s[i] {
				continue
			}
			mangled := s[:i] + string(Charset[j]) + s[i+1:]
			_, _, err = Decode(mangled)
			require.ErrorAs(t, err, new(ErrInvalidChecksum), mangled)
		}
	}
}

func TestConvertBits(t *testing.T) {
	for range 1000 {
		b8 := frand.Bytes(frand.Intn(100))
		b5, err := Convert8to5(b8)
		require.NoError(t, err)
		for _, b := range b5 {
			require.Less(t, b, byte(32))
		}
		back, err := Convert5to8(b5)
		require.NoError(t, err)
		require.True(t, bytes.Equal(b8, back))
	}
	_, err := ConvertBits(nil, 0, 5, true)
	require.Equal(t, ErrInvalidBitGroups{}, err)
	_, err = ConvertBits(nil, 8, 9, true)
	require.Equal(t, ErrInvalidBitGroups{}, err)
	_, err = ConvertBits([]byte{32}, 5, 8, false)
	require.Equal(t, ErrInvalidDataByte(32), err)
}

func TestConvertBitsPadding(t *testing.T) {
	// a whole 5 bit group left over can never be padding
	_, err := Convert5to8([]byte{0})
	require.Equal(t, ErrInvalidPadding{Bits: 5, Value: 0}, err)
	// two leftover bits that are not zero
	_, err = Convert5to8([]byte{0, 1})
	require.Equal(t, ErrInvalidPadding{Bits: 2, Value: 1}, err)
	// two leftover zero bits are fine
	b8, err := Convert5to8([]byte{0x1f, 0x1c})
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, b8)
	// a string whose checksum is fine but whose last group is not canonical
	b5, err := Convert8to5(frand.Bytes(32))
	require.NoError(t, err)
	b5[len(b5)-1] |= 1
	s, err := Encode("npub", b5)
	require.NoError(t, err)
	_, _, err = DecodeToBase256(s)
	require.ErrorAs(t, err, new(ErrInvalidPadding))
}

// TestAgainstDecred checks encoding and decoding against the decred
// implementation the error types here descend from.
func TestAgainstDecred(t *testing.T) {
	for _, hrp := range []string{"npub", "nsec", "note", "nevent", "nprofile", "naddr"} {
		for range 200 {
			b8 := frand.Bytes(frand.Intn(200) + 1)
			ours, err := EncodeFromBase256(hrp, b8)
			require.NoError(t, err)
			conv, err := dcrbech32.ConvertBits(b8, 8, 5, true)
			require.NoError(t, err)
			theirs, err := dcrbech32.Encode(hrp, conv)
			require.NoError(t, err)
			require.Equal(t, theirs, ours)

			gotHRP, gotData, err := DecodeToBase256(theirs)
			require.NoError(t, err)
			require.Equal(t, hrp, gotHRP)
			require.Equal(t, b8, gotData)
		}
	}
}
