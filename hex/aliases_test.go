package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestAppendRoundTrip(t *testing.T) {
	for range 1000 {
		src := frand.Bytes(frand.Intn(64) + 1)
		enc := EncAppend([]byte("x"), src)
		require.Equal(t, "x"+Enc(src), string(enc))
		dec, err := DecAppend(nil, enc[1:])
		require.NoError(t, err)
		require.Equal(t, src, dec)
	}
}

func TestDecAppendRejectsOddLength(t *testing.T) {
	_, err := DecAppend(nil, []byte("abc"))
	require.Error(t, err)
}

func TestIsHex(t *testing.T) {
	require.True(t, IsHex("0123456789abcdefABCDEF"))
	require.True(t, IsHex(""))
	require.False(t, IsHex("npub1"))
	require.False(t, IsHex([]byte("g0")))
}
