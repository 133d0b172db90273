package eventid

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	for range 1000 {
		id := Gen()
		b, err := json.Marshal(id)
		require.NoError(t, err)
		require.Equal(t, `"`+id.String()+`"`, string(b))
		id2 := New()
		require.NoError(t, json.Unmarshal(b, id2))
		require.True(t, id.Equal(id2))
	}
}

func TestNew(t *testing.T) {
	_, err := NewFromBytes(make([]byte, 31))
	require.Error(t, err)
	_, err = NewFromString(strings.Repeat("a", 63))
	require.Error(t, err)
	id, err := NewFromString(strings.Repeat("AB", 32))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("ab", 32), id.String())

	src := make([]byte, Len)
	id, err = NewFromBytes(src)
	require.NoError(t, err)
	src[0] = 1
	require.Equal(t, byte(0), id.Bytes()[0], "Set keeps its own copy")

	var nilID *T
	require.Zero(t, nilID.Len())
	require.Equal(t, "", nilID.String())
}
