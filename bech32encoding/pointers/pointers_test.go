package pointers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nostrid.lol/bech32encoding/tlv"
	"nostrid.lol/eventid"
	"nostrid.lol/kind"
)

func TestHRP(t *testing.T) {
	for _, tt := range []struct {
		p    T
		want string
	}{
		{SecretKey{}, "nsec"},
		{PublicKey{}, "npub"},
		{Note{}, "note"},
		{Hex{}, ""},
		{Profile{}, "nprofile"},
		{Event{}, "nevent"},
		{Entity{}, "naddr"},
	} {
		require.Equal(t, tt.want, tt.p.HRP())
	}
}

func TestEventJSON(t *testing.T) {
	id := eventid.Gen()
	author := make([]byte, 32)
	author[31] = 0xaa
	b, err := json.Marshal(Event{
		ID:     id,
		Relays: Relays("wss://relay1", "wss://relay2"),
		Author: author,
		Kind:   kind.TextNote,
		Extra:  []tlv.Record{{Type: 9, Value: []byte{1, 2}}},
	})
	require.NoError(t, err)
	var v View
	require.NoError(t, json.Unmarshal(b, &v))
	require.Equal(t, "nevent", v.Type)
	require.Equal(t, id.String(), v.ID)
	require.Equal(t, strings.Repeat("00", 31)+"aa", v.Author)
	require.Equal(t, []string{"wss://relay1", "wss://relay2"}, v.Relays)
	require.NotNil(t, v.Kind)
	require.Equal(t, uint32(1), *v.Kind)
	require.Equal(t, "TextNote", v.KindName)
	require.Equal(t, "regular", v.KindClass)
	require.Equal(t, []Record{{Type: 9, Value: "0102"}}, v.Extra)
}

func TestEntityJSONKeepsEmptyIdentifier(t *testing.T) {
	b, err := json.Marshal(Entity{PublicKey: make([]byte, 32), Kind: kind.New(0)})
	require.NoError(t, err)
	require.Contains(t, string(b), `"identifier":""`)
	require.Contains(t, string(b), `"kind":0`)
}
