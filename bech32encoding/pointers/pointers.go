// Package pointers holds the entities that NIP-19 strings encode: bare keys and
// note ids, and the composite pointers to events, profiles and addressable
// events that carry relay hints along with them.
package pointers

import (
	"nostrid.lol/bech32encoding/tlv"
	"nostrid.lol/eventid"
	"nostrid.lol/kind"
)

// The human readable prefixes of the NIP-19 entities.
const (
	NsecHRP     = "nsec"
	NpubHRP     = "npub"
	NoteHRP     = "note"
	NeventHRP   = "nevent"
	NprofileHRP = "nprofile"
	NentityHRP  = "naddr"
)

// T is any one of the entities in this package. The set is closed, nothing
// outside this package can implement it, so a type switch over the types here
// covers every value a decoder can return.
type T interface {
	// HRP is the prefix the entity is encoded with, empty for Hex.
	HRP() string
	pointer()
}

// SecretKey is a 32 byte secp256k1 secret key, encoded as nsec.
type SecretKey struct {
	Key []byte
}

// PublicKey is a 32 byte x-only public key, encoded as npub.
type PublicKey struct {
	Key []byte
}

// Note is the id of an event, encoded as note.
type Note struct {
	ID *eventid.T
}

// Hex is a 32 byte value given as 64 hex characters with no prefix or
// checksum. Nothing says what the value is, usually an event id or a pubkey.
type Hex struct {
	ID []byte
}

// Profile is a pubkey with relays where its events may be found, encoded as
// nprofile.
type Profile struct {
	PublicKey []byte
	Relays    [][]byte
	// Extra holds records of types this package does not know, so they are
	// not lost when the entity is encoded again.
	Extra []tlv.Record
}

// Event is an event id with optional hints about where and what it is,
// encoded as nevent. Author is nil and Kind is nil when absent.
type Event struct {
	ID     *eventid.T
	Relays [][]byte
	Author []byte
	Kind   *kind.T
	Extra  []tlv.Record
}

// Entity is the address of a parameterized replaceable event: its d tag
// Identifier, author PublicKey and Kind. Encoded as naddr.
type Entity struct {
	Identifier []byte
	PublicKey  []byte
	Kind       *kind.T
	Relays     [][]byte
	Extra      []tlv.Record
}

func (SecretKey) HRP() string { return NsecHRP }
func (PublicKey) HRP() string { return NpubHRP }
func (Note) HRP() string      { return NoteHRP }
func (Hex) HRP() string       { return "" }
func (Profile) HRP() string   { return NprofileHRP }
func (Event) HRP() string     { return NeventHRP }
func (Entity) HRP() string    { return NentityHRP }

func (SecretKey) pointer() {}
func (PublicKey) pointer() {}
func (Note) pointer()      {}
func (Hex) pointer()       {}
func (Profile) pointer()   {}
func (Event) pointer()     {}
func (Entity) pointer()    {}

// RelayStrings returns the relays as strings.
func RelayStrings(relays [][]byte) (s []string) {
	for _, r := range relays {
		s = append(s, string(r))
	}
	return
}

// Relays converts relay URL strings into the form the entities hold them in.
func Relays(urls ...string) (r [][]byte) {
	for _, u := range urls {
		r = append(r, []byte(u))
	}
	return
}

// Value returns the entity a pointer to an entity points at, so callers can
// switch over the value types alone. A nil pointer gives a nil T.
func Value(p T) T {
	switch e := p.(type) {
	case *SecretKey:
		if e != nil {
			return *e
		}
	case *PublicKey:
		if e != nil {
			return *e
		}
	case *Note:
		if e != nil {
			return *e
		}
	case *Hex:
		if e != nil {
			return *e
		}
	case *Profile:
		if e != nil {
			return *e
		}
	case *Event:
		if e != nil {
			return *e
		}
	case *Entity:
		if e != nil {
			return *e
		}
	default:
		return p
	}
	return nil
}
