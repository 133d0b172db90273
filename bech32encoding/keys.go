package bech32encoding

import (
	"nostrid.lol/bech32encoding/pointers"
	"nostrid.lol/chk"
	"nostrid.lol/errorf"
	"nostrid.lol/eventid"
	"nostrid.lol/hex"
	"nostrid.lol/kind"
)

// decodeKeyHex decodes the 64 hex characters of a key.
func decodeKeyHex(s string) (b []byte, err error) {
	if len(s) != HexKeyLen {
		err = ErrInvalidHex(len(s))
		return
	}
	if b, err = hex.Dec(s); chk.D(err) {
		return
	}
	return
}

// decodeAs decodes s and requires the result to be of type V.
func decodeAs[V pointers.T](prefix, s string) (v V, err error) {
	var p pointers.T
	if p, err = Decode(s); chk.D(err) {
		return
	}
	var ok bool
	if v, ok = p.(V); !ok {
		err = errorf.D("expected %s, got %s", prefix, describe(p))
	}
	return
}

func describe(p pointers.T) string {
	if h := p.HRP(); h != "" {
		return h
	}
	return "bare hex"
}

// HexToNpub encodes a hex public key as npub.
func HexToNpub(pubHex string) (npub string, err error) {
	var b []byte
	if b, err = decodeKeyHex(pubHex); err != nil {
		return
	}
	return BinToNpub(b)
}

// BinToNpub encodes a 32 byte public key as npub.
func BinToNpub(b []byte) (npub string, err error) {
	return Encode(pointers.PublicKey{Key: b})
}

// HexToNsec encodes a hex secret key as nsec.
func HexToNsec(secHex string) (nsec string, err error) {
	var b []byte
	if b, err = decodeKeyHex(secHex); err != nil {
		return
	}
	return BinToNsec(b)
}

// BinToNsec encodes a 32 byte secret key as nsec.
func BinToNsec(b []byte) (nsec string, err error) {
	return Encode(pointers.SecretKey{Key: b})
}

// DecodeNpub returns the public key in an npub.
func DecodeNpub(npub string) (pub []byte, err error) {
	var p pointers.PublicKey
	if p, err = decodeAs[pointers.PublicKey](NpubHRP, npub); err != nil {
		return
	}
	pub = p.Key
	return
}

// DecodeNsec returns the secret key in an nsec.
func DecodeNsec(nsec string) (sec []byte, err error) {
	var p pointers.SecretKey
	if p, err = decodeAs[pointers.SecretKey](NsecHRP, nsec); err != nil {
		return
	}
	sec = p.Key
	return
}

// NpubToHex returns the public key in an npub as hex.
func NpubToHex(npub string) (pubHex string, err error) {
	var b []byte
	if b, err = DecodeNpub(npub); err != nil {
		return
	}
	pubHex = hex.Enc(b)
	return
}

// NsecToHex returns the secret key in an nsec as hex.
func NsecToHex(nsec string) (secHex string, err error) {
	var b []byte
	if b, err = DecodeNsec(nsec); err != nil {
		return
	}
	secHex = hex.Enc(b)
	return
}

// EncodeNote encodes a hex event id as note.
func EncodeNote(idHex string) (note string, err error) {
	var id *eventid.T
	if id, err = eventid.NewFromString(idHex); chk.D(err) {
		return
	}
	return Encode(pointers.Note{ID: id})
}

// EncodeProfile encodes a hex public key and relays as nprofile.
func EncodeProfile(pubHex string, relays []string) (nprofile string, err error) {
	var b []byte
	if b, err = decodeKeyHex(pubHex); err != nil {
		return
	}
	return Encode(pointers.Profile{PublicKey: b, Relays: pointers.Relays(relays...)})
}

// EncodeEvent encodes an event id with relay hints and an optional hex author
// as nevent. An empty authorHex leaves the author out.
func EncodeEvent(id *eventid.T, relays []string, authorHex string) (nevent string, err error) {
	ev := pointers.Event{ID: id, Relays: pointers.Relays(relays...)}
	if authorHex != "" {
		if ev.Author, err = decodeKeyHex(authorHex); err != nil {
			return
		}
	}
	return Encode(ev)
}

// EncodeEntity encodes the address of a parameterized replaceable event as
// naddr.
func EncodeEntity(pubHex string, k *kind.T, identifier string, relays []string) (naddr string, err error) {
	var b []byte
	if b, err = decodeKeyHex(pubHex); err != nil {
		return
	}
	return Encode(pointers.Entity{
		Identifier: []byte(identifier),
		PublicKey:  b,
		Kind:       k,
		Relays:     pointers.Relays(relays...),
	})
}

// DecodeToString decodes s and gives the hex value of a bare key, id or hex
// string, along with its prefix. Composite entities are an error.
func DecodeToString(s string) (prefix, value string, err error) {
	var p pointers.T
	if p, err = Decode(s); chk.D(err) {
		return
	}
	prefix = p.HRP()
	switch e := p.(type) {
	case pointers.SecretKey:
		value = hex.Enc(e.Key)
	case pointers.PublicKey:
		value = hex.Enc(e.Key)
	case pointers.Note:
		value = e.ID.String()
	case pointers.Hex:
		value = hex.Enc(e.ID)
	default:
		err = errorf.D("%s does not decode to a single value", prefix)
	}
	return
}

// NeventToNote gives the note encoding of the event an nevent points at. A note
// is returned unchanged.
func NeventToNote(s string) (note string, err error) {
	var p pointers.T
	if p, err = Decode(s); chk.D(err) {
		return
	}
	switch e := p.(type) {
	case pointers.Event:
		return Encode(pointers.Note{ID: e.ID})
	case pointers.Note:
		return Encode(e)
	}
	err = errorf.D("expected %s or %s, got %s", NeventHRP, NoteHRP, describe(p))
	return
}
