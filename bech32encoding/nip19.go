package bech32encoding

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"

	"nostrid.lol/bech32"
	"nostrid.lol/bech32encoding/pointers"
	"nostrid.lol/bech32encoding/tlv"
	"nostrid.lol/chk"
	"nostrid.lol/eventid"
	"nostrid.lol/hex"
	"nostrid.lol/kind"
	"nostrid.lol/log"
)

const (
	NsecHRP     = pointers.NsecHRP
	NpubHRP     = pointers.NpubHRP
	NoteHRP     = pointers.NoteHRP
	NeventHRP   = pointers.NeventHRP
	NprofileHRP = pointers.NprofileHRP
	NentityHRP  = pointers.NentityHRP

	// URIScheme is the NIP-21 prefix that may precede any entity.
	URIScheme = "nostr:"

	// KeyLen is the size of keys, event ids and bare hex values.
	KeyLen = 32
	// HexKeyLen is KeyLen in hex characters.
	HexKeyLen = 2 * KeyLen
)

// StripURIScheme removes a leading nostr: of any case.
func StripURIScheme(s string) string {
	if len(s) >= len(URIScheme) && strings.EqualFold(s[:len(URIScheme)], URIScheme) {
		return s[len(URIScheme):]
	}
	return s
}

// Decode parses a NIP-19 string, optionally prefixed with nostr:, into one of
// the entities in pointers. 64 hex digits are taken as a bare 32 byte value and
// come back as pointers.Hex. Other hex strings are only read as bech32 when
// they contain the separator.
//
// Records of types the entity does not interpret are kept in its Extra field
// in the order they appeared, so Encode gives them back.
func Decode(s string) (p pointers.T, err error) {
	s = StripURIScheme(s)
	if len(s) > 0 && hex.IsHex(s) {
		if len(s) == HexKeyLen || strings.IndexByte(s, bech32.Separator) < 0 {
			return decodeHex(s)
		}
	}
	var prefix string
	var b5, data []byte
	if prefix, b5, err = bech32.DecodeNoLimit(s); chk.D(err) {
		err = errors.WithMessage(err, "bech32")
		return
	}
	if !knownPrefix(prefix) {
		err = ErrUnknownPrefix(prefix)
		return
	}
	if data, err = bech32.Convert5to8(b5); chk.D(err) {
		err = errors.WithMessage(err, "bech32")
		return
	}
	switch prefix {
	case NsecHRP, NpubHRP, NoteHRP:
		if p, err = decodeBare(prefix, data); chk.D(err) {
			return
		}
	case NprofileHRP:
		if p, err = decodeProfile(data); chk.D(err) {
			return
		}
	case NeventHRP:
		if p, err = decodeEvent(data); chk.D(err) {
			return
		}
	case NentityHRP:
		if p, err = decodeEntity(data); chk.D(err) {
			return
		}
	}
	return
}

func knownPrefix(prefix string) bool {
	switch prefix {
	case NsecHRP, NpubHRP, NoteHRP, NprofileHRP, NeventHRP, NentityHRP:
		return true
	}
	return false
}

func decodeHex(s string) (p pointers.T, err error) {
	if len(s) != HexKeyLen {
		err = ErrInvalidHex(len(s))
		return
	}
	var b []byte
	if b, err = hex.DecAppend(make([]byte, 0, KeyLen), []byte(s)); chk.D(err) {
		return
	}
	p = pointers.Hex{ID: b}
	return
}

func decodeBare(prefix string, data []byte) (p pointers.T, err error) {
	if len(data) != KeyLen {
		err = ErrInvalidPayloadLength{Prefix: prefix, Length: len(data)}
		return
	}
	switch prefix {
	case NsecHRP:
		p = pointers.SecretKey{Key: data}
	case NpubHRP:
		p = pointers.PublicKey{Key: data}
	case NoteHRP:
		var id *eventid.T
		if id, err = eventid.NewFromBytes(data); chk.E(err) {
			return
		}
		p = pointers.Note{ID: id}
	}
	return
}

// fields tracks which of the known record types an entity has seen.
type fields struct {
	prefix string
	seen   [4]bool
}

// single checks that a once-only record has not been seen before and, when
// size is not negative, that its value is exactly size bytes.
func (f *fields) single(r tlv.Record, name string, size int) (err error) {
	if f.seen[r.Type] {
		err = ErrDuplicateField{Prefix: f.prefix, Field: name}
		return
	}
	f.seen[r.Type] = true
	if size >= 0 && len(r.Value) != size {
		err = ErrMalformedField{Prefix: f.prefix, Field: name,
			Length: len(r.Value), Want: size}
	}
	return
}

func (f *fields) require(typ byte, name string) (err error) {
	if !f.seen[typ] {
		err = ErrMissingRequiredField{Prefix: f.prefix, Field: name}
	}
	return
}

func parseRecords(prefix string, data []byte) (records []tlv.Record, err error) {
	if records, err = tlv.Parse(data); chk.D(err) {
		err = errors.WithMessage(err, prefix)
	}
	return
}

func decodeKind(v []byte) *kind.T { return kind.New(binary.BigEndian.Uint32(v)) }

func decodeProfile(data []byte) (p pointers.Profile, err error) {
	var records []tlv.Record
	if records, err = parseRecords(NprofileHRP, data); err != nil {
		return
	}
	f := fields{prefix: NprofileHRP}
	for _, r := range records {
		switch r.Type {
		case tlv.Default:
			if err = f.single(r, "pubkey", KeyLen); err != nil {
				return
			}
			p.PublicKey = r.Value
		case tlv.Relay:
			p.Relays = append(p.Relays, r.Value)
		default:
			log.D.F("nprofile keeping %s record", tlv.TypeName(r.Type))
			p.Extra = append(p.Extra, r)
		}
	}
	err = f.require(tlv.Default, "pubkey")
	return
}

func decodeEvent(data []byte) (p pointers.Event, err error) {
	var records []tlv.Record
	if records, err = parseRecords(NeventHRP, data); err != nil {
		return
	}
	f := fields{prefix: NeventHRP}
	for _, r := range records {
		switch r.Type {
		case tlv.Default:
			if err = f.single(r, "id", eventid.Len); err != nil {
				return
			}
			if p.ID, err = eventid.NewFromBytes(r.Value); chk.E(err) {
				return
			}
		case tlv.Relay:
			p.Relays = append(p.Relays, r.Value)
		case tlv.Author:
			if err = f.single(r, "author", KeyLen); err != nil {
				return
			}
			p.Author = r.Value
		case tlv.Kind:
			if err = f.single(r, "kind", 4); err != nil {
				return
			}
			p.Kind = decodeKind(r.Value)
		default:
			log.D.F("nevent keeping %s record", tlv.TypeName(r.Type))
			p.Extra = append(p.Extra, r)
		}
	}
	err = f.require(tlv.Default, "id")
	return
}

func decodeEntity(data []byte) (p pointers.Entity, err error) {
	var records []tlv.Record
	if records, err = parseRecords(NentityHRP, data); err != nil {
		return
	}
	f := fields{prefix: NentityHRP}
	for _, r := range records {
		switch r.Type {
		case tlv.Default:
			if err = f.single(r, "identifier", -1); err != nil {
				return
			}
			p.Identifier = r.Value
		case tlv.Relay:
			p.Relays = append(p.Relays, r.Value)
		case tlv.Author:
			if err = f.single(r, "pubkey", KeyLen); err != nil {
				return
			}
			p.PublicKey = r.Value
		case tlv.Kind:
			if err = f.single(r, "kind", 4); err != nil {
				return
			}
			p.Kind = decodeKind(r.Value)
		default:
			log.D.F("naddr keeping %s record", tlv.TypeName(r.Type))
			p.Extra = append(p.Extra, r)
		}
	}
	for _, req := range []struct {
		typ  byte
		name string
	}{{tlv.Default, "identifier"}, {tlv.Author, "pubkey"}, {tlv.Kind, "kind"}} {
		if err = f.require(req.typ, req.name); err != nil {
			return
		}
	}
	return
}

// Encode produces the canonical NIP-19 string for an entity, or 64 lowercase
// hex characters for pointers.Hex. Records are written in a fixed order: the
// special field, relays in the order given, author, kind, then Extra.
func Encode(p pointers.T) (s string, err error) {
	var data []byte
	switch e := pointers.Value(p).(type) {
	case pointers.SecretKey:
		return encodeBare(NsecHRP, e.Key)
	case pointers.PublicKey:
		return encodeBare(NpubHRP, e.Key)
	case pointers.Note:
		return encodeBare(NoteHRP, e.ID.Bytes())
	case pointers.Hex:
		if len(e.ID) != KeyLen {
			err = ErrInvalidPayloadLength{Prefix: "hex", Length: len(e.ID)}
			return
		}
		s = hex.Enc(e.ID)
		return
	case pointers.Profile:
		if data, err = marshalProfile(e); chk.D(err) {
			return
		}
	case pointers.Event:
		if data, err = marshalEvent(e); chk.D(err) {
			return
		}
	case pointers.Entity:
		if data, err = marshalEntity(e); chk.D(err) {
			return
		}
	default:
		err = ErrUnknownVariant{}
		return
	}
	if s, err = bech32.EncodeFromBase256(p.HRP(), data); chk.E(err) {
		return
	}
	return
}

func encodeBare(prefix string, b []byte) (s string, err error) {
	if len(b) != KeyLen {
		err = ErrInvalidPayloadLength{Prefix: prefix, Length: len(b)}
		return
	}
	return bech32.EncodeFromBase256(prefix, b)
}

func encodeKind(k *kind.T) []byte { return binary.BigEndian.AppendUint32(nil, k.ToU32()) }

func relayRecords(relays [][]byte) (r []tlv.Record) {
	for _, relay := range relays {
		r = append(r, tlv.Record{Type: tlv.Relay, Value: relay})
	}
	return
}

// checkExtra rejects extra records of a type the entity reads as one of its
// own fields, as they would not come back as extras.
func checkExtra(prefix string, extra []tlv.Record, known byte) (err error) {
	for _, r := range extra {
		if r.Type <= known {
			err = ErrDuplicateField{Prefix: prefix, Field: tlv.TypeName(r.Type)}
			return
		}
	}
	return
}

// checkKey checks the length of a required 32 byte field.
func checkKey(prefix, name string, b []byte) (err error) {
	switch {
	case b == nil:
		err = ErrMissingRequiredField{Prefix: prefix, Field: name}
	case len(b) != KeyLen:
		err = ErrMalformedField{Prefix: prefix, Field: name, Length: len(b), Want: KeyLen}
	}
	return
}

func marshalProfile(e pointers.Profile) (data []byte, err error) {
	if err = checkKey(NprofileHRP, "pubkey", e.PublicKey); err != nil {
		return
	}
	if err = checkExtra(NprofileHRP, e.Extra, tlv.Relay); err != nil {
		return
	}
	records := []tlv.Record{{Type: tlv.Default, Value: e.PublicKey}}
	records = append(records, relayRecords(e.Relays)...)
	records = append(records, e.Extra...)
	return tlv.Marshal(records...)
}

func marshalEvent(e pointers.Event) (data []byte, err error) {
	if err = checkKey(NeventHRP, "id", e.ID.Bytes()); err != nil {
		return
	}
	if err = checkExtra(NeventHRP, e.Extra, tlv.Kind); err != nil {
		return
	}
	records := []tlv.Record{{Type: tlv.Default, Value: e.ID.Bytes()}}
	records = append(records, relayRecords(e.Relays)...)
	if e.Author != nil {
		if err = checkKey(NeventHRP, "author", e.Author); err != nil {
			return
		}
		records = append(records, tlv.Record{Type: tlv.Author, Value: e.Author})
	}
	if e.Kind != nil {
		records = append(records, tlv.Record{Type: tlv.Kind, Value: encodeKind(e.Kind)})
	}
	records = append(records, e.Extra...)
	return tlv.Marshal(records...)
}

func marshalEntity(e pointers.Entity) (data []byte, err error) {
	if err = checkKey(NentityHRP, "pubkey", e.PublicKey); err != nil {
		return
	}
	if e.Kind == nil {
		err = ErrMissingRequiredField{Prefix: NentityHRP, Field: "kind"}
		return
	}
	if err = checkExtra(NentityHRP, e.Extra, tlv.Kind); err != nil {
		return
	}
	records := []tlv.Record{{Type: tlv.Default, Value: e.Identifier}}
	records = append(records, relayRecords(e.Relays)...)
	records = append(records,
		tlv.Record{Type: tlv.Author, Value: e.PublicKey},
		tlv.Record{Type: tlv.Kind, Value: encodeKind(e.Kind)})
	records = append(records, e.Extra...)
	return tlv.Marshal(records...)
}
