package pointers

import (
	"encoding/json"

	"nostrid.lol/bech32encoding/tlv"
	"nostrid.lol/hex"
	"nostrid.lol/kind"
)

// Record is the JSON form of a TLV record of an unknown type.
type Record struct {
	Type  byte   `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// View is the flattened, printable form of any entity, with keys and ids in
// hex and relays as strings. Fields an entity does not have are left empty.
type View struct {
	Type       string   `json:"type" yaml:"type"`
	ID         string   `json:"id,omitempty" yaml:"id,omitempty"`
	PublicKey  string   `json:"pubkey,omitempty" yaml:"pubkey,omitempty"`
	SecretKey  string   `json:"seckey,omitempty" yaml:"seckey,omitempty"`
	Author     string   `json:"author,omitempty" yaml:"author,omitempty"`
	Identifier *string  `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Kind       *uint32  `json:"kind,omitempty" yaml:"kind,omitempty"`
	KindName   string   `json:"kind_name,omitempty" yaml:"kind_name,omitempty"`
	KindClass  string   `json:"kind_class,omitempty" yaml:"kind_class,omitempty"`
	Relays     []string `json:"relays,omitempty" yaml:"relays,omitempty"`
	Extra      []Record `json:"extra,omitempty" yaml:"extra,omitempty"`
}

func kindView(v *View, k *kind.T) {
	if k == nil {
		return
	}
	n := k.ToU32()
	v.Kind = &n
	v.KindName = k.Name()
	v.KindClass = k.Class()
}

func extraView(extra []tlv.Record) (r []Record) {
	for _, e := range extra {
		r = append(r, Record{Type: e.Type, Value: hex.Enc(e.Value)})
	}
	return
}

func hexOrEmpty(b []byte) string {
	if b == nil {
		return ""
	}
	return hex.Enc(b)
}

// ViewOf flattens an entity for printing.
func ViewOf(p T) (v View) {
	switch e := Value(p).(type) {
	case SecretKey:
		v = View{Type: NsecHRP, SecretKey: hexOrEmpty(e.Key)}
	case PublicKey:
		v = View{Type: NpubHRP, PublicKey: hexOrEmpty(e.Key)}
	case Note:
		v = View{Type: NoteHRP, ID: e.ID.String()}
	case Hex:
		v = View{Type: "hex", ID: hexOrEmpty(e.ID)}
	case Profile:
		v = View{Type: NprofileHRP, PublicKey: hexOrEmpty(e.PublicKey),
			Relays: RelayStrings(e.Relays), Extra: extraView(e.Extra)}
	case Event:
		v = View{Type: NeventHRP, ID: e.ID.String(), Author: hexOrEmpty(e.Author),
			Relays: RelayStrings(e.Relays), Extra: extraView(e.Extra)}
		kindView(&v, e.Kind)
	case Entity:
		id := string(e.Identifier)
		v = View{Type: NentityHRP, Identifier: &id, PublicKey: hexOrEmpty(e.PublicKey),
			Relays: RelayStrings(e.Relays), Extra: extraView(e.Extra)}
		kindView(&v, e.Kind)
	}
	return
}

func (e SecretKey) MarshalJSON() ([]byte, error) { return json.Marshal(ViewOf(e)) }
func (e PublicKey) MarshalJSON() ([]byte, error) { return json.Marshal(ViewOf(e)) }
func (e Note) MarshalJSON() ([]byte, error)      { return json.Marshal(ViewOf(e)) }
func (e Hex) MarshalJSON() ([]byte, error)       { return json.Marshal(ViewOf(e)) }
func (e Profile) MarshalJSON() ([]byte, error)   { return json.Marshal(ViewOf(e)) }
func (e Event) MarshalJSON() ([]byte, error)     { return json.Marshal(ViewOf(e)) }
func (e Entity) MarshalJSON() ([]byte, error)    { return json.Marshal(ViewOf(e)) }
