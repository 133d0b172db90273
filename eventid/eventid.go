// Package eventid is the 32 byte identifier of a nostr event, the SHA256 hash
// of its canonical form.
package eventid

import (
	"bytes"

	"lukechampine.com/frand"

	"nostrid.lol/chk"
	"nostrid.lol/errorf"
	"nostrid.lol/hex"
)

// Len is the size of an event ID in bytes.
const Len = 32

// T is the SHA256 hash of the canonical form of an event.
type T struct {
	b []byte
}

func New() (ei *T) { return &T{} }

// Set stores a copy of b, which must be Len bytes long.
func (ei *T) Set(b []byte) (err error) {
	if len(b) != Len {
		err = errorf.D("ID bytes incorrect size, got %d require %d", len(b), Len)
		return
	}
	ei.b = append(make([]byte, 0, Len), b...)
	return
}

func NewFromBytes(b []byte) (ei *T, err error) {
	ei = New()
	if err = ei.Set(b); chk.D(err) {
		return nil, err
	}
	return
}

// NewFromString inspects a string and ensures it is a valid, 64 character long
// hexadecimal string, returns the decoded ID.
func NewFromString(s string) (ei *T, err error) {
	if len(s) != 2*Len {
		return nil, errorf.D("event ID hex wrong size, got %d require %d",
			len(s), 2*Len)
	}
	var b []byte
	if b, err = hex.Dec(s); chk.D(err) {
		return nil, err
	}
	ei = &T{b: b}
	return
}

func (ei *T) String() string {
	if ei == nil || ei.b == nil {
		return ""
	}
	return hex.Enc(ei.b)
}

func (ei *T) Bytes() (b []byte) {
	if ei == nil {
		return nil
	}
	return ei.b
}

func (ei *T) Len() int {
	if ei == nil {
		return 0
	}
	return len(ei.b)
}

func (ei *T) Equal(ei2 *T) bool { return bytes.Equal(ei.Bytes(), ei2.Bytes()) }

func (ei *T) MarshalJSON() (b []byte, err error) {
	if ei.Len() != Len {
		err = errorf.E("eventid is %d bytes, require %d", ei.Len(), Len)
		return
	}
	b = make([]byte, 0, 2*Len+2)
	b = append(b, '"')
	b = hex.EncAppend(b, ei.b)
	b = append(b, '"')
	return
}

func (ei *T) UnmarshalJSON(b []byte) (err error) {
	if len(b) != 2*Len+2 || b[0] != '"' || b[len(b)-1] != '"' {
		err = errorf.E("event ID JSON incorrect size, got %d require %d",
			len(b), 2*Len+2)
		return
	}
	var id *T
	if id, err = NewFromString(string(b[1 : len(b)-1])); chk.E(err) {
		return
	}
	ei.b = id.b
	return
}

// Gen creates a fake pseudorandom generated event ID for tests.
func Gen() (ei *T) { return &T{frand.Bytes(Len)} }
