// Package tlv implements a simple Type Length Value encoder for nostr NIP-19
// bech32 encoded entities. The format is generic and could also be used for any
// TLV use case where fields are at most 255 bytes.
package tlv

import (
	"bytes"
	"fmt"
	"io"

	"nostrid.lol/chk"
)

const (
	// Default is the special field: an event id, a pubkey, or the d tag
	// identifier of an addressable event, depending on the entity.
	Default byte = iota
	// Relay is a relay URL where the entity is likely to be found.
	Relay
	// Author is the 32 byte pubkey of the author of an event.
	Author
	// Kind is the 32 bit big endian kind number of an event.
	Kind
)

// MaxValueLen is the largest value the single byte length field can describe.
const MaxValueLen = 255

// Record is one type/length/value entry. The length is implied by Value.
type Record struct {
	Type  byte
	Value []byte
}

// TypeName returns a human readable name for the known record types.
func TypeName(typ byte) string {
	switch typ {
	case Default:
		return "special"
	case Relay:
		return "relay"
	case Author:
		return "author"
	case Kind:
		return "kind"
	}
	return fmt.Sprintf("type %d", typ)
}

// ErrTruncatedRecord is returned when the buffer ends inside a record header
// or value. Offset is where the record starts, Want is the number of bytes the
// record needs from there and Have is how many there are.
type ErrTruncatedRecord struct {
	Offset, Want, Have int
}

func (err ErrTruncatedRecord) Error() string {
	return fmt.Sprintf("truncated TLV record at offset %d: need %d bytes, have %d",
		err.Offset, err.Want, err.Have)
}

// ErrValueTooLong is returned when writing a record whose value cannot be
// described by a single byte length.
type ErrValueTooLong struct {
	Type   byte
	Length int
}

func (err ErrValueTooLong) Error() string {
	return fmt.Sprintf("TLV %s value is %d bytes, maximum is %d",
		TypeName(err.Type), err.Length, MaxValueLen)
}

// Parse splits a buffer into its records. The buffer must be consumed exactly;
// unknown types are returned like any other record. The values alias b but are
// capped, so appending to one never writes into the next.
func Parse(b []byte) (records []Record, err error) {
	for curr := 0; curr < len(b); {
		rem := len(b) - curr
		if rem < 2 {
			err = ErrTruncatedRecord{Offset: curr, Want: 2, Have: rem}
			return
		}
		length := int(b[curr+1])
		if rem < 2+length {
			err = ErrTruncatedRecord{Offset: curr, Want: 2 + length, Have: rem}
			return
		}
		records = append(records, Record{
			Type:  b[curr],
			Value: b[curr+2 : curr+2+length : curr+2+length],
		})
		curr += 2 + length
	}
	return
}

// Marshal concatenates the records in order.
func Marshal(records ...Record) (b []byte, err error) {
	buf := new(bytes.Buffer)
	if err = Write(buf, records...); chk.D(err) {
		return
	}
	b = buf.Bytes()
	return
}

// Write writes the records to w in order, with no padding between them. All
// the lengths are checked before anything is written.
func Write(w io.Writer, records ...Record) (err error) {
	for _, r := range records {
		if len(r.Value) > MaxValueLen {
			err = ErrValueTooLong{Type: r.Type, Length: len(r.Value)}
			return
		}
	}
	for _, r := range records {
		if err = WriteEntry(w, r.Type, r.Value); chk.E(err) {
			return
		}
	}
	return
}

// WriteEntry writes a TLV value for a bech32 encoded nostr entity.
func WriteEntry(buf io.Writer, typ uint8, value []byte) (err error) {
	if len(value) > MaxValueLen {
		err = ErrValueTooLong{Type: typ, Length: len(value)}
		return
	}
	_, err = buf.Write(append([]byte{typ, byte(len(value))}, value...))
	return
}
