package bech32encoding

import (
	"fmt"
)

// ErrUnknownPrefix is returned when a string decodes as bech32 but its human
// readable part is not one of the NIP-19 entities.
type ErrUnknownPrefix string

func (err ErrUnknownPrefix) Error() string {
	return fmt.Sprintf("unknown NIP-19 prefix '%s'", string(err))
}

// ErrInvalidPayloadLength is returned when a bare key or id does not carry
// exactly 32 bytes.
type ErrInvalidPayloadLength struct {
	Prefix string
	Length int
}

func (err ErrInvalidPayloadLength) Error() string {
	return fmt.Sprintf("%s payload is %d bytes, must be 32", err.Prefix, err.Length)
}

// ErrMissingRequiredField is returned when a composite entity lacks a field it
// cannot be used without.
type ErrMissingRequiredField struct {
	Prefix, Field string
}

func (err ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("%s has no %s", err.Prefix, err.Field)
}

// ErrDuplicateField is returned when a field that may appear once is found more
// than once.
type ErrDuplicateField struct {
	Prefix, Field string
}

func (err ErrDuplicateField) Error() string {
	return fmt.Sprintf("%s has more than one %s", err.Prefix, err.Field)
}

// ErrMalformedField is returned when a fixed size field has the wrong length.
type ErrMalformedField struct {
	Prefix, Field string
	Length, Want  int
}

func (err ErrMalformedField) Error() string {
	return fmt.Sprintf("%s %s is %d bytes, must be %d",
		err.Prefix, err.Field, err.Length, err.Want)
}

// ErrInvalidHex is returned for a string of hex digits without a prefix that is
// not the 64 characters of a bare 32 byte value.
type ErrInvalidHex int

func (err ErrInvalidHex) Error() string {
	return fmt.Sprintf("bare hex value is %d characters, must be 64", int(err))
}

// ErrUnknownVariant is returned when asked to encode a nil entity.
type ErrUnknownVariant struct{}

func (err ErrUnknownVariant) Error() string { return "cannot encode a nil entity" }
