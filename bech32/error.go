// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
)

// ErrMixedCase is returned when the bech32 string has both lower and uppercase
// characters.
type ErrMixedCase struct{}

func (err ErrMixedCase) Error() string {
	return "string not all lowercase or all uppercase"
}

// ErrInvalidBitGroups is returned when conversion is attempted between byte
// slices using bit-per-element of unsupported value.
type ErrInvalidBitGroups struct{}

func (err ErrInvalidBitGroups) Error() string {
	return "only bit groups between 1 and 8 allowed"
}

// ErrInvalidPadding is returned when regrouping without padding leaves a final
// group that is either a whole input group long or has non-zero bits in it.
type ErrInvalidPadding struct {
	Bits  uint8
	Value byte
}

func (err ErrInvalidPadding) Error() string {
	return fmt.Sprintf("invalid padding: %d leftover bits with value %#x",
		err.Bits, err.Value)
}

// ErrInvalidLength is returned when the bech32 string is longer than the limit
// in force for the decode.
type ErrInvalidLength int

func (err ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid bech32 string length %d", int(err))
}

// ErrPayloadTooShort is returned when fewer characters than a checksum follow
// the separator.
type ErrPayloadTooShort int

func (err ErrPayloadTooShort) Error() string {
	return fmt.Sprintf("only %d characters after separator, need at least %d",
		int(err), ChecksumLength)
}

// ErrInvalidCharacter is returned when the bech32 string has a character
// outside the range of the supported charset, with its position in the
// string.
type ErrInvalidCharacter struct {
	Char  rune
	Index int
}

func (err ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", err.Char, err.Index)
}

// ErrInvalidSeparatorIndex is returned when the separator character '1' is
// missing or at the start of the bech32 string.
type ErrInvalidSeparatorIndex int

func (err ErrInvalidSeparatorIndex) Error() string {
	return fmt.Sprintf("invalid separator index %d", int(err))
}

// ErrInvalidChecksum is returned when the extracted checksum of the string
// is different than what was expected.
type ErrInvalidChecksum struct {
	Expected string
	Actual   string
}

func (err ErrInvalidChecksum) Error() string {
	return fmt.Sprintf("invalid checksum (expected %v got %v)",
		err.Expected, err.Actual)
}

// ErrInvalidDataByte is returned when a byte outside the range required for
// conversion into a string was found.
type ErrInvalidDataByte byte

func (err ErrInvalidDataByte) Error() string {
	return fmt.Sprintf("invalid data byte: %v", byte(err))
}
