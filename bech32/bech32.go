// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// Charset is the set of characters used in the data section of bech32 strings.
// Note that this is ordered, such that for a given charset[i], i is the binary
// value of the character.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// Separator is the character between the human-readable part and the
	// data part. The last occurrence in a string is the one that counts, as
	// the human-readable part may itself contain it.
	Separator = '1'

	// ChecksumLength is the number of characters of checksum at the end of
	// every bech32 string.
	ChecksumLength = 6

	// MinLength is the shortest possible bech32 string: a single character
	// human-readable part, the separator and the checksum.
	MinLength = 1 + 1 + ChecksumLength

	// MaxLength is the BIP-173 limit on the total length of a string.
	MaxLength = 90

	// MaxLengthNoLimit is the limit applied by DecodeNoLimit. Nostr entities
	// with several relay hints run well past MaxLength.
	MaxLengthNoLimit = 5000

	// checksumConst is what the polymod of a valid string comes out as, and
	// what is xored into a freshly computed checksum.
	checksumConst = 1
)

// gen is the generator of the BCH code the checksum is computed with.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps a lowercase ASCII character to its 5 bit value, or -1 if it
// is not part of the charset.
var charsetRev = func() (rev [128]int8) {
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(Charset); i++ {
		rev[Charset[i]] = int8(i)
	}
	return
}()

// polymod runs the checksum over the expanded human-readable part followed by
// each of the value slices in turn.
func polymod(hrp string, values ...[]byte) uint32 {
	chk := uint32(1)
	step := func(v byte) {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	for i := 0; i < len(hrp); i++ {
		step(hrp[i] >> 5)
	}
	step(0)
	for i := 0; i < len(hrp); i++ {
		step(hrp[i] & 31)
	}
	for _, vs := range values {
		for _, v := range vs {
			step(v)
		}
	}
	return chk
}

var zeroChecksum = make([]byte, ChecksumLength)

// writeChecksum calculates the checksum of the hrp and data and appends it,
// as charset characters, to the builder.
func writeChecksum(out *strings.Builder, hrp string, data []byte) {
	mod := polymod(hrp, data, zeroChecksum) ^ checksumConst
	for i := 0; i < ChecksumLength; i++ {
		out.WriteByte(Charset[(mod>>uint(5*(5-i)))&31])
	}
}

// checksumString is the checksum of the hrp and data as charset characters.
func checksumString(hrp string, data []byte) string {
	var sb strings.Builder
	writeChecksum(&sb, hrp, data)
	return sb.String()
}

// Decode decodes a bech32 encoded string no longer than MaxLength, returning
// the lowercased human-readable part and the data part as 5 bit values
// excluding the checksum.
func Decode(bech string) (hrp string, data []byte, err error) {
	return decode(bech, MaxLength)
}

// DecodeNoLimit is Decode with the length limit raised to MaxLengthNoLimit.
func DecodeNoLimit(bech string) (hrp string, data []byte, err error) {
	return decode(bech, MaxLengthNoLimit)
}

func decode(bech string, limit int) (hrp string, data []byte, err error) {
	if len(bech) > limit {
		err = ErrInvalidLength(len(bech))
		return
	}
	var hasLower, hasUpper bool
	for i := 0; i < len(bech); i++ {
		c := bech[i]
		if c < 33 || c > 126 {
			err = ErrInvalidCharacter{Char: rune(c), Index: i}
			return
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
	}
	if hasLower && hasUpper {
		err = ErrMixedCase{}
		return
	}
	bech = strings.ToLower(bech)
	sep := strings.LastIndexByte(bech, Separator)
	if sep < 1 {
		err = ErrInvalidSeparatorIndex(sep)
		return
	}
	if rem := len(bech) - sep - 1; rem < ChecksumLength {
		err = ErrPayloadTooShort(rem)
		return
	}
	hrp = bech[:sep]
	// the checksum stays on the end of data5 so the polymod of the whole
	// thing can be compared to checksumConst
	data5 := make([]byte, len(bech)-sep-1)
	for i := range data5 {
		c := bech[sep+1+i]
		v := charsetRev[c]
		if v < 0 {
			err = ErrInvalidCharacter{Char: rune(c), Index: sep + 1 + i}
			return
		}
		data5[i] = byte(v)
	}
	if polymod(hrp, data5) != checksumConst {
		split := len(data5) - ChecksumLength
		err = ErrInvalidChecksum{
			Expected: checksumString(hrp, data5[:split]),
			Actual:   bech[len(bech)-ChecksumLength:],
		}
		return
	}
	data = data5[:len(data5)-ChecksumLength]
	return
}

// Encode encodes a byte slice of 5 bit values into a bech32 string with the
// given human-readable part. The output is always lowercase.
func Encode(hrp string, data []byte) (s string, err error) {
	if len(hrp) == 0 {
		err = ErrInvalidSeparatorIndex(0)
		return
	}
	if total := len(hrp) + 1 + len(data) + ChecksumLength; total > MaxLengthNoLimit {
		err = ErrInvalidLength(total)
		return
	}
	for i := 0; i < len(hrp); i++ {
		if c := hrp[i]; c < 33 || c > 126 {
			err = ErrInvalidCharacter{Char: rune(c), Index: i}
			return
		}
	}
	hrp = strings.ToLower(hrp)
	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(data) + ChecksumLength)
	sb.WriteString(hrp)
	sb.WriteByte(Separator)
	for _, b := range data {
		if b >= 32 {
			err = ErrInvalidDataByte(b)
			return
		}
		sb.WriteByte(Charset[b])
	}
	writeChecksum(&sb, hrp, data)
	s = sb.String()
	return
}

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.
//
// With pad set the final group is filled out with zero bits. Without it the
// leftover bits must be fewer than fromBits and all zero, otherwise
// ErrInvalidPadding is returned rather than the bits being dropped.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) (
	regrouped []byte, err error) {

	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		err = ErrInvalidBitGroups{}
		return
	}
	regrouped = make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	var nextByte byte
	var filledBits uint8
	for _, b := range data {
		if fromBits < 8 && b>>fromBits != 0 {
			err = ErrInvalidDataByte(b)
			return nil, err
		}
		// shift the bits we care about to the top of the byte
		b <<= 8 - fromBits
		remFromBits := fromBits
		for remFromBits > 0 {
			toExtract := min(remFromBits, toBits-filledBits)
			nextByte = (nextByte << toExtract) | (b >> (8 - toExtract))
			b <<= toExtract
			remFromBits -= toExtract
			filledBits += toExtract
			if filledBits == toBits {
				regrouped = append(regrouped, nextByte)
				filledBits, nextByte = 0, 0
			}
		}
	}
	if pad && filledBits > 0 {
		nextByte <<= toBits - filledBits
		regrouped = append(regrouped, nextByte)
		filledBits, nextByte = 0, 0
	}
	if filledBits > 0 && (filledBits >= fromBits || nextByte != 0) {
		err = ErrInvalidPadding{Bits: filledBits, Value: nextByte}
		return nil, err
	}
	return
}

// Convert8to5 regroups bytes into 5 bit values, zero padding the last one.
func Convert8to5(b8 []byte) (b5 []byte, err error) { return ConvertBits(b8, 8, 5, true) }

// Convert5to8 regroups 5 bit values into bytes, rejecting any padding that is
// not canonical.
func Convert5to8(b5 []byte) (b8 []byte, err error) { return ConvertBits(b5, 5, 8, false) }

// EncodeFromBase256 converts the bytes to 5 bit groups and encodes them with
// the given human-readable part.
func EncodeFromBase256(hrp string, data []byte) (s string, err error) {
	var b5 []byte
	if b5, err = Convert8to5(data); err != nil {
		return
	}
	return Encode(hrp, b5)
}

// DecodeToBase256 decodes a string of up to MaxLengthNoLimit characters and
// returns its human-readable part and the data regrouped into bytes.
func DecodeToBase256(bech string) (hrp string, data []byte, err error) {
	var b5 []byte
	if hrp, b5, err = DecodeNoLimit(bech); err != nil {
		return
	}
	if data, err = Convert5to8(b5); err != nil {
		return
	}
	return
}
