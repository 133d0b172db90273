// Package bech32 implements the BIP-173 checksummed base32 string encoding
// used by nostr NIP-19 entities, and the regrouping of bytes into the 5 bit
// values it carries.
package bech32
