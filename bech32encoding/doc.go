// Package bech32encoding implements NIP-19 entities, which are bech32 encoded
// data that describes nostr data types.
//
// These are not just identifiers of events and users, but also include things
// like relay hints where to find events.
package bech32encoding
