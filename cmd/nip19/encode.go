package main

import (
	"fmt"

	"github.com/mdp/qrterminal/v3"

	"nostrid.lol/bech32encoding"
	"nostrid.lol/bech32encoding/pointers"
	"nostrid.lol/chk"
	"nostrid.lol/config"
	"nostrid.lol/errorf"
	"nostrid.lol/eventid"
	"nostrid.lol/kind"
	"nostrid.lol/log"
	"nostrid.lol/normalize"
)

type EncodeCmd struct {
	Type       string   `arg:"positional,required" help:"npub, nsec, note, nprofile, nevent or naddr"`
	Hex        string   `arg:"positional,required" help:"key or event id in hex; for naddr the author pubkey"`
	Relays     []string `arg:"-r,--relay,separate" help:"relay hint, may be given more than once (default from NIP19_RELAYS)"`
	Author     string   `arg:"-a,--author" help:"author pubkey as hex or npub, for nevent"`
	Kind       *uint32  `arg:"-k,--kind" help:"event kind, for nevent and required for naddr"`
	Identifier string   `arg:"-d,--identifier" help:"d tag of the addressed event, for naddr"`
	QR         bool     `arg:"--qr" help:"also print the nostr: URI as a QR code"`
	RawRelays  bool     `arg:"--raw-relays" help:"use relay hints exactly as given instead of normalizing them"`
}

// publicKey accepts a pubkey as npub or hex.
func publicKey(s string) (pub []byte, err error) {
	var p pointers.T
	if p, err = bech32encoding.Decode(s); err != nil {
		return
	}
	switch e := p.(type) {
	case pointers.PublicKey:
		pub = e.Key
	case pointers.Hex:
		pub = e.ID
	default:
		err = errorf.E("expected a pubkey as npub or hex, got %s", p.HRP())
	}
	return
}

func encode(cfg *config.C, cmd *EncodeCmd) (s string, err error) {
	relays := cmd.Relays
	if len(relays) == 0 {
		relays = cfg.Relays
	}
	composite := cmd.Type == bech32encoding.NprofileHRP ||
		cmd.Type == bech32encoding.NeventHRP || cmd.Type == bech32encoding.NentityHRP
	if composite && !cmd.RawRelays {
		if relays, err = normalize.URLs(relays); err != nil {
			return
		}
	}
	switch cmd.Type {
	case bech32encoding.NpubHRP:
		return bech32encoding.HexToNpub(cmd.Hex)
	case bech32encoding.NsecHRP:
		return bech32encoding.HexToNsec(cmd.Hex)
	case bech32encoding.NoteHRP:
		return bech32encoding.EncodeNote(cmd.Hex)
	case bech32encoding.NprofileHRP:
		return bech32encoding.EncodeProfile(cmd.Hex, relays)
	case bech32encoding.NeventHRP:
		var id *eventid.T
		if id, err = eventid.NewFromString(cmd.Hex); chk.D(err) {
			return
		}
		ev := pointers.Event{ID: id, Relays: pointers.Relays(relays...)}
		if cmd.Kind != nil {
			ev.Kind = kind.New(*cmd.Kind)
		}
		if cmd.Author != "" {
			if ev.Author, err = publicKey(cmd.Author); err != nil {
				return
			}
		}
		return bech32encoding.Encode(ev)
	case bech32encoding.NentityHRP:
		if cmd.Kind == nil {
			err = errorf.E("naddr needs --kind")
			return
		}
		k := kind.New(*cmd.Kind)
		if !k.IsParameterizedReplaceable() {
			log.W.F("kind %d is %s, an naddr usually points at a parameterized replaceable event",
				k.K, k.Class())
		}
		return bech32encoding.EncodeEntity(cmd.Hex, k, cmd.Identifier, relays)
	}
	err = errorf.E("cannot encode '%s', must be one of npub, nsec, note, nprofile, nevent or naddr",
		cmd.Type)
	return
}

func runEncode(cfg *config.C, cmd *EncodeCmd, s streams) (err error) {
	var out string
	if out, err = encode(cfg, cmd); err != nil {
		return
	}
	if _, err = fmt.Fprintln(s.out, out); err != nil {
		return
	}
	if cmd.QR || cfg.QR {
		qrterminal.GenerateWithConfig(bech32encoding.URIScheme+out, qrterminal.Config{
			Level:     qrterminal.L,
			Writer:    s.out,
			WhiteChar: qrterminal.WHITE,
			BlackChar: qrterminal.BLACK,
			QuietZone: 2,
		})
	}
	return
}
