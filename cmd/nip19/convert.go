package main

import (
	"fmt"

	"nostrid.lol/bech32encoding"
	"nostrid.lol/chk"
	"nostrid.lol/errorf"
)

type ConvertCmd struct {
	Input []string `arg:"positional,required" help:"npub, nsec, note or 64 character hex strings"`
	To    string   `arg:"--to" default:"npub" help:"what hex input becomes: npub, nsec or note"`
}

// convert turns an npub, nsec or note into hex, and hex into the To form.
func convert(in, to string) (out string, err error) {
	var prefix, value string
	if prefix, value, err = bech32encoding.DecodeToString(in); chk.D(err) {
		return
	}
	if prefix != "" {
		out = value
		return
	}
	switch to {
	case bech32encoding.NpubHRP:
		return bech32encoding.HexToNpub(value)
	case bech32encoding.NsecHRP:
		return bech32encoding.HexToNsec(value)
	case bech32encoding.NoteHRP:
		return bech32encoding.EncodeNote(value)
	}
	err = errorf.E("cannot convert to '%s', must be npub, nsec or note", to)
	return
}

func runConvert(cmd *ConvertCmd, s streams) (err error) {
	for _, in := range cmd.Input {
		var out string
		if out, err = convert(in, cmd.To); err != nil {
			return
		}
		if _, err = fmt.Fprintln(s.out, out); err != nil {
			return
		}
	}
	return
}

