// Command nip19 decodes, encodes and converts the bech32 identifiers nostr uses
// for keys, notes, profiles, events and addressable events.
package main

import (
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"nostrid.lol/chk"
	"nostrid.lol/config"
	"nostrid.lol/context"
	"nostrid.lol/interrupt"
	"nostrid.lol/log"
)

type EnvCmd struct{}
type HelpCmd struct{}

type Args struct {
	Decode  *DecodeCmd  `arg:"subcommand:decode" help:"decode NIP-19 strings, nostr: URIs or hex"`
	Encode  *EncodeCmd  `arg:"subcommand:encode" help:"encode a key, note id, profile, event or address"`
	Convert *ConvertCmd `arg:"subcommand:convert" help:"convert between npub, nsec or note and hex"`
	Batch   *BatchCmd   `arg:"subcommand:batch" help:"decode one string per line of standard input"`
	Env     *EnvCmd     `arg:"subcommand:env" help:"print the configuration as a shell script"`
	Help    *HelpCmd    `arg:"subcommand:help" help:"print the environment variables that configure nip19"`
}

func (Args) Description() string {
	return "nip19 works with the bech32 encoded identifiers of nostr (npub, nsec, note, nprofile, nevent, naddr)"
}

// streams are where a command reads and writes.
type streams struct {
	in       io.Reader
	out, err io.Writer
}

func main() {
	cfg, err := config.New()
	if chk.E(err) {
		os.Exit(1)
	}
	var args Args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	c, cancel := interrupt.Context(context.Bg())
	defer cancel()
	if err = run(c, cfg, &args, streams{os.Stdin, os.Stdout, os.Stderr}); err != nil {
		log.E.Ln(err)
		os.Exit(1)
	}
}

func run(c context.T, cfg *config.C, args *Args, s streams) (err error) {
	switch {
	case args.Decode != nil:
		return runDecode(c, cfg, args.Decode, s)
	case args.Encode != nil:
		return runEncode(cfg, args.Encode, s)
	case args.Convert != nil:
		return runConvert(args.Convert, s)
	case args.Batch != nil:
		return runBatch(c, cfg, args.Batch, s)
	case args.Env != nil:
		cfg.PrintEnv(s.out)
	case args.Help != nil:
		cfg.PrintHelp(s.out)
	}
	return
}
