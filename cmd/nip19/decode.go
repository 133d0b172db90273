package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"nostrid.lol/bech32encoding"
	"nostrid.lol/bech32encoding/pointers"
	"nostrid.lol/config"
	"nostrid.lol/context"
	"nostrid.lol/errorf"
	"nostrid.lol/hex"
)

type DecodeCmd struct {
	Input      []string `arg:"positional" help:"strings to decode, read from standard input when none are given"`
	Format     string   `arg:"-f,--format" help:"text, json or yaml (default from NIP19_FORMAT)"`
	NoteIDOnly bool     `arg:"--note-id-only" help:"print only the hex id of nevent, note and hex input"`
}

type scanned struct {
	lines []string
	err   error
}

// readLines returns the non blank lines of r, trimmed. It stops waiting with
// the error of c when c is done first; the read itself carries on until r
// gives something back.
func readLines(c context.T, r io.Reader) (lines []string, err error) {
	res := make(chan scanned, 1)
	go func() {
		var s scanned
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for sc.Scan() {
			if l := strings.TrimSpace(sc.Text()); l != "" {
				s.lines = append(s.lines, l)
			}
		}
		s.err = sc.Err()
		res <- s
	}()
	select {
	case s := <-res:
		return s.lines, s.err
	case <-c.Done():
		err = c.Err()
		return
	}
}

func formatOf(cfg *config.C, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Format
}

// noteID gives the hex event id an entity refers to.
func noteID(p pointers.T) (id string, err error) {
	switch e := p.(type) {
	case pointers.Event:
		id = e.ID.String()
	case pointers.Note:
		id = e.ID.String()
	case pointers.Hex:
		id = hex.Enc(e.ID)
	default:
		err = errorf.D("%s does not refer to an event", p.HRP())
	}
	return
}

func runDecode(c context.T, cfg *config.C, cmd *DecodeCmd, s streams) (err error) {
	inputs := cmd.Input
	if len(inputs) == 0 {
		if inputs, err = readLines(c, s.in); err != nil {
			return
		}
	}
	var pr *printer
	if !cmd.NoteIDOnly {
		if pr, err = newPrinter(s.out, formatOf(cfg, cmd.Format)); err != nil {
			return
		}
		defer func() {
			if cerr := pr.Close(); err == nil {
				err = cerr
			}
		}()
	}
	for _, in := range inputs {
		var p pointers.T
		if p, err = bech32encoding.Decode(strings.TrimSpace(in)); err != nil {
			return errors.WithMessagef(err, "decoding %s", abbreviate(in))
		}
		if cmd.NoteIDOnly {
			var id string
			if id, err = noteID(p); err != nil {
				return
			}
			if _, err = fmt.Fprintln(s.out, id); err != nil {
				return
			}
			continue
		}
		if err = pr.Print(p); err != nil {
			return
		}
	}
	return
}

// abbreviate shortens input for error messages, keeping the prefix, so secret
// keys are not echoed whole.
func abbreviate(in string) string {
	if len(in) <= 16 {
		return in
	}
	return in[:10] + "..."
}
