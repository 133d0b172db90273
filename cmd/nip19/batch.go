package main

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"nostrid.lol/bech32encoding"
	"nostrid.lol/bech32encoding/pointers"
	"nostrid.lol/config"
	"nostrid.lol/context"
	"nostrid.lol/errorf"
	"nostrid.lol/log"
)

type BatchCmd struct {
	Jobs      int    `arg:"-j,--jobs" help:"concurrent decoders (default from NIP19_JOBS, 0 for one per CPU)"`
	Format    string `arg:"-f,--format" help:"text, json or yaml (default from NIP19_FORMAT)"`
	KeepGoing bool   `arg:"-k,--keep-going" help:"report lines that fail to decode and carry on"`
}

// decodeAll decodes the lines with up to jobs goroutines. Results are in the
// order of the lines. Without keepGoing the first failure cancels the rest and
// is returned; with it, failures are returned per line in errs.
func decodeAll(c context.T, lines []string, jobs int, keepGoing bool) (
	results []pointers.T, errs []error, err error) {

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	results = make([]pointers.T, len(lines))
	errs = make([]error, len(lines))
	g, ctx := errgroup.WithContext(c)
	g.SetLimit(jobs)
	for i, line := range lines {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			if err = ctx.Err(); err != nil {
				return
			}
			var p pointers.T
			if p, err = bech32encoding.Decode(line); err != nil {
				err = errors.WithMessagef(err, "line %d", i+1)
				if keepGoing {
					errs[i] = err
					return nil
				}
				return
			}
			results[i] = p
			return
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	// canceled from outside, for example by an interrupt
	err = c.Err()
	return
}

func runBatch(c context.T, cfg *config.C, cmd *BatchCmd, s streams) (err error) {
	var lines []string
	if lines, err = readLines(c, s.in); err != nil {
		return
	}
	jobs := cmd.Jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}
	var pr *printer
	if pr, err = newPrinter(s.out, formatOf(cfg, cmd.Format)); err != nil {
		return
	}
	defer func() {
		if cerr := pr.Close(); err == nil {
			err = cerr
		}
	}()
	var results []pointers.T
	var errs []error
	if results, errs, err = decodeAll(c, lines, jobs, cmd.KeepGoing); err != nil {
		return
	}
	var failed int
	for i, p := range results {
		if errs[i] != nil {
			failed++
			_, _ = fmt.Fprintln(s.err, errs[i])
			continue
		}
		if err = pr.Print(p); err != nil {
			return
		}
	}
	log.D.F("decoded %d of %d lines", len(lines)-failed, len(lines))
	if failed > 0 {
		err = errorf.E("%d of %d lines failed to decode", failed, len(lines))
	}
	return
}
