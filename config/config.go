// Package config loads the settings of the nip19 tool from the environment and
// from a .env file in its configuration directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	goenv "go-simpler.org/env"

	"nostrid.lol/chk"
	"nostrid.lol/config/keyvalue"
	"nostrid.lol/env"
	"nostrid.lol/errorf"
	"nostrid.lol/log"
	"nostrid.lol/lol"
)

// EnvFile is the name of the file read from the configuration directory.
const EnvFile = ".env"

// C is the configuration for nip19. Values set in the process environment take
// precedence over the .env file, which takes precedence over the defaults.
type C struct {
	AppName   string   `env:"NIP19_APP_NAME" default:"nip19" usage:"name of the configuration directory"`
	ConfigDir string   `env:"NIP19_CONFIG_DIR" usage:"directory holding the .env file (default <xdg config home>/<app name>)"`
	LogLevel  string   `env:"NIP19_LOG_LEVEL" default:"info" usage:"off, fatal, error, warn, info, debug or trace"`
	Format    string   `env:"NIP19_FORMAT" default:"text" usage:"output of decode and batch: text, json or yaml"`
	Jobs      int      `env:"NIP19_JOBS" default:"0" usage:"concurrent decoders for batch, 0 for one per CPU"`
	Relays    []string `env:"NIP19_RELAYS" usage:"relay hints encode adds when none are given, comma separated"`
	QR        bool     `env:"NIP19_QR" default:"false" usage:"also print encoded strings as a QR code"`
}

// Formats are the accepted values of Format.
var Formats = []string{"text", "json", "yaml"}

// New loads the configuration of the running process and applies its log level.
func New() (c *C, err error) {
	if c, err = Load(os.Environ()); chk.E(err) {
		return
	}
	lol.SetLogLevel(c.LogLevel)
	log.D.S(c)
	return
}

// Load builds the configuration from KEY=value strings, as from os.Environ,
// layered over the .env file in the configuration directory they name.
func Load(environ []string) (c *C, err error) {
	proc := env.FromEnviron(environ)
	c = &C{}
	if err = goenv.Load(c, &goenv.Options{Source: proc, SliceSep: ","}); chk.E(err) {
		return
	}
	dir := c.ConfigDir
	if dir == "" {
		dir = filepath.Join(xdg.ConfigHome, c.AppName)
	}
	var file env.Env
	if file, err = env.GetEnv(filepath.Join(dir, EnvFile)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return
		}
		err = nil
	} else {
		c = &C{}
		if err = goenv.Load(c, &goenv.Options{Source: file.Over(proc), SliceSep: ","}); chk.E(err) {
			return
		}
	}
	c.ConfigDir = dir
	err = c.Validate()
	return
}

// Validate checks the values that have a fixed set of choices.
func (c *C) Validate() (err error) {
	if !oneOf(c.LogLevel, lol.LevelNames) {
		return errorf.E("unknown log level '%s', must be one of %v", c.LogLevel, lol.LevelNames)
	}
	if !ValidFormat(c.Format) {
		return errorf.E("unknown format '%s', must be one of %v", c.Format, Formats)
	}
	if c.Jobs < 0 {
		return errorf.E("jobs must not be negative, got %d", c.Jobs)
	}
	return
}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool { return oneOf(f, Formats) }

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// PrintEnv writes the configuration as a shell script that can be saved as the
// .env file and edited.
func (c *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(c, w) }

// PrintHelp writes the environment variables that configure the tool, with
// their defaults and what they do.
func (c *C) PrintHelp(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\nenvironment variables that configure %s\n\n", c.AppName)
	goenv.Usage(c, w, nil)
	_, _ = fmt.Fprintf(w, "\nthey can also be set in %s\n",
		filepath.Join(c.ConfigDir, EnvFile))
}
