// Package env is an implementation of the env.Source interface from
// go-simpler.org
package env

import (
	"os"
	"strings"

	"nostrid.lol/chk"
)

// Env is a key/value map used to represent environment variables. This is
// implemented for go-simpler.org library.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format - ie, key usually in all upper
// case no spaces and words separated by underscore, value can have any
// separator, but usually comma, for an array of values.
//
// Blank lines, comments and lines without an = are skipped, and a leading
// export is dropped, so the script printed by keyvalue.PrintEnv reads back.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		env[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return
}

// unquote removes one pair of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// FromEnviron builds an Env from KEY=value strings as given by os.Environ.
func FromEnviron(environ []string) (env Env) {
	env = make(Env, len(environ))
	for _, kv := range environ {
		if key, value, found := strings.Cut(kv, "="); found {
			env[key] = value
		}
	}
	return
}

// Over returns a copy of env with the values in top replacing its own.
func (env Env) Over(top Env) (merged Env) {
	merged = make(Env, len(env)+len(top))
	for k, v := range env {
		merged[k] = v
	}
	for k, v := range top {
		merged[k] = v
	}
	return
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}
