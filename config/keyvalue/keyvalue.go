// Package keyvalue provides tools to convert any config struct using go-simpler/env struct
// tagged configuration structures into a sortable slice of key-values, and a printer to render
// them as a bash shell script to set the variables from a configuration file.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"time"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns a struct with `env` keys (used with go-simpler/env) into a standard formatted
// environment variable key/value pair list, one per line. A pointer to a struct is followed.
// Fields without an env tag are skipped.
func EnvKV(cfg any) (m KVSlice) {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch f := v.Field(i).Interface().(type) {
		case string:
			val = f
		case int, int64, int32, uint64, uint32, bool, time.Duration:
			val = fmt.Sprint(f)
		case []string:
			val = strings.Join(f, ",")
		}
		m = append(m, KV{k, val})
	}
	return
}

// quote wraps a value in single quotes when the shell would otherwise split or
// expand it.
func quote(v string) string {
	if !strings.ContainsAny(v, " \t\"'$`\\;&|<>*?#") {
		return v
	}
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

// PrintEnv renders the key/values of a config struct to a provided io.Writer as a
// script that can be sourced or saved as the .env file.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, quote(v.Value))
	}
}
