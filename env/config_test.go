package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte(`#!/usr/bin/env bash
# comment
export NIP19_FORMAT=json
NIP19_RELAYS = wss://a.example.com,wss://b.example.com

not a setting
NIP19_APP_NAME='my app'
`), 0o600)
	require.NoError(t, err)
	env, err := GetEnv(path)
	require.NoError(t, err)
	require.Equal(t, Env{
		"NIP19_FORMAT":   "json",
		"NIP19_RELAYS":   "wss://a.example.com,wss://b.example.com",
		"NIP19_APP_NAME": "my app",
	}, env)

	_, err = GetEnv(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOver(t *testing.T) {
	file := Env{"A": "file", "B": "file"}
	merged := file.Over(FromEnviron([]string{"B=proc", "C=x=y", "junk"}))
	require.Equal(t, Env{"A": "file", "B": "proc", "C": "x=y"}, merged)
	require.Equal(t, "file", file["B"], "receiver is not modified")
	v, ok := merged.LookupEnv("C")
	require.True(t, ok)
	require.Equal(t, "x=y", v)
	_, ok = merged.LookupEnv("D")
	require.False(t, ok)
}
