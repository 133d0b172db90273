package keyvalue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string   `env:"T_NAME"`
	Count   int      `env:"T_COUNT"`
	Relays  []string `env:"T_RELAYS"`
	Debug   bool     `env:"T_DEBUG"`
	private string
}

func TestPrintEnv(t *testing.T) {
	cfg := &testConfig{Name: "it's here", Count: 3,
		Relays: []string{"wss://a", "wss://b"}, private: "x"}
	buf := new(bytes.Buffer)
	PrintEnv(cfg, buf)
	require.Equal(t, `#!/usr/bin/env bash
export T_COUNT=3
export T_DEBUG=false
export T_NAME='it'\''s here'
export T_RELAYS=wss://a,wss://b
`, buf.String())
}

func TestEnvKVValue(t *testing.T) {
	kvs := EnvKV(testConfig{Name: "n"})
	require.Len(t, kvs, 4)
	require.Equal(t, KV{"T_NAME", "n"}, kvs[0])
	require.Equal(t, KV{"T_RELAYS", ""}, kvs[2])
}
