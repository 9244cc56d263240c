package config

import (
	"os"
	"path/filepath"
	"testing"

	"chuckscope/pkg/symbol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "chuckscope.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
word_size = 4
buckets = 101
builtins = ["myGlobal", "Synth"]

[sizes]
float = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint(4), cfg.WordSize)
	assert.Equal(t, 101, cfg.Buckets)
	assert.Equal(t, 0, cfg.MaxSymbols)
	assert.Equal(t, []string{"myGlobal", "Synth"}, cfg.Builtins)
	assert.Equal(t, map[string]uint{"float": 4}, cfg.Sizes)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `max_symbols = 10`))
	require.NoError(t, err)

	assert.Equal(t, uint(8), cfg.WordSize)
	assert.Equal(t, symbol.DefaultBuckets, cfg.Buckets)
	assert.Equal(t, 10, cfg.MaxSymbols)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `word_size = `},
		{"zero buckets", `buckets = 0`},
		{"negative limit", `max_symbols = -1`},
		{"object size", "[sizes]\nstring = 4"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
