package config

import (
	"fmt"
	"os"

	"chuckscope/pkg/symbol"

	"github.com/BurntSushi/toml"
)

type Config struct {
	WordSize   uint            `toml:"word_size"`   // size of references and objects
	Buckets    int             `toml:"buckets"`     // hash chains of the interner
	MaxSymbols int             `toml:"max_symbols"` // 0 = unlimited
	Builtins   []string        `toml:"builtins"`    // extra predeclared globals
	Sizes      map[string]uint `toml:"sizes"`       // primitive type -> bytes
}

// Default returns the configuration used without a config file
func Default() *Config {
	return &Config{
		WordSize: 8,
		Buckets:  symbol.DefaultBuckets,
	}
}

// Load reads a TOML config file, filling unset fields with defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values a config file may get wrong
func (c *Config) Validate() error {
	if c.WordSize == 0 {
		return fmt.Errorf("word_size must be positive")
	}
	if c.Buckets <= 0 {
		return fmt.Errorf("buckets must be positive, got %d", c.Buckets)
	}
	if c.MaxSymbols < 0 {
		return fmt.Errorf("max_symbols must not be negative, got %d", c.MaxSymbols)
	}
	for name := range c.Sizes {
		switch name {
		case "int", "float", "dur", "time":
		default:
			return fmt.Errorf("sizes: %q is not a primitive type", name)
		}
	}
	return nil
}
