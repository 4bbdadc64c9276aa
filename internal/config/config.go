package config

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"
)

var (
	HashNames = []string{"murmur3", "xxhash", "maphash"}
	KeyKinds  = []string{"sequential", "ulid"}
)

// Config is the lpbench configuration. The koanf tags double as YAML keys
// and, upper-cased with the LPBENCH_ prefix, as environment variable names.
type Config struct {
	// Items is the number of distinct keys each workload uses.
	Items int `koanf:"items"`
	// Workers is the number of goroutines in the concurrent workload.
	Workers int `koanf:"workers"`
	// Hash selects the key hash: murmur3, xxhash or maphash.
	Hash string `koanf:"hash"`
	// Keys selects the key generator: sequential ("key-N") or ulid.
	Keys string `koanf:"keys"`
	// Reserve calls Reserve(Items) on the map before inserting.
	Reserve bool `koanf:"reserve"`
	// LogLevel is any level hclog.LevelFromString accepts.
	LogLevel string `koanf:"log_level"`
}

func Default() Config {
	return Config{
		Items:    1000000,
		Workers:  10,
		Hash:     "murmur3",
		Keys:     "sequential",
		LogLevel: "info",
	}
}

func (c Config) Validate() error {
	if c.Items <= 0 {
		return fmt.Errorf("config: items must be positive, got %d", c.Items)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}

	if !slices.Contains(HashNames, c.Hash) {
		return fmt.Errorf("config: unknown hash %q, want one of %v", c.Hash, HashNames)
	}

	if !slices.Contains(KeyKinds, c.Keys) {
		return fmt.Errorf("config: unknown key generator %q, want one of %v", c.Keys, KeyKinds)
	}

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}

	return nil
}

func (c Config) toMap() map[string]any {
	return map[string]any{
		"items":     c.Items,
		"workers":   c.Workers,
		"hash":      c.Hash,
		"keys":      c.Keys,
		"reserve":   c.Reserve,
		"log_level": c.LogLevel,
	}
}
