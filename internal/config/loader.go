// Package config loads lpbench configuration.
//
// Sources are merged in increasing priority: built-in defaults, a YAML file,
// LPBENCH_* environment variables and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "LPBENCH_"

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("config: ReadBytes not supported by map provider, use Read() instead")

// Loader loads configuration from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges every source and unmarshals the result into a Config.
// flags holds only the flags the user actually set, keyed like the YAML file.
func (l *Loader) Load(flags map[string]any) (Config, error) {
	var cfg Config

	if err := l.loadMap(Default().toMap()); err != nil {
		return cfg, fmt.Errorf("load defaults: %w", err)
	}

	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", l.filePath, err)
		}
	}

	// LPBENCH_LOG_LEVEL -> log_level
	envTransformer := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", envTransformer), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	if len(flags) > 0 {
		if err := l.loadMap(flags); err != nil {
			return cfg, fmt.Errorf("load flags: %w", err)
		}
	}

	if err := l.k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (l *Loader) loadMap(data map[string]any) error {
	return l.k.Load(mapProvider(data), nil)
}

// mapProvider is a koanf provider backed by a plain map.
type mapProvider map[string]any

// ReadBytes returns an error as map provider doesn't support byte serialization.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the configuration map.
func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
