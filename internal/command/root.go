// Package command provides the CLI command definitions for lpbench.
package command

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/homier/lpmap/internal/bench"
	"github.com/homier/lpmap/internal/config"
)

// Version is set via ldflags.
var Version = "dev"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "lpbench",
		Usage:   "Benchmark the lpmap hash table",
		Version: Version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			RunCommand(),
			ConcurrentCommand(),
			CompareCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: trace, debug, info, warn, error",
		},
	}
}

func workloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "items",
			Aliases: []string{"n"},
			Usage:   "Number of keys",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Number of concurrent workers",
		},
		&cli.StringFlag{
			Name:  "hash",
			Usage: "Key hash: murmur3, xxhash, maphash",
		},
		&cli.StringFlag{
			Name:  "keys",
			Usage: "Key generator: sequential, ulid",
		},
		&cli.BoolFlag{
			Name:  "reserve",
			Usage: "Reserve capacity for all keys before inserting",
		},
	}
}

func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Insert, look up and delete keys sequentially",
		Flags: workloadFlags(),
		Action: workload(func(ctx context.Context, r *bench.Runner) (*bench.Report, error) {
			return r.Run(ctx)
		}),
	}
}

func ConcurrentCommand() *cli.Command {
	return &cli.Command{
		Name:  "concurrent",
		Usage: "Insert and look up disjoint key ranges from several workers",
		Flags: workloadFlags(),
		Action: workload(func(ctx context.Context, r *bench.Runner) (*bench.Report, error) {
			return r.Concurrent(ctx)
		}),
	}
}

func CompareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Run the sequential phases against lpmap and a pb.MapOf baseline",
		Flags: workloadFlags(),
		Action: workload(func(ctx context.Context, r *bench.Runner) (*bench.Report, error) {
			return r.Compare(ctx)
		}),
	}
}

func workload(fn func(context.Context, *bench.Runner) (*bench.Report, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := LoadConfig(c)
		if err != nil {
			return err
		}

		logger := hclog.New(&hclog.LoggerOptions{
			Name:   "lpbench",
			Level:  hclog.LevelFromString(cfg.LogLevel),
			Output: c.App.ErrWriter,
		})

		logger.Debug("configuration loaded", "items", cfg.Items, "workers", cfg.Workers,
			"hash", cfg.Hash, "keys", cfg.Keys, "reserve", cfg.Reserve)

		runner, err := bench.NewRunner(cfg, logger)
		if err != nil {
			return err
		}

		report, err := fn(c.Context, runner)
		if err != nil {
			return err
		}

		for _, res := range report.Results {
			fmt.Fprintln(c.App.Writer, res.String())
		}

		for _, m := range report.Metrics {
			logger.Info("metric", "name", m.Name, "value", m.Value)
		}

		return nil
	}
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"items":     "items",
	"workers":   "workers",
	"hash":      "hash",
	"keys":      "keys",
	"reserve":   "reserve",
	"log-level": "log_level",
}

// LoadConfig merges defaults, the config file, LPBENCH_* variables and the
// flags explicitly set on the command line.
func LoadConfig(c *cli.Context) (config.Config, error) {
	flags := make(map[string]any)

	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}

		flags[key] = c.Value(name)
	}

	return config.NewLoader(config.WithConfigFile(c.String("config"))).Load(flags)
}
