// Package bench drives lpmap through the lpbench workloads.
package bench

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/homier/lpmap"
	"github.com/homier/lpmap/internal/config"
)

// ctxCheckEvery is how many operations run between context checks.
const ctxCheckEvery = 4096

// Report is everything a workload produced.
type Report struct {
	Results []Result
	Stats   lpmap.Stats
	Metrics []Metric
}

type Runner struct {
	cfg     config.Config
	logger  hclog.Logger
	keys    []string
	missing []string
}

func NewRunner(cfg config.Config, logger hclog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	keys, err := Keys(cfg.Keys, cfg.Items)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:     cfg,
		logger:  logger,
		keys:    keys,
		missing: MissingKeys(cfg.Items),
	}, nil
}

func (r *Runner) newMap() (*lpmap.Map[string, int], error) {
	hash, err := HashFunc(r.cfg.Hash)
	if err != nil {
		return nil, err
	}

	m, err := lpmap.New(
		lpmap.WithHashFunc[string, int](hash),
		lpmap.WithLogger[string, int](r.logger.Named("lpmap")),
	)
	if err != nil {
		return nil, fmt.Errorf("create map: %w", err)
	}

	if r.cfg.Reserve {
		if err := m.Reserve(len(r.keys)); err != nil {
			m.Destroy()
			return nil, fmt.Errorf("reserve %d: %w", len(r.keys), err)
		}
	}

	return m, nil
}

// Run executes the sequential phases against lpmap and exports its stats.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	m, err := r.newMap()
	if err != nil {
		return nil, err
	}
	defer m.Destroy()

	results, err := r.phases(ctx, "lpmap", lpmapStore{m: m}, func() {
		r.logger.Info("populated", "stats", m.Stats().String())
	})
	if err != nil {
		return nil, err
	}

	metrics, err := Export("lpbench", r.cfg.Hash, m)
	if err != nil {
		return nil, err
	}

	return &Report{Results: results, Stats: m.Stats(), Metrics: metrics}, nil
}

// Compare executes the sequential phases against lpmap and the pb baseline.
func (r *Runner) Compare(ctx context.Context) (*Report, error) {
	report, err := r.Run(ctx)
	if err != nil {
		return nil, err
	}

	presize := 0
	if r.cfg.Reserve {
		presize = len(r.keys)
	}

	baseline, err := r.phases(ctx, "pb", newPBStore(presize), nil)
	if err != nil {
		return nil, err
	}

	report.Results = append(report.Results, baseline...)

	return report, nil
}

// phases runs insert, lookup of present keys, lookup of absent keys and
// delete, in that order. populated, if set, runs after the insert phase.
func (r *Runner) phases(ctx context.Context, name string, s store, populated func()) ([]Result, error) {
	var results []Result

	run := func(phase string, keys []string, op func(i int, key string) error) error {
		res, err := measure(name+"/"+phase, len(keys), func() error {
			for i, key := range keys {
				if i%ctxCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				if err := op(i, key); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}

		r.logger.Info("phase done", "phase", res.Phase, "ops", res.Ops,
			"seconds", res.Elapsed.Seconds(), "ops_per_sec", res.OpsPerSec())
		results = append(results, res)

		return nil
	}

	err := run("insert", r.keys, func(i int, key string) error {
		return s.Store(key, i)
	})
	if err != nil {
		return nil, err
	}

	if got := s.Len(); got != len(r.keys) {
		return nil, fmt.Errorf("%s: expected %d entries after insert, got %d", name, len(r.keys), got)
	}

	if populated != nil {
		populated()
	}

	err = run("lookup", r.keys, func(i int, key string) error {
		if v, ok := s.Load(key); !ok || v != i {
			return fmt.Errorf("key %q: got (%d, %t), want (%d, true)", key, v, ok, i)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = run("lookup-miss", r.missing, func(_ int, key string) error {
		if _, ok := s.Load(key); ok {
			return fmt.Errorf("key %q: unexpectedly present", key)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = run("delete", r.keys, func(_ int, key string) error {
		if !s.Delete(key) {
			return fmt.Errorf("key %q: not deleted", key)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if got := s.Len(); got != 0 {
		return nil, fmt.Errorf("%s: expected empty map after delete, got %d entries", name, got)
	}

	return results, nil
}

// Concurrent splits the keys into one disjoint range per worker. Every worker
// inserts its range and then reads it back.
func (r *Runner) Concurrent(ctx context.Context) (*Report, error) {
	m, err := r.newMap()
	if err != nil {
		return nil, err
	}
	defer m.Destroy()

	workers := min(r.cfg.Workers, len(r.keys))
	per := len(r.keys) / workers
	total := per * workers

	res, err := measure("lpmap/concurrent", 2*total, func() error {
		g, gctx := errgroup.WithContext(ctx)

		for w := range workers {
			keys := r.keys[w*per : (w+1)*per]
			base := w * per

			g.Go(func() error {
				for i, key := range keys {
					if i%ctxCheckEvery == 0 {
						if err := gctx.Err(); err != nil {
							return err
						}
					}

					if err := m.Set(key, base+i); err != nil {
						return fmt.Errorf("worker %d: set %q: %w", w, key, err)
					}
				}

				for i, key := range keys {
					if v, ok := m.Get(key); !ok || v != base+i {
						return fmt.Errorf("worker %d: key %q: got (%d, %t), want (%d, true)", w, key, v, ok, base+i)
					}
				}

				return nil
			})
		}

		return g.Wait()
	})
	if err != nil {
		return nil, err
	}

	if got := m.Len(); got != total {
		return nil, fmt.Errorf("expected %d entries, got %d", total, got)
	}

	r.logger.Info("phase done", "phase", res.Phase, "workers", workers, "ops", res.Ops,
		"seconds", res.Elapsed.Seconds(), "ops_per_sec", res.OpsPerSec())

	metrics, err := Export("lpbench", r.cfg.Hash, m)
	if err != nil {
		return nil, err
	}

	return &Report{Results: []Result{res}, Stats: m.Stats(), Metrics: metrics}, nil
}
