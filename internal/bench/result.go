package bench

import (
	"fmt"
	"time"
)

// Result is the outcome of a single timed phase.
type Result struct {
	Phase   string
	Ops     int
	Elapsed time.Duration
}

func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Ops) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d ops in %.3fs (%.0f ops/sec)", r.Phase, r.Ops, r.Elapsed.Seconds(), r.OpsPerSec())
}

func measure(phase string, ops int, fn func() error) (Result, error) {
	start := time.Now()
	if err := fn(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", phase, err)
	}

	return Result{Phase: phase, Ops: ops, Elapsed: time.Since(start)}, nil
}
