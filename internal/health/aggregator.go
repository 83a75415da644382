package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Aggregator probes a fixed, ordered set of dependencies and merges the
// outcomes into one report. The set is established at startup; Checks in the
// produced report always follow declaration order, not completion order.
type Aggregator struct {
	deps []Dependency
}

// NewAggregator builds an aggregator over the given dependencies. An
// aggregator with no dependencies is valid and always reports healthy.
func NewAggregator(deps ...Dependency) *Aggregator {
	return &Aggregator{deps: deps}
}

// Aggregate probes all dependencies for liveness and merges the results.
// Probes run concurrently; one failing probe never prevents the others from
// running or being reported.
func (a *Aggregator) Aggregate(ctx context.Context) Report {
	return a.run(ctx, Probe)
}

// AggregateDetail is Aggregate with per-dependency metadata included on
// reachable checks.
func (a *Aggregator) AggregateDetail(ctx context.Context) Report {
	return a.run(ctx, ProbeDetail)
}

func (a *Aggregator) run(ctx context.Context, probe func(context.Context, Dependency) Check) Report {
	checks := make([]Check, len(a.deps))

	var g errgroup.Group
	for i, dep := range a.deps {
		i, dep := i, dep
		g.Go(func() error {
			checks[i] = probe(ctx, dep)
			return nil
		})
	}
	// Probes report failure as data, never as an error.
	_ = g.Wait()

	return Report{
		Status:      statusOf(checks),
		Checks:      checks,
		GeneratedAt: time.Now().UTC(),
	}
}
