package health

import (
	"context"
	"time"
)

// ProbeTimeout bounds a single probe. One failed attempt is final for the
// request; there is no retry loop.
const ProbeTimeout = 3 * time.Second

// Probe runs a liveness check against one dependency. Any failure (network,
// auth, timeout) is converted into the returned Check; a probe never
// propagates an error to its caller.
func Probe(ctx context.Context, dep Dependency) Check {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	check := Check{Name: dep.Name()}
	if err := dep.Ping(ctx); err != nil {
		check.Error = err.Error()
		return check
	}
	check.Reachable = true
	return check
}

// ProbeDetail runs a liveness check and, when the dependency is up, collects
// its metadata. A metadata failure after a successful ping (an unexpected
// reply shape, a dropped connection) is treated the same as unreachable.
func ProbeDetail(ctx context.Context, dep Dependency) Check {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	check := Check{Name: dep.Name()}
	if err := dep.Ping(ctx); err != nil {
		check.Error = err.Error()
		return check
	}

	detail, err := dep.Metadata(ctx)
	if err != nil {
		check.Error = "metadata: " + err.Error()
		return check
	}

	check.Reachable = true
	check.Detail = detail
	return check
}
