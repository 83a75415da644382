package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Mock dependency with pluggable behavior, shared by the probe and
// aggregator tests.
type mockDependency struct {
	name         string
	pingFunc     func(ctx context.Context) error
	metadataFunc func(ctx context.Context) (map[string]string, error)
}

func (m *mockDependency) Name() string { return m.name }

func (m *mockDependency) Ping(ctx context.Context) error {
	if m.pingFunc == nil {
		return nil
	}
	return m.pingFunc(ctx)
}

func (m *mockDependency) Metadata(ctx context.Context) (map[string]string, error) {
	if m.metadataFunc == nil {
		return map[string]string{}, nil
	}
	return m.metadataFunc(ctx)
}

func TestProbe_Reachable(t *testing.T) {
	dep := &mockDependency{name: "database"}

	check := Probe(context.Background(), dep)

	if check.Name != "database" {
		t.Errorf("Expected name database, got %s", check.Name)
	}
	if !check.Reachable {
		t.Error("Expected reachable check")
	}
	if check.Error != "" {
		t.Errorf("Expected empty error, got %q", check.Error)
	}
	if check.Detail != nil {
		t.Errorf("Liveness probe should not collect metadata, got %v", check.Detail)
	}
}

func TestProbe_UnreachableIsDataNotFailure(t *testing.T) {
	dep := &mockDependency{
		name: "redis",
		pingFunc: func(ctx context.Context) error {
			return errors.New("dial tcp: connection refused")
		},
	}

	check := Probe(context.Background(), dep)

	if check.Reachable {
		t.Error("Expected unreachable check")
	}
	if check.Error != "dial tcp: connection refused" {
		t.Errorf("Expected ping error to be reported, got %q", check.Error)
	}
}

func TestProbe_AppliesTimeout(t *testing.T) {
	dep := &mockDependency{
		name: "database",
		pingFunc: func(ctx context.Context) error {
			deadline, ok := ctx.Deadline()
			if !ok {
				t.Error("Expected probe context to carry a deadline")
				return nil
			}
			if remaining := time.Until(deadline); remaining > ProbeTimeout {
				t.Errorf("Deadline %v exceeds probe timeout %v", remaining, ProbeTimeout)
			}
			return nil
		},
	}

	Probe(context.Background(), dep)
}

func TestProbeDetail_CollectsMetadata(t *testing.T) {
	dep := &mockDependency{
		name: "redis",
		metadataFunc: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{DetailVersion: "7.2.4", DetailKeyCount: "12"}, nil
		},
	}

	check := ProbeDetail(context.Background(), dep)

	if !check.Reachable {
		t.Fatalf("Expected reachable check, got error %q", check.Error)
	}
	if check.Detail[DetailVersion] != "7.2.4" {
		t.Errorf("Expected version detail, got %v", check.Detail)
	}
	if check.Detail[DetailKeyCount] != "12" {
		t.Errorf("Expected key count detail, got %v", check.Detail)
	}
}

func TestProbeDetail_MetadataFailureCountsAsUnreachable(t *testing.T) {
	dep := &mockDependency{
		name: "redis",
		metadataFunc: func(ctx context.Context) (map[string]string, error) {
			return nil, errors.New("INFO reply missing redis_version")
		},
	}

	check := ProbeDetail(context.Background(), dep)

	if check.Reachable {
		t.Error("Expected metadata failure to degrade the check")
	}
	if check.Error != "metadata: INFO reply missing redis_version" {
		t.Errorf("Expected wrapped metadata error, got %q", check.Error)
	}
	if check.Detail != nil {
		t.Errorf("Expected no detail on failed check, got %v", check.Detail)
	}
}

func TestProbeDetail_PingFailureSkipsMetadata(t *testing.T) {
	metadataCalled := false
	dep := &mockDependency{
		name: "database",
		pingFunc: func(ctx context.Context) error {
			return errors.New("timeout")
		},
		metadataFunc: func(ctx context.Context) (map[string]string, error) {
			metadataCalled = true
			return nil, nil
		},
	}

	check := ProbeDetail(context.Background(), dep)

	if check.Reachable {
		t.Error("Expected unreachable check")
	}
	if metadataCalled {
		t.Error("Metadata must not be queried when the ping fails")
	}
}
