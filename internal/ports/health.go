package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when attempting to register a health checker
// with a name that is already registered.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
// Adapters register themselves with the HealthRegistry at startup; the
// molecule catalog, for example, reports unhealthy when it holds no records.
type HealthChecker interface {
	// Name identifies the component in readiness reports.
	Name() string

	// Check returns nil when the component can serve requests.
	// Implementations must honor ctx cancellation.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates the checks behind the readiness probe.
type HealthRegistry interface {
	// Register adds checker at startup. It returns ErrDuplicateChecker when
	// the name is taken.
	Register(checker HealthChecker) error

	// CheckAll runs every check under ctx and aggregates the results.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// Healthy reports whether every check passed.
func (r *HealthResult) Healthy() bool {
	return r.Status == HealthStatusHealthy
}

// CheckResult contains the result of a single health check.
// Message carries the failure text and is empty for healthy components.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is a concurrency-safe HealthRegistry.
// Checks run in registration order, in parallel.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
	names    map[string]struct{}
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{names: make(map[string]struct{})}
}

// Register adds checker. Names must be unique.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, dup := r.names[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.names[name] = struct{}{}
	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every registered check and aggregates the results. The
// overall status is unhealthy when any check fails.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			results[i] = runCheck(ctx, c)
			return nil
		})
	}

	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, c := range checkers {
		out.Checks[c.Name()] = results[i]
		if results[i].Status != HealthStatusHealthy {
			out.Status = HealthStatusUnhealthy
		}
	}

	return out
}

func runCheck(ctx context.Context, c HealthChecker) *CheckResult {
	start := time.Now()
	err := c.Check(ctx)

	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
