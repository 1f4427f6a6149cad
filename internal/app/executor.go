package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
)

// Operations run as a five-step pipeline: Validate → Perform → Verify → Archive → Respond.
//
//   1. VALIDATE  - reject bad input before any work is done
//   2. PERFORM   - do the work (catalog lookup, heuristic synthesis)
//   3. VERIFY    - check the result independently (diagram rendered, prefix present)
//   4. ARCHIVE   - record the verified outcome (lookup counters)
//   5. RESPOND   - shape the result for the caller
//
// A failing step aborts the pipeline and is reported as an *ExecutionError
// carrying the step name. Each step is also recorded as an event on the
// active span.

// ExecutionStep represents a step in the transactional pattern.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps a step failure with the step where it occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
	}

	return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// stepFailure is the message and log level recorded when a step fails.
var stepFailure = map[ExecutionStep]struct {
	message string
	level   slog.Level
}{
	StepValidate: {"input validation failed", slog.LevelWarn},
	StepPerform:  {"operation failed", slog.LevelError},
	StepVerify:   {"verification failed", slog.LevelError},
	StepArchive:  {"recording outcome failed", slog.LevelError},
	StepRespond:  {"response shaping failed", slog.LevelWarn},
}

// Executor runs operations through the five-step pipeline.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor returns an executor that logs with logger when the request
// context carries none.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation is one use case split into pipeline steps. Nil steps are
// skipped and pass the zero value along.
type Operation[I, P, V, O any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op on input. Failures of the first four steps are returned
// as *ExecutionError; a Respond failure is returned unwrapped.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var (
		zero      O
		performed P
		verified  V
		result    O
	)

	logger := exec.logger
	if logging.HasLogger(ctx) {
		logger = logging.FromContext(ctx)
	}

	r := runner{logger: logger.With(slog.String("operation", op.Name))}
	start := time.Now()

	if op.Validate != nil {
		if err := r.step(ctx, StepValidate, func() error { return op.Validate(ctx, input) }); err != nil {
			return zero, err
		}
	}

	if op.Perform != nil {
		if err := r.step(ctx, StepPerform, func() (err error) {
			performed, err = op.Perform(ctx, input)
			return err
		}); err != nil {
			return zero, err
		}
	}

	if op.Verify != nil {
		if err := r.step(ctx, StepVerify, func() (err error) {
			verified, err = op.Verify(ctx, input, performed)
			return err
		}); err != nil {
			return zero, err
		}
	}

	if op.Archive != nil {
		if err := r.step(ctx, StepArchive, func() error { return op.Archive(ctx, input, verified) }); err != nil {
			return zero, err
		}
	}

	if op.Respond != nil {
		if err := r.step(ctx, StepRespond, func() (err error) {
			result, err = op.Respond(ctx, input, verified)
			return err
		}); err != nil {
			return zero, err
		}
	}

	r.logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

type runner struct {
	logger *slog.Logger
}

// step runs fn as the named step, recording a span event and trace logs.
func (r runner) step(ctx context.Context, step ExecutionStep, fn func() error) error {
	trace.SpanFromContext(ctx).AddEvent("step", trace.WithAttributes(
		attribute.String("step", string(step)),
	))
	r.logger.Log(ctx, logging.LevelTrace, "step started", slog.String("step", string(step)))

	err := fn()
	if err == nil {
		r.logger.Log(ctx, logging.LevelTrace, "step done", slog.String("step", string(step)))
		return nil
	}

	failure := stepFailure[step]
	r.logger.Log(ctx, failure.level, failure.message,
		slog.String("step", string(step)),
		slog.Any("error", err),
	)

	if step == StepRespond {
		return err
	}

	return &ExecutionError{Step: step, Message: failure.message, Cause: err}
}

// GetExecutionStep returns the failing step recorded in err.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		return "", false
	}

	return execErr.Step, true
}
