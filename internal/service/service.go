// Package service bridges configured service definitions to lifecycle
// controllers. Each configured service runs its command once per work
// cycle; the lifecycle controller decides when cycles happen and when
// the service stops.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/tessro/cadence/internal/config"
	"github.com/tessro/cadence/internal/lifecycle"
)

// NewController builds a lifecycle controller for a configured service.
// The work callback runs the service's command once and fails the run if
// the command fails, so a broken command stops the service rather than
// spinning.
func NewController(name string, sc config.ServiceConfig, notify func(lifecycle.Event), logger *slog.Logger) (*lifecycle.Controller, error) {
	if logger == nil {
		logger = slog.Default()
	}
	runner := &cycleRunner{
		name:    name,
		command: sc.Command,
		args:    sc.Args,
		dir:     sc.Dir,
		timeout: sc.CycleTimeout.Std(),
		logger:  logger.With("service", name),
	}
	return lifecycle.New(lifecycle.Options{
		Name:         name,
		MarkerPath:   sc.PIDFile,
		Work:         runner.runOnce,
		SleepTime:    sc.Sleep.Std(),
		PollInterval: sc.PollInterval.Std(),
		Notify:       notify,
		Logger:       logger,
	})
}

// NewQueryController builds a controller without a work callback, for
// stop and status operations against a service owned by another process.
func NewQueryController(name string, sc config.ServiceConfig, notify func(lifecycle.Event), logger *slog.Logger) (*lifecycle.Controller, error) {
	return lifecycle.New(lifecycle.Options{
		Name:       name,
		MarkerPath: sc.PIDFile,
		Notify:     notify,
		Logger:     logger,
	})
}

// cycleRunner executes one command invocation per work cycle.
type cycleRunner struct {
	name    string
	command string
	args    []string
	dir     string
	timeout time.Duration
	logger  *slog.Logger
}

// runOnce runs the configured command to completion. A non-zero exit or
// a timeout is a work-cycle failure.
func (r *cycleRunner) runOnce() error {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.command, r.args...)
	cmd.Dir = r.dir

	start := time.Now()
	out, err := cmd.CombinedOutput()
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			r.logger.Error("work cycle timed out", "timeout", r.timeout, "output", string(out))
			return fmt.Errorf("command timed out after %s", r.timeout)
		}
		r.logger.Error("work cycle command failed", "error", err, "output", string(out))
		return fmt.Errorf("run %s: %w", r.command, err)
	}

	r.logger.Debug("work cycle complete", "elapsed", elapsed, "output", string(out))
	return nil
}
