package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tessro/cadence/internal/logging"
	"github.com/tessro/cadence/internal/paths"
)

// DefaultPollInterval bounds how long a sleeping service takes to notice
// an externally written shutdown token.
const DefaultPollInterval = 2 * time.Second

// stopPollInterval is how often Stop re-checks status while waiting for
// the running process to exit and remove its marker.
const stopPollInterval = time.Second

// WorkFunc is one unit of the caller's repeatable work. It must return
// within a short, bounded duration so shutdown stays responsive. It may
// call Shutdown on its own controller to request cooperative self-stop.
type WorkFunc func() error

// Options configures a Controller. Name is required; everything else has
// a default.
type Options struct {
	// Name is the service's display name. The default marker path is
	// derived from its slug.
	Name string

	// MarkerPath overrides where the marker file lives.
	MarkerPath string

	// Work is the unit of work invoked once per cycle. Required for
	// Start and Restart; controllers built only to stop or query a
	// service may omit it.
	Work WorkFunc

	// SleepTime is the minimum gap between work cycles. Zero means
	// cycles run back to back.
	SleepTime time.Duration

	// PollInterval caps each sleep inside the work loop, bounding
	// shutdown latency independently of SleepTime. Defaults to
	// DefaultPollInterval.
	PollInterval time.Duration

	// AfterStart runs once after the marker is written, before the work
	// loop begins.
	AfterStart func() error

	// BeforeStop runs once before the shutdown token is written.
	BeforeStop func() error

	// Notify receives lifecycle events for display. Optional; log
	// records are emitted regardless.
	Notify func(Event)

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Controller drives the lifecycle of one named singleton service. All
// state lives in the marker file; the controller itself holds only
// immutable identity and collaborators, so a fresh controller in another
// process gives the same answers about the same service.
type Controller struct {
	name         string
	markerPath   string
	work         WorkFunc
	sleepTime    time.Duration
	pollInterval time.Duration
	afterStart   func() error
	beforeStop   func() error
	notify       func(Event)
	logger       *slog.Logger

	// OS collaborators, swappable in tests.
	ownPID func() int
	alive  func(pid int) bool
	now    func() time.Time
	sleep  func(d time.Duration)
}

// New builds a Controller from opts.
func New(opts Options) (*Controller, error) {
	if opts.Name == "" {
		return nil, errors.New("lifecycle: service name required")
	}
	if paths.Slugify(opts.Name) == "" {
		return nil, errors.New("lifecycle: service name has no usable characters")
	}
	if opts.SleepTime < 0 || opts.PollInterval < 0 {
		return nil, errors.New("lifecycle: negative interval")
	}

	markerPath := opts.MarkerPath
	if markerPath == "" {
		markerPath = paths.MarkerPath(opts.Name)
	}
	pollInterval := opts.PollInterval
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		name:         opts.Name,
		markerPath:   markerPath,
		work:         opts.Work,
		sleepTime:    opts.SleepTime,
		pollInterval: pollInterval,
		afterStart:   opts.AfterStart,
		beforeStop:   opts.BeforeStop,
		notify:       opts.Notify,
		logger:       logger.With("service", opts.Name),
		ownPID:       os.Getpid,
		alive:        processAlive,
		now:          time.Now,
		sleep:        time.Sleep,
	}, nil
}

// Name returns the service's display name.
func (c *Controller) Name() string {
	return c.name
}

// MarkerPath returns the marker file path this controller coordinates on.
func (c *Controller) MarkerPath() string {
	return c.markerPath
}

// Status derives the service's current lifecycle state.
func (c *Controller) Status() Status {
	return deriveStatus(c.markerPath, c.ownPID(), c.alive)
}

// IsRunning reports whether a live process (this one or another) owns the
// service.
func (c *Controller) IsRunning() bool {
	s := c.Status()
	return s == StatusRunning || s == StatusOtherRunning
}

// CurrentPID returns the PID recorded in the marker file. ok is false
// when the file is absent or its content has no parseable PID.
func (c *Controller) CurrentPID() (pid int, ok bool) {
	m := readMarker(c.markerPath)
	return m.pid, m.pid != 0
}

// Start claims the service and runs the work loop until shutdown is
// observed. A live instance makes Start a no-op; a stale marker is
// cleaned up first. The marker is removed on every exit path (normal
// shutdown, work failure, panic) as long as this process still owns it.
func (c *Controller) Start() (err error) {
	if c.work == nil {
		return errors.New("lifecycle: work callback required")
	}

	switch c.Status() {
	case StatusRunning, StatusOtherRunning:
		c.logger.Info("already running, not starting")
		c.emit(EventAlreadyRunning)
		return nil
	case StatusStale:
		c.cleanStale()
	}

	if err := writeMarker(c.markerPath, c.ownPID()); err != nil {
		return fmt.Errorf("claim service %s: %w", c.name, err)
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("work cycle panicked",
				"panic", r,
				"stack", string(logging.CaptureStack()),
			)
			c.emit(EventWorkFailed)
			err = fmt.Errorf("work cycle panicked: %v", r)
		}
		c.releaseMarker()
	}()

	if c.afterStart != nil {
		if err := c.afterStart(); err != nil {
			c.logger.Error("after-start hook failed", "error", err)
			c.emit(EventWorkFailed)
			return fmt.Errorf("after-start hook: %w", err)
		}
	}

	c.logger.Info("started", "pid", c.ownPID(), "marker", c.markerPath)
	c.emit(EventStarted)

	next := c.now()
	for c.Status() == StatusRunning {
		if c.now().Before(next) {
			d := next.Sub(c.now())
			if d > c.pollInterval {
				d = c.pollInterval
			}
			c.sleep(d)
			continue
		}

		if err := c.work(); err != nil {
			c.logger.Error("work cycle failed", "error", err)
			c.emit(EventWorkFailed)
			return fmt.Errorf("work cycle: %w", err)
		}
		if c.sleepTime > 0 {
			next = c.now().Add(c.sleepTime)
		}
	}

	c.logger.Info("stopped")
	c.emit(EventStopped)
	return nil
}

// Stop signals the running instance to shut down and blocks until its
// marker is gone. Stopping a stopped service is a no-op; a stale marker
// is cleaned up without signaling anything.
func (c *Controller) Stop() error {
	switch c.Status() {
	case StatusStopped:
		c.logger.Info("not running")
		c.emit(EventNotRunning)
		return nil
	case StatusStale:
		c.cleanStale()
		c.emit(EventNotRunning)
		return nil
	}

	if err := c.Shutdown(); err != nil {
		return err
	}
	for c.Status() != StatusStopped {
		c.sleep(stopPollInterval)
	}
	c.logger.Info("stopped")
	c.emit(EventStopped)
	return nil
}

// Shutdown writes the shutdown token into the marker file. It signals
// intent only; waiting for the process to exit is Stop's job. The work
// callback may call this on its own controller to stop itself after the
// current cycle.
func (c *Controller) Shutdown() error {
	if c.beforeStop != nil {
		if err := c.beforeStop(); err != nil {
			return fmt.Errorf("before-stop hook: %w", err)
		}
	}
	c.logger.Info("shutdown requested")
	c.emit(EventStopping)
	if err := appendShutdown(c.markerPath); err != nil {
		return fmt.Errorf("signal shutdown for %s: %w", c.name, err)
	}
	return nil
}

// Restart stops the service if it is running, then starts it in this
// process. The two phases are strictly sequential.
func (c *Controller) Restart() error {
	if err := c.Stop(); err != nil {
		return err
	}
	return c.Start()
}

// releaseMarker deletes the marker file if this process still owns it.
// Ownership is the recorded PID, shutdown token or not; a marker another
// process has since claimed is left alone.
func (c *Controller) releaseMarker() {
	if readMarker(c.markerPath).pid == c.ownPID() {
		if err := removeMarker(c.markerPath); err != nil {
			c.logger.Error("release marker", "error", err)
		}
	}
}

// cleanStale removes a marker left behind by a dead process.
func (c *Controller) cleanStale() {
	c.logger.Info("removing stale marker", "marker", c.markerPath)
	if err := removeMarker(c.markerPath); err != nil {
		c.logger.Error("remove stale marker", "error", err)
		return
	}
	c.emit(EventStaleCleaned)
}

func (c *Controller) emit(e Event) {
	if c.notify != nil {
		c.notify(e)
	}
}
