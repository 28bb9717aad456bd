package lifecycle

// Event identifies an observable lifecycle transition. Events exist so
// callers (the CLI, tests) can surface informational output without the
// controller deciding how it is rendered; log records carry the detail.
type Event int

const (
	// EventStarted fires once the marker is written and the work loop is
	// about to begin.
	EventStarted Event = iota
	// EventAlreadyRunning fires when Start finds a live instance and
	// declines to start another.
	EventAlreadyRunning
	// EventStaleCleaned fires when a marker pointing at a dead process is
	// removed.
	EventStaleCleaned
	// EventStopping fires when the shutdown token is about to be written.
	EventStopping
	// EventStopped fires when the service has fully stopped and its
	// marker is gone.
	EventStopped
	// EventNotRunning fires when Stop finds nothing to stop.
	EventNotRunning
	// EventWorkFailed fires when the work callback or a hook fails; the
	// run terminates after marker cleanup.
	EventWorkFailed
)

// String returns a short event name for logs and tests.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventAlreadyRunning:
		return "already-running"
	case EventStaleCleaned:
		return "stale-cleaned"
	case EventStopping:
		return "stopping"
	case EventStopped:
		return "stopped"
	case EventNotRunning:
		return "not-running"
	case EventWorkFailed:
		return "work-failed"
	default:
		return "unknown"
	}
}
