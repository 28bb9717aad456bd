package lifecycle

import (
	"errors"
	"os"
	"syscall"
)

// Status is the derived lifecycle state of a service. It is never stored;
// every value is computed fresh from the marker file and the OS process
// table.
type Status int

const (
	// StatusStopped means no marker file exists.
	StatusStopped Status = iota
	// StatusShuttingDown means the marker file carries the shutdown token.
	StatusShuttingDown
	// StatusRunning means the marker file records this process's own PID.
	StatusRunning
	// StatusOtherRunning means the marker file records a live PID that is
	// not this process.
	StatusOtherRunning
	// StatusStale means the marker file exists but its PID (if any) does
	// not correspond to a live process.
	StatusStale
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusShuttingDown:
		return "shutting down"
	case StatusRunning:
		return "running"
	case StatusOtherRunning:
		return "running (other process)"
	case StatusStale:
		return "stale"
	default:
		return "unknown"
	}
}

// deriveStatus is the status oracle: the single authoritative mapping from
// (marker file, process table) to a Status. The checks run in priority
// order and the first match wins; a marker that carries both the shutdown
// token and our own PID is shutting down, not running.
func deriveStatus(path string, ownPID int, alive func(pid int) bool) Status {
	m := readMarker(path)
	switch {
	case !m.exists:
		return StatusStopped
	case m.shutdown:
		return StatusShuttingDown
	case m.pid != 0 && m.pid == ownPID:
		return StatusRunning
	case m.pid != 0 && alive(m.pid):
		return StatusOtherRunning
	default:
		return StatusStale
	}
}

// processAlive reports whether a process with the given PID exists, using
// signal 0. EPERM means the process exists but belongs to another user.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	if errors.Is(err, syscall.EPERM) {
		return true
	}
	return false
}
