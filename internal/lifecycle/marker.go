// Package lifecycle turns a repeatable unit of work into a singleton,
// externally controllable daemon. A service's only persisted state is its
// marker file: a plain-text file holding the owning process's PID and,
// optionally, a pending-shutdown flag. All cross-process coordination goes
// through that file; no sockets or OS signals are used.
package lifecycle

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ShutdownToken is the literal appended to a marker file to request that
// the owning process terminate. The on-disk format is part of the
// protocol: first line is the decimal PID, optional second line is this
// token, nothing else.
const ShutdownToken = "shutting down"

// markerState is one read of the marker file. The file is shared between
// processes and may change or vanish between reads; a read never fails,
// it just reports less.
type markerState struct {
	exists   bool
	pid      int  // 0 when the content has no parseable PID
	shutdown bool // shutdown token present anywhere in the content
}

// readMarker inspects the marker file at path. A file that vanishes
// between the existence check and the read counts as absent. Unreadable
// or non-numeric content counts as existing with no PID.
func readMarker(path string) markerState {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return markerState{}
		}
		// Exists but unreadable: no content we can trust.
		return markerState{exists: true}
	}

	content := string(data)
	st := markerState{
		exists:   true,
		shutdown: strings.Contains(content, ShutdownToken),
	}

	line, _, _ := strings.Cut(content, "\n")
	if pid, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && pid > 0 {
		st.pid = pid
	}
	return st
}

// writeMarker records pid as the owner of the marker file, creating the
// parent directory if needed and overwriting any previous content.
func writeMarker(path string, pid int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create marker directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0600); err != nil {
		return fmt.Errorf("write marker file: %w", err)
	}
	return nil
}

// appendShutdown appends the shutdown token on its own line, preserving
// the PID line already in the file.
func appendShutdown(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open marker file: %w", err)
	}
	_, werr := f.WriteString("\n" + ShutdownToken)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("append shutdown token: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close marker file: %w", cerr)
	}
	return nil
}

// removeMarker deletes the marker file. A file that is already gone is
// not an error.
func removeMarker(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove marker file: %w", err)
	}
	return nil
}
