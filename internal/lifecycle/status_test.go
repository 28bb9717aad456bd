package lifecycle

import (
	"os"
	"path/filepath"
	"testing"
)

const testOwnPID = 4242

func neverAlive(int) bool  { return false }
func alwaysAlive(int) bool { return true }

func writeTestMarker(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service.pid")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	return path
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		missing bool
		content string
		alive   func(int) bool
		want    Status
	}{
		{"no marker file", true, "", alwaysAlive, StatusStopped},
		{"own pid", false, "4242", neverAlive, StatusRunning},
		{"other live pid", false, "999", alwaysAlive, StatusOtherRunning},
		{"dead pid", false, "999", neverAlive, StatusStale},
		{"empty file", false, "", neverAlive, StatusStale},
		{"garbage content", false, "banana", alwaysAlive, StatusStale},
		{"shutdown token", false, "999\n" + ShutdownToken, alwaysAlive, StatusShuttingDown},
		// The token outranks a RUNNING match: a marker carrying both our
		// own PID and the token reports shutting down.
		{"shutdown token with own pid", false, "4242\n" + ShutdownToken, neverAlive, StatusShuttingDown},
		{"token without pid line", false, ShutdownToken, neverAlive, StatusShuttingDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.missing {
				path = filepath.Join(t.TempDir(), "absent.pid")
			} else {
				path = writeTestMarker(t, tt.content)
			}

			got := deriveStatus(path, testOwnPID, tt.alive)
			if got != tt.want {
				t.Errorf("deriveStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeriveStatus_OwnPIDDoesNotConsultProcessTable(t *testing.T) {
	// Our own PID is trivially alive; the probe must not be asked.
	path := writeTestMarker(t, "4242")
	probed := false
	got := deriveStatus(path, testOwnPID, func(int) bool {
		probed = true
		return false
	})
	if got != StatusRunning {
		t.Errorf("deriveStatus() = %v, want running", got)
	}
	if probed {
		t.Error("liveness probe consulted for own PID")
	}
}

func TestProcessAlive(t *testing.T) {
	if !processAlive(os.Getpid()) {
		t.Error("processAlive(own pid) = false")
	}
	if processAlive(0) {
		t.Error("processAlive(0) = true")
	}
	if processAlive(-1) {
		t.Error("processAlive(-1) = true")
	}
	// Way above any real PID ceiling.
	if processAlive(1 << 30) {
		t.Error("processAlive(huge pid) = true")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusStopped, "stopped"},
		{StatusShuttingDown, "shutting down"},
		{StatusRunning, "running"},
		{StatusOtherRunning, "running (other process)"},
		{StatusStale, "stale"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
