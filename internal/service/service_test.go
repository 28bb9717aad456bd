package service

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tessro/cadence/internal/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewController_RequiresName(t *testing.T) {
	_, err := NewController("", config.ServiceConfig{Command: "true"}, nil, discard())
	if err == nil {
		t.Error("expected error for empty service name")
	}
}

func TestNewController_UsesPIDFileOverride(t *testing.T) {
	ctrl, err := NewController("billing", config.ServiceConfig{
		Command: "true",
		PIDFile: "/tmp/custom-billing.pid",
	}, nil, discard())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if ctrl.MarkerPath() != "/tmp/custom-billing.pid" {
		t.Errorf("MarkerPath() = %q, want override", ctrl.MarkerPath())
	}
}

func TestCycleRunner_Success(t *testing.T) {
	r := &cycleRunner{
		name:    "test",
		command: "true",
		logger:  discard(),
	}
	if err := r.runOnce(); err != nil {
		t.Errorf("runOnce() = %v, want nil", err)
	}
}

func TestCycleRunner_CommandFails(t *testing.T) {
	r := &cycleRunner{
		name:    "test",
		command: "false",
		logger:  discard(),
	}
	if err := r.runOnce(); err == nil {
		t.Error("runOnce() = nil, want error for failing command")
	}
}

func TestCycleRunner_Timeout(t *testing.T) {
	r := &cycleRunner{
		name:    "test",
		command: "sleep",
		args:    []string{"5"},
		timeout: 50 * time.Millisecond,
		logger:  discard(),
	}
	err := r.runOnce()
	if err == nil {
		t.Fatal("runOnce() = nil, want timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("runOnce() = %v, want timeout error", err)
	}
}

func TestCycleRunner_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	r := &cycleRunner{
		name:    "test",
		command: "pwd",
		dir:     dir,
		logger:  discard(),
	}
	if err := r.runOnce(); err != nil {
		t.Errorf("runOnce() = %v, want nil", err)
	}
}
