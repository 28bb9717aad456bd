// Package paths is the single source of truth for cadence file paths.
// All helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. Specific env vars (CADENCE_PID_DIR, CADENCE_CONFIG_PATH,
//     CADENCE_LOG_PATH) take highest priority
//  2. CADENCE_DIR env var sets the base directory (derives run/log/config paths)
//  3. Default behavior (~/.cadence, ~/.config/cadence) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names for path overrides.
const (
	// EnvCadenceDir is the base directory override (e.g., /tmp/cadence-test).
	// When set, run, log, and config paths derive from this directory.
	EnvCadenceDir = "CADENCE_DIR"

	// EnvPIDDir overrides the marker (PID) file directory directly.
	EnvPIDDir = "CADENCE_PID_DIR"

	// EnvConfigPath overrides the config file path directly.
	EnvConfigPath = "CADENCE_CONFIG_PATH"

	// EnvLogPath overrides the log file path directly.
	EnvLogPath = "CADENCE_LOG_PATH"
)

// BaseDir returns the cadence base directory (~/.cadence by default).
// Honors CADENCE_DIR environment variable.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvCadenceDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cadence"), nil
}

// ConfigDir returns the cadence config directory (~/.config/cadence by
// default). When CADENCE_DIR is set, returns CADENCE_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvCadenceDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cadence"), nil
}

// ConfigPath returns the path to the cadence config file.
// Precedence: CADENCE_CONFIG_PATH > CADENCE_DIR/config/config.toml >
// ~/.config/cadence/config.toml
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PIDDir returns the directory holding marker files.
// Precedence: CADENCE_PID_DIR > CADENCE_DIR/run > ~/.cadence/run
func PIDDir() string {
	if dir := os.Getenv(EnvPIDDir); dir != "" {
		return dir
	}
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "cadence", "run")
	}
	return filepath.Join(base, "run")
}

// MarkerPath returns the marker file path for a named service, derived
// from the slugified service name under PIDDir.
func MarkerPath(service string) string {
	return filepath.Join(PIDDir(), Slugify(service)+".pid")
}

// LogPath returns the log file path.
// Precedence: CADENCE_LOG_PATH > CADENCE_DIR/cadence.log > ~/.cadence/cadence.log
func LogPath() string {
	if path := os.Getenv(EnvLogPath); path != "" {
		return path
	}
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "cadence.log")
	}
	return filepath.Join(base, "cadence.log")
}

// Slugify lowercases a display name and maps every run of non-alphanumeric
// characters to a single hyphen, producing a filesystem-safe identifier.
// "My Service" and "my-service" name the same service.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
