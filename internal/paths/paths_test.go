package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseDir(t *testing.T) {
	t.Run("default uses home directory", func(t *testing.T) {
		os.Unsetenv(EnvCadenceDir)
		defer os.Unsetenv(EnvCadenceDir)

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".cadence")
		if dir != expected {
			t.Errorf("BaseDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("CADENCE_DIR overrides default", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		defer os.Unsetenv(EnvCadenceDir)

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		if dir != "/tmp/cadence-test" {
			t.Errorf("BaseDir() = %q, want %q", dir, "/tmp/cadence-test")
		}
	})
}

func TestConfigPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		os.Unsetenv(EnvCadenceDir)
		defer os.Unsetenv(EnvCadenceDir)

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "cadence", "config.toml")
		if path != expected {
			t.Errorf("ConfigPath() = %q, want %q", path, expected)
		}
	})

	t.Run("CADENCE_DIR override", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		defer os.Unsetenv(EnvCadenceDir)

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		expected := "/tmp/cadence-test/config/config.toml"
		if path != expected {
			t.Errorf("ConfigPath() = %q, want %q", path, expected)
		}
	})

	t.Run("CADENCE_CONFIG_PATH overrides CADENCE_DIR", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		os.Setenv(EnvConfigPath, "/custom/config.toml")
		defer func() {
			os.Unsetenv(EnvCadenceDir)
			os.Unsetenv(EnvConfigPath)
		}()

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		if path != "/custom/config.toml" {
			t.Errorf("ConfigPath() = %q, want %q", path, "/custom/config.toml")
		}
	})
}

func TestPIDDir(t *testing.T) {
	t.Run("default uses home directory", func(t *testing.T) {
		os.Unsetenv(EnvCadenceDir)
		os.Unsetenv(EnvPIDDir)
		defer func() {
			os.Unsetenv(EnvCadenceDir)
			os.Unsetenv(EnvPIDDir)
		}()

		dir := PIDDir()
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".cadence", "run")
		if dir != expected {
			t.Errorf("PIDDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("CADENCE_DIR derives PID directory", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		os.Unsetenv(EnvPIDDir)
		defer func() {
			os.Unsetenv(EnvCadenceDir)
			os.Unsetenv(EnvPIDDir)
		}()

		dir := PIDDir()
		expected := "/tmp/cadence-test/run"
		if dir != expected {
			t.Errorf("PIDDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("CADENCE_PID_DIR overrides CADENCE_DIR", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		os.Setenv(EnvPIDDir, "/custom/run")
		defer func() {
			os.Unsetenv(EnvCadenceDir)
			os.Unsetenv(EnvPIDDir)
		}()

		dir := PIDDir()
		if dir != "/custom/run" {
			t.Errorf("PIDDir() = %q, want %q", dir, "/custom/run")
		}
	})
}

func TestMarkerPath(t *testing.T) {
	os.Setenv(EnvPIDDir, "/tmp/cadence-run")
	defer os.Unsetenv(EnvPIDDir)

	path := MarkerPath("My Billing Service")
	expected := "/tmp/cadence-run/my-billing-service.pid"
	if path != expected {
		t.Errorf("MarkerPath() = %q, want %q", path, expected)
	}
}

func TestLogPath(t *testing.T) {
	t.Run("CADENCE_DIR derives log path", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		os.Unsetenv(EnvLogPath)
		defer func() {
			os.Unsetenv(EnvCadenceDir)
			os.Unsetenv(EnvLogPath)
		}()

		path := LogPath()
		expected := "/tmp/cadence-test/cadence.log"
		if path != expected {
			t.Errorf("LogPath() = %q, want %q", path, expected)
		}
	})

	t.Run("CADENCE_LOG_PATH overrides CADENCE_DIR", func(t *testing.T) {
		os.Setenv(EnvCadenceDir, "/tmp/cadence-test")
		os.Setenv(EnvLogPath, "/custom/cadence.log")
		defer func() {
			os.Unsetenv(EnvCadenceDir)
			os.Unsetenv(EnvLogPath)
		}()

		path := LogPath()
		if path != "/custom/cadence.log" {
			t.Errorf("LogPath() = %q, want %q", path, "/custom/cadence.log")
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Billing", "billing"},
		{"My Billing Service", "my-billing-service"},
		{"already-slugged", "already-slugged"},
		{"Weird  --  Name!!", "weird-name"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"MixedCase123", "mixedcase123"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
