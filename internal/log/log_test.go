package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_NoopBeforeInit(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() should never be nil")
	}
	// Must not panic
	Infow("before init", "key", "value")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")

	if err := Init(false, path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Infow("favorite added", "weather_id", "4")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "favorite added") || !strings.Contains(string(data), `"weather_id":"4"`) {
		t.Errorf("log file missing entry:\n%s", data)
	}
}

func TestLogger_ReportsCallerOfInjectedLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caller.log")
	if err := Init(false, path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Logger().Infow("injected")
	Warnw("wrapped")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), data)
	}
	for _, line := range lines {
		if !strings.Contains(line, "log/log_test.go") {
			t.Errorf("caller should be the test file: %s", line)
		}
	}
	if !strings.Contains(lines[1], `"level":"warn"`) {
		t.Errorf("Warnw should log at warn: %s", lines[1])
	}
}
