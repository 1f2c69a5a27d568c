package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cpu-scheduling-simulator/internal/generator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadSchedulerConfig(t *testing.T) {
	dir := writeConfig(t, `
port: 8080
scheduler:
  round_robin:
    time_quantum: 4
generator:
  max_burst_time: 12
`)
	c, err := LoadSchedulerConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 8080 || c.RoundRobinTimeQuantum != 4 || c.MaxTotalBurstTime != 100000 {
		t.Errorf("unexpected config %+v", c)
	}
	want := generator.DefaultOptions()
	want.MaxBurstTime = 12
	if c.Generator != want {
		t.Errorf("generator options %+v, want %+v", c.Generator, want)
	}
}

func TestLoadSchedulerConfigDefaults(t *testing.T) {
	c, err := LoadSchedulerConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 9095 || c.RoundRobinTimeQuantum != 2 || c.Generator != generator.DefaultOptions() {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestLoadSchedulerConfigEnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")
	c, err := LoadSchedulerConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if c.RoundRobinTimeQuantum != 5 {
		t.Errorf("quantum %d, want 5", c.RoundRobinTimeQuantum)
	}
}

func TestLoadSchedulerConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero quantum", "scheduler:\n  round_robin:\n    time_quantum: 0\n"},
		{"zero burst limit", "scheduler:\n  max_total_burst_time: 0\n"},
		{"port out of range", "port: 70000\n"},
		{"zero generator burst", "generator:\n  max_burst_time: 0\n"},
		{"inverted process range", "generator:\n  min_processes: 9\n  max_processes: 6\n"},
		{"zero generator arrival", "generator:\n  max_arrival_time: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSchedulerConfig(writeConfig(t, tt.content)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}
