package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("Port = %q, want 8090", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v, want 1h", cfg.JobTTL)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail without an API key")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "port: \"9000\"\nworker_count: 2\ndefault_heatmap_top_n: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MARKLENS_CONFIG", path)
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("MARKLENS_API_KEY", "k")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000 from file", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8 from env", cfg.WorkerCount)
	}
	if cfg.DefaultHeatmapTopN != 5 {
		t.Errorf("DefaultHeatmapTopN = %d, want 5 from file", cfg.DefaultHeatmapTopN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("MAX_QUEUE_SIZE", "0")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want clamp to 4", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("MaxQueueSize = %d, want clamp to 100", cfg.MaxQueueSize)
	}
}

func TestAllowedOriginsSplit(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg := Load()
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}
