package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// Auth
	APIKey string `yaml:"api_key"`

	// Worker pool
	WorkerCount  int `yaml:"worker_count"`
	MaxQueueSize int `yaml:"max_queue_size"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Job state
	JobTTL time.Duration `yaml:"job_ttl"`

	// Analysis defaults
	DefaultHeatmapTopN int `yaml:"default_heatmap_top_n"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`

	// PDF
	PDFFallbackPdftotext bool `yaml:"pdf_fallback_pdftotext"`

	// Remote fetch
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// Load reads configuration from an optional YAML file (MARKLENS_CONFIG) and
// the environment, env winning over file.
func Load() Config {
	cfg := Config{
		Port:                 "8090",
		WorkerCount:          4,
		MaxQueueSize:         100,
		MaxUploadBytes:       52428800, // 50MB
		JobTTL:               1 * time.Hour,
		DefaultHeatmapTopN:   20,
		AllowedOrigins:       []string{"*"},
		PDFFallbackPdftotext: true,
		FetchTimeout:         30 * time.Second,
	}

	if path := os.Getenv("MARKLENS_CONFIG"); path != "" {
		loadFromFile(path, &cfg)
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.APIKey = envOr("MARKLENS_API_KEY", cfg.APIKey)
	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxQueueSize = envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.JobTTL = envDuration("JOB_TTL", cfg.JobTTL)
	cfg.DefaultHeatmapTopN = envInt("DEFAULT_HEATMAP_TOP_N", cfg.DefaultHeatmapTopN)
	cfg.PDFFallbackPdftotext = envBool("PDF_FALLBACK_PDFTOTEXT", cfg.PDFFallbackPdftotext)
	cfg.FetchTimeout = envDuration("FETCH_TIMEOUT", cfg.FetchTimeout)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.DefaultHeatmapTopN <= 0 {
		cfg.DefaultHeatmapTopN = 20
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MARKLENS_API_KEY is required")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	// A broken config file falls back to defaults plus env.
	_ = yaml.Unmarshal(data, cfg)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
