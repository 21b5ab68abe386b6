package models

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration loaded from the YAML config file.
// CLI flags may override individual fields after loading.
type Config struct {
	// JobURLs are the job posting pages to process.
	JobURLs []string `yaml:"job_urls"`

	// OmitDefaultExtractors disables default-enabled extractors by name.
	OmitDefaultExtractors []string `yaml:"omit_default_extractors"`

	// EnableOptionalExtractors opts in to extractors that are off by default.
	EnableOptionalExtractors []string `yaml:"enable_optional_extractors"`

	CacheDir    string `yaml:"cache_dir"`
	HistoryDB   string `yaml:"history_db"`
	Workers     int    `yaml:"workers"`
	TopKeywords int    `yaml:"top_keywords"`
}

const (
	DefaultCacheDir    = ".cache"
	DefaultHistoryDB   = "jobsift.db"
	DefaultWorkers     = 4
	DefaultTopKeywords = 25
)

// LoadConfig reads and validates the YAML config at path, filling defaults
// for anything left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if config.CacheDir == "" {
		config.CacheDir = DefaultCacheDir
	}
	if config.HistoryDB == "" {
		config.HistoryDB = DefaultHistoryDB
	}
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.TopKeywords <= 0 {
		config.TopKeywords = DefaultTopKeywords
	}

	return &config, nil
}

// Validate checks that the config names at least one well-formed job URL.
func (c *Config) Validate() error {
	if len(c.JobURLs) == 0 {
		return fmt.Errorf("no job_urls configured")
	}
	for _, raw := range c.JobURLs {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("job_urls entry %q: %w", raw, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("job_urls entry %q: unsupported scheme %q", raw, u.Scheme)
		}
	}
	return nil
}

// InsecureURLs returns the configured URLs that use plain http. Callers warn
// on these rather than refusing them.
func (c *Config) InsecureURLs() []string {
	var insecure []string
	for _, raw := range c.JobURLs {
		if u, err := url.Parse(raw); err == nil && u.Scheme == "http" {
			insecure = append(insecure, raw)
		}
	}
	return insecure
}
