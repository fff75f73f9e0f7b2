package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// Config holds the complete application configuration.
type Config struct {
	// Version selects the ICD-10 release to scrape.
	Version int `yaml:"version"`
	// BaseURL is the browser root template; the version is substituted in.
	BaseURL string        `yaml:"base_url"`
	Scraper ScraperConfig `yaml:"scraper"`
	Browser BrowserConfig `yaml:"browser"`
	Output  OutputConfig  `yaml:"output"`
}

// ScraperConfig holds the fetch and worker-pool configuration.
type ScraperConfig struct {
	Workers      int           `yaml:"workers"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// BestEffort keeps a run going when a fetch fails unexpectedly,
	// recording the failure in the output instead of aborting.
	BestEffort bool     `yaml:"best_effort"`
	UserAgents []string `yaml:"user_agents,omitempty"`
	Proxy      string   `yaml:"proxy,omitempty"`
}

// BrowserConfig holds the headless-browser configuration used for the
// JavaScript-rendered chapter tree.
type BrowserConfig struct {
	Headless bool `yaml:"headless"`
	// ChromePath overrides the browser binary looked up on PATH.
	ChromePath string        `yaml:"chrome_path,omitempty"`
	WaitTime   time.Duration `yaml:"wait_time"`
	UserAgent  string        `yaml:"user_agent,omitempty"`
}

// OutputConfig holds the result output configuration.
type OutputConfig struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: 2019,
		BaseURL: "https://icd.who.int/browse10/%d/en",
		Scraper: ScraperConfig{
			Workers:      20,
			FetchTimeout: 30 * time.Second,
			UserAgents:   DefaultUserAgents,
		},
		Browser: BrowserConfig{
			Headless:  true,
			WaitTime:  5 * time.Second,
			UserAgent: DefaultUserAgents[0],
		},
		Output: OutputConfig{
			File:   "records.csv",
			Format: "csv",
		},
	}
}

// Load reads a YAML configuration file over the defaults, so omitted fields
// keep their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values no run can work with.
func (c *Config) Validate() error {
	if !icd.SupportedVersion(c.Version) {
		return fmt.Errorf("unsupported ICD-10 version %d (supported: %v)", c.Version, icd.Versions)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.Scraper.Workers < 1 {
		return fmt.Errorf("scraper.workers must be at least 1, got %d", c.Scraper.Workers)
	}
	switch c.Output.Format {
	case "csv", "json", "table":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}
	return nil
}

// RootURL returns the browser root for the configured version.
func (c *Config) RootURL() string {
	return fmt.Sprintf(c.BaseURL, c.Version)
}
