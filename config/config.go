// Package config provides configuration loading and management for
// archlens.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/archlens/archlens/priority"
)

// Config represents the complete archlens configuration
type Config struct {
	Review   ReviewConfig   `yaml:"review"`
	Priority PriorityConfig `yaml:"priority"`
	Output   OutputConfig   `yaml:"output"`
	NATS     NATSConfig     `yaml:"nats"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ReviewConfig configures the review engine
type ReviewConfig struct {
	// Owner is the default solution owner recorded on SMART solutions
	Owner string `yaml:"owner"`
	// WatchDebounce is how long to wait for more document changes before re-reviewing
	WatchDebounce time.Duration `yaml:"watch_debounce"`
	// WatchExtensions lists the file extensions watched for changes (e.g. [.md, .txt])
	WatchExtensions []string `yaml:"watch_extensions"`
}

// PriorityConfig configures scoring thresholds and roadmap boundaries
type PriorityConfig struct {
	// UrgentThreshold is the minimum urgency score for the urgent matrix half (0-10)
	UrgentThreshold int `yaml:"urgent_threshold"`
	// ImportantThreshold is the minimum importance score for the important matrix half (0-10)
	ImportantThreshold int `yaml:"important_threshold"`
	// PhaseOneSize is the number of top-ranked items in roadmap phase 1
	PhaseOneSize int `yaml:"phase_one_size"`
	// PhaseTwoEnd is the rank (exclusive) where roadmap phase 2 ends
	PhaseTwoEnd int `yaml:"phase_two_end"`
}

// OutputConfig configures markdown export
type OutputConfig struct {
	// Dir is the directory decision records are written to
	Dir string `yaml:"dir"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = use embedded server)
	URL string `yaml:"url"`
	// Embedded indicates whether to use embedded NATS
	Embedded bool `yaml:"embedded"`
}

// MetricsConfig configures the prometheus exposition endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty = disabled)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	pc := priority.DefaultConfig()
	return &Config{
		Review: ReviewConfig{
			Owner:           "Architecture Team",
			WatchDebounce:   500 * time.Millisecond,
			WatchExtensions: []string{".md", ".txt", ".html"},
		},
		Priority: PriorityConfig{
			UrgentThreshold:    pc.UrgentThreshold,
			ImportantThreshold: pc.ImportantThreshold,
			PhaseOneSize:       pc.PhaseOneSize,
			PhaseTwoEnd:        pc.PhaseTwoEnd,
		},
		Output: OutputConfig{
			Dir: "./adrs",
		},
		NATS: NATSConfig{
			URL:      "",
			Embedded: true,
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
	}
}

// ToPriority converts the priority section to the analyzer's config.
func (p PriorityConfig) ToPriority() priority.Config {
	return priority.Config{
		UrgentThreshold:    p.UrgentThreshold,
		ImportantThreshold: p.ImportantThreshold,
		PhaseOneSize:       p.PhaseOneSize,
		PhaseTwoEnd:        p.PhaseTwoEnd,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Review.Owner == "" {
		return fmt.Errorf("review.owner is required")
	}
	if c.Priority.UrgentThreshold < 0 || c.Priority.UrgentThreshold > 10 {
		return fmt.Errorf("priority.urgent_threshold must be between 0 and 10")
	}
	if c.Priority.ImportantThreshold < 0 || c.Priority.ImportantThreshold > 10 {
		return fmt.Errorf("priority.important_threshold must be between 0 and 10")
	}
	if c.Priority.PhaseOneSize < 1 {
		return fmt.Errorf("priority.phase_one_size must be at least 1")
	}
	if c.Priority.PhaseTwoEnd <= c.Priority.PhaseOneSize {
		return fmt.Errorf("priority.phase_two_end must be greater than phase_one_size")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Review
	if other.Review.Owner != "" {
		c.Review.Owner = other.Review.Owner
	}
	if other.Review.WatchDebounce != 0 {
		c.Review.WatchDebounce = other.Review.WatchDebounce
	}
	if len(other.Review.WatchExtensions) > 0 {
		c.Review.WatchExtensions = other.Review.WatchExtensions
	}

	// Priority
	if other.Priority.UrgentThreshold != 0 {
		c.Priority.UrgentThreshold = other.Priority.UrgentThreshold
	}
	if other.Priority.ImportantThreshold != 0 {
		c.Priority.ImportantThreshold = other.Priority.ImportantThreshold
	}
	if other.Priority.PhaseOneSize != 0 {
		c.Priority.PhaseOneSize = other.Priority.PhaseOneSize
	}
	if other.Priority.PhaseTwoEnd != 0 {
		c.Priority.PhaseTwoEnd = other.Priority.PhaseTwoEnd
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
		c.NATS.Embedded = false
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
