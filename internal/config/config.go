package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/attuned.cichecks/internal/lint"
)

type Config struct {
	Lint   LintConfig   `toml:"lint"`
	Tools  ToolsConfig  `toml:"tools"`
	Update UpdateConfig `toml:"update"`

	// Compiled regex from Lint.TicketPattern (not serialized)
	ticketRegex *regexp.Regexp
}

type LintConfig struct {
	// Types are the allowed commit header types
	Types []string `toml:"types"`
	// Sections are the required body sections, in order
	Sections []string `toml:"sections"`
	// SectionAliases maps accepted alternative headers to canonical sections
	SectionAliases map[string]string `toml:"section_aliases"`
	// TrailerKey is the required trailer key
	TrailerKey string `toml:"trailer_key"`
	// TicketPattern matches a valid trailer value
	TicketPattern string `toml:"ticket_pattern"`
	// EmailDomain enables the author email check when non-empty
	EmailDomain string `toml:"email_domain"`
}

type ToolsConfig struct {
	// RuffStyleConfig is an optional ruff.toml passed to ruff format
	RuffStyleConfig string `toml:"ruff_style_config"`
	// ExcludedFiles are paths never handed to the gates
	ExcludedFiles []string `toml:"excluded_files"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Types:    []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"},
			Sections: []string{"Problem", "Solution", "Test"},
			SectionAliases: map[string]string{
				"Task": "Problem",
			},
			TrailerKey:    "JIRA",
			TicketPattern: "[A-Z0-9]+-[0-9]+",
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.cichecks",
		},
	}
}

// Path returns the config file path
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attci.toml"), nil
}

func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		cfg := DefaultConfig()
		if err := cfg.compileRegex(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := cfg.compileRegex(); err != nil {
				return nil, err
			}
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.compileRegex(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) compileRegex() error {
	pattern := c.Lint.TicketPattern
	if pattern == "" {
		pattern = "[A-Z0-9]+-[0-9]+"
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return fmt.Errorf("invalid lint.ticket_pattern %q: %w", c.Lint.TicketPattern, err)
	}
	c.ticketRegex = re
	return nil
}

// Rules converts the lint configuration into validator rules
func (c *Config) Rules() lint.Rules {
	return lint.Rules{
		Types:          c.Lint.Types,
		Sections:       c.Lint.Sections,
		SectionAliases: c.Lint.SectionAliases,
		TrailerKey:     c.Lint.TrailerKey,
		TicketPattern:  c.ticketRegex,
		EmailDomain:    c.Lint.EmailDomain,
	}
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
