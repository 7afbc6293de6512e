// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for ONEX tooling.
//
// Configuration is loaded from a single YAML file specified by:
//   - ONEX_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable configuration with no hidden overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OmniNode-ai/onex/lib/catalogstore"
	"github.com/OmniNode-ai/onex/lib/schema/command"
	"github.com/OmniNode-ai/onex/lib/version"
)

// Config is the master configuration for ONEX.
type Config struct {
	// CLIVersion is the version the catalog cache is keyed to. A
	// cache written under one version is rejected by another.
	CLIVersion string `yaml:"cli_version"`

	// Registry selects where command contributions come from.
	Registry RegistryConfig `yaml:"registry"`

	// CachePath is where the materialized catalog is stored.
	// Default: <user config dir>/onex/catalog.json
	CachePath string `yaml:"cache_path"`

	// Policy filters which commands become visible in the catalog.
	// The zero policy hides nothing.
	Policy command.Policy `yaml:"policy"`
}

// RegistryConfig selects the contribution source. Exactly one of URL
// and ContributionDir may be set; with neither set, catalog refresh
// is unavailable and only cached reads work.
type RegistryConfig struct {
	// URL is the base URL of a registry service.
	URL string `yaml:"url"`

	// ContributionDir is a local directory of contribution files,
	// one .json or .jsonc file per publisher.
	ContributionDir string `yaml:"contribution_dir"`
}

// Default returns the default configuration. These defaults are a
// base for the loaded file, not a substitute for it: with no registry
// source configured, refresh is unavailable.
func Default() *Config {
	cachePath, err := catalogstore.DefaultPath()
	if err != nil {
		cachePath = ""
	}
	return &Config{
		CLIVersion: version.Version,
		CachePath:  cachePath,
	}
}

// Load loads configuration from the ONEX_CONFIG environment variable.
// If ONEX_CONFIG is not set, the defaults are returned unchanged so
// cached-catalog reads work without any configuration.
func Load() (*Config, error) {
	path := os.Getenv("ONEX_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. The file is
// the single source of truth; environment variables do not override
// its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every problem with the configuration, joined.
func (c *Config) Validate() error {
	var problems []error

	if c.CLIVersion == "" {
		problems = append(problems, errors.New("cli_version must not be empty"))
	}
	if c.CachePath == "" {
		problems = append(problems, errors.New("cache_path must not be empty"))
	}
	if c.Registry.URL != "" && c.Registry.ContributionDir != "" {
		problems = append(problems, errors.New(
			"registry.url and registry.contribution_dir are mutually exclusive"))
	}

	return errors.Join(problems...)
}
