// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.CLIVersion != "0.0.0-dev" {
		t.Errorf("expected cli_version=0.0.0-dev, got %s", cfg.CLIVersion)
	}
	if !strings.HasSuffix(cfg.CachePath, filepath.Join("onex", "catalog.json")) {
		t.Errorf("expected cache path under onex/, got %s", cfg.CachePath)
	}
	if cfg.Registry.URL != "" || cfg.Registry.ContributionDir != "" {
		t.Error("expected no registry source by default")
	}
	if cfg.Policy.HideDeprecated || cfg.Policy.HideExperimental {
		t.Error("expected the zero policy to hide nothing")
	}
}

func TestLoad_WithoutOnexConfig(t *testing.T) {
	t.Setenv("ONEX_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without ONEX_CONFIG failed: %v", err)
	}
	if cfg.CLIVersion != Default().CLIVersion {
		t.Errorf("expected defaults without ONEX_CONFIG, got cli_version=%s", cfg.CLIVersion)
	}
}

func TestLoad_WithOnexConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "onex.yaml")

	configContent := `
cli_version: 1.4.0
registry:
  url: https://registry.omninode.example
cache_path: /test/catalog.json
policy:
  command_denylist:
    - legacy/dump
  hide_deprecated: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("ONEX_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.CLIVersion != "1.4.0" {
		t.Errorf("expected cli_version=1.4.0, got %s", cfg.CLIVersion)
	}
	if cfg.Registry.URL != "https://registry.omninode.example" {
		t.Errorf("expected registry url, got %s", cfg.Registry.URL)
	}
	if cfg.CachePath != "/test/catalog.json" {
		t.Errorf("expected cache_path=/test/catalog.json, got %s", cfg.CachePath)
	}
	if !cfg.Policy.HideDeprecated {
		t.Error("expected hide_deprecated=true")
	}
	if len(cfg.Policy.CommandDenylist) != 1 || cfg.Policy.CommandDenylist[0] != "legacy/dump" {
		t.Errorf("expected denylist [legacy/dump], got %v", cfg.Policy.CommandDenylist)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "onex.yaml")
	if err := os.WriteFile(configPath, []byte("cli_version: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Registry: RegistryConfig{
			URL:             "https://registry.omninode.example",
			ContributionDir: "/srv/contributions",
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	message := err.Error()
	for _, want := range []string{"cli_version", "cache_path", "mutually exclusive"} {
		if !strings.Contains(message, want) {
			t.Errorf("validation error %q missing %q", message, want)
		}
	}
}
