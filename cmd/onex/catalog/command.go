// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
	"github.com/OmniNode-ai/onex/lib/catalog"
	"github.com/OmniNode-ai/onex/lib/config"
	"github.com/OmniNode-ai/onex/lib/registry"
)

// Command returns the "catalog" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Summary: "Manage the signed command catalog",
		Description: `Manage the signed command catalog.

The catalog is materialized from publisher contributions fetched from
a registry. Every contribution carries an Ed25519 signature over the
fingerprint of its command set; refresh verifies all signatures before
installing anything, and every later load re-verifies them. Commands
are filtered through the configured visibility policy before they
enter the catalog.

Configuration comes from the file named by the ONEX_CONFIG environment
variable or the --config flag.`,
		Subcommands: []*cli.Command{
			refreshCommand(),
			verifyCommand(),
			listCommand(),
			showCommand(),
			keyCommand(),
			clearCommand(),
			exportCommand(),
		},
	}
}

// loadConfig resolves configuration from --config or ONEX_CONFIG.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newManager builds a catalog manager from the configuration. The
// registry client is nil when no source is configured; refresh will
// reject that, cached reads do not care.
func newManager(cfg *config.Config) (*catalog.Manager, error) {
	var client catalog.RegistryClient
	switch {
	case cfg.Registry.URL != "":
		client = registry.NewHTTPClient(cfg.Registry.URL)
	case cfg.Registry.ContributionDir != "":
		client = registry.NewDirectoryClient(cfg.Registry.ContributionDir)
	}

	manager, err := catalog.NewManager(catalog.Options{
		Registry:   client,
		Policy:     cfg.Policy,
		CachePath:  cfg.CachePath,
		CLIVersion: cfg.CLIVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("building catalog manager: %w", err)
	}
	return manager, nil
}

// loadedManager builds a manager and loads the cached catalog into it.
func loadedManager(configPath string) (*catalog.Manager, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	manager, err := newManager(cfg)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	return manager, nil
}
