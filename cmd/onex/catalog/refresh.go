// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
	"github.com/OmniNode-ai/onex/lib/catalog"
)

func refreshCommand() *cli.Command {
	var configPath string
	var quiet bool
	var timeout time.Duration

	return &cli.Command{
		Name:    "refresh",
		Summary: "Fetch, verify, and materialize the catalog",
		Description: `Fetch all contributions from the configured registry, verify every
signature and fingerprint, apply the visibility policy, and install
the result as the active catalog. Nothing is installed unless every
contribution verifies.

Prints the change summary against the previous catalog. A persist
failure after a successful refresh is reported but does not roll back
the refreshed catalog.`,
		Usage: "onex catalog refresh [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("refresh", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			flagSet.BoolVar(&quiet, "quiet", false, "suppress the change summary")
			flagSet.DurationVar(&timeout, "timeout", time.Minute, "overall fetch deadline")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Refresh from the configured registry", Command: "onex catalog refresh"},
			{Description: "Refresh with an explicit config file", Command: "onex catalog refresh --config ./onex.yaml"},
		},
		Run: func(args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			manager, err := newManager(cfg)
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "catalog/refresh")

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			started := time.Now()
			diff, err := manager.Refresh(ctx)
			if err != nil && !errors.Is(err, catalog.ErrPersist) {
				return err
			}

			if !quiet {
				newDiffRenderer(os.Stdout).Render(diff)
			}
			logger.Info("catalog refreshed",
				"commands", manager.Len(),
				"cache_key", manager.CacheKey(),
				"duration", time.Since(started).Round(time.Millisecond))

			if err != nil {
				// The catalog in memory is fresh; only the cache write
				// failed. Surface it without discarding the refresh.
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
