// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
)

func clearCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "clear",
		Summary: "Delete the cached catalog",
		Description: `Delete the catalog cache file and reset the in-memory catalog. The
next refresh rebuilds it from the registry. Clearing an already-empty
cache is not an error.`,
		Usage: "onex catalog clear [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("clear", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			return flagSet
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
			if err := manager.Clear(); err != nil {
				return err
			}
			fmt.Printf("cleared catalog cache %s\n", manager.CachePath())
			return nil
		},
	}
}
