// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
)

func keyCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "key",
		Summary: "Print the cache key of the cached catalog",
		Description: `Print the cache key: the SHA-256 digest of the sorted visible command
IDs and the CLI version. Tooling uses it to detect catalog changes
without comparing full snapshots.`,
		Usage: "onex catalog key [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("key", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			return flagSet
		},
		Run: func(args []string) error {
			manager, err := loadedManager(configPath)
			if err != nil {
				return err
			}
			fmt.Println(manager.CacheKey())
			return nil
		},
	}
}
