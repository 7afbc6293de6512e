// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
)

func verifyCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "verify",
		Summary: "Verify the cached catalog",
		Description: `Load the cached catalog and re-verify it end to end: the cache key
against the stored content, the CLI version against the configured
one, and every publisher signature against its stored fingerprint.

Exits 0 when the cache is valid, 1 when it is missing, stale, or
fails verification.`,
		Usage: "onex catalog verify [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("verify", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			return flagSet
		},
		Run: func(args []string) error {
			manager, err := loadedManager(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "catalog verification failed: %v\n", err)
				return &cli.ExitError{Code: 1}
			}

			fmt.Printf("catalog ok: %d commands, %d publishers, cache key %s\n",
				manager.Len(), len(manager.Signatures()), manager.CacheKey())
			return nil
		},
	}
}
