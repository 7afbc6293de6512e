// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
)

func showCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "show",
		Summary: "Show one command from the cached catalog",
		Usage:   "onex catalog show <command-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			flagSet.BoolVar(&asJSON, "json", false, "emit the entry as JSON")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Show a command", Command: "onex catalog show onex/validate"},
			{Description: "Machine-readable output", Command: "onex catalog show onex/validate --json"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one command ID, got %d arguments", len(args))
			}
			id := args[0]

			manager, err := loadedManager(configPath)
			if err != nil {
				return err
			}

			entry, ok := manager.Get(id)
			if !ok {
				return fmt.Errorf("command %q is not in the catalog; "+
					"it may be hidden by policy, or the catalog may be stale "+
					"(run \"onex catalog refresh\")", id)
			}

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entry)
			}

			fmt.Printf("ID:          %s\n", entry.ID)
			fmt.Printf("Group:       %s\n", entry.Group)
			fmt.Printf("Visibility:  %s\n", entry.Visibility)
			if entry.Summary != "" {
				fmt.Printf("Summary:     %s\n", entry.Summary)
			}
			if len(entry.Permissions) > 0 {
				fmt.Printf("Permissions: %s\n", strings.Join(entry.Permissions, ", "))
			}
			if len(entry.Annotations) > 0 {
				keys := make([]string, 0, len(entry.Annotations))
				for key := range entry.Annotations {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				fmt.Println("Annotations:")
				for _, key := range keys {
					fmt.Printf("  %s: %s\n", key, entry.Annotations[key])
				}
			}
			return nil
		},
	}
}
