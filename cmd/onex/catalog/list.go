// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
)

func listCommand() *cli.Command {
	var configPath string
	var group string

	return &cli.Command{
		Name:    "list",
		Summary: "List visible commands from the cached catalog",
		Usage:   "onex catalog list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			flagSet.StringVar(&group, "group", "", "only commands in this group")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "List every visible command", Command: "onex catalog list"},
			{Description: "List one group", Command: "onex catalog list --group core"},
		},
		Run: func(args []string) error {
			manager, err := loadedManager(configPath)
			if err != nil {
				return err
			}

			entries := manager.List(group)
			if len(entries) == 0 {
				if group != "" {
					fmt.Printf("no visible commands in group %q\n", group)
				} else {
					fmt.Println("catalog is empty")
				}
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tGROUP\tVISIBILITY\tSUMMARY")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					entry.ID, entry.Group, entry.Visibility, entry.Summary)
			}
			return tw.Flush()
		},
	}
}
