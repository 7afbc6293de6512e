// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete onex CLI command tree.
package commands

import (
	"fmt"

	catalogcmd "github.com/OmniNode-ai/onex/cmd/onex/catalog"
	"github.com/OmniNode-ai/onex/cmd/onex/cli"
	"github.com/OmniNode-ai/onex/lib/version"
)

// Root builds and returns the complete onex CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "onex",
		Description: `ONEX: OmniNode command tooling.

Materialize, verify, and inspect the signed command catalog that
backs OmniNode node tooling.`,
		Subcommands: []*cli.Command{
			catalogcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("onex %s\n", version.Version)
					return nil
				},
			},
		},
	}
}
