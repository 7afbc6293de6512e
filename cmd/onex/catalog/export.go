// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"

	"github.com/OmniNode-ai/onex/cmd/onex/cli"
)

func exportCommand() *cli.Command {
	var configPath string
	var outputPath string

	return &cli.Command{
		Name:    "export",
		Summary: "Export the cached catalog as a zstd-compressed snapshot",
		Description: `Verify the cached catalog, then write it as a zstd-compressed JSON
snapshot. The snapshot is the exact cache document, signatures
included, so the receiving side can verify it the same way a local
load does. This is the transport format for air-gapped hosts: export
on a connected machine, decompress into the contribution directory's
cache path on the target.`,
		Usage: "onex catalog export [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("export", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path (overrides ONEX_CONFIG)")
			flagSet.StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
			return flagSet
		},
		Examples: []cli.Example{
			{Description: "Export to a file", Command: "onex catalog export -o catalog.json.zst"},
			{Description: "Export to stdout", Command: "onex catalog export > catalog.json.zst"},
		},
		Run: func(args []string) error {
			// Loading first guarantees we never export a cache that
			// would fail verification elsewhere.
			manager, err := loadedManager(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(manager.CachePath())
			if err != nil {
				return fmt.Errorf("reading catalog cache: %w", err)
			}

			var out io.Writer = os.Stdout
			if outputPath != "" {
				file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer file.Close()
				out = file
			}

			if err := compressTo(out, data); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			if outputPath != "" {
				fmt.Fprintf(os.Stderr, "exported %d commands to %s\n", manager.Len(), outputPath)
			}
			return nil
		},
	}
}

// compressTo zstd-compresses data onto w.
func compressTo(w io.Writer, data []byte) error {
	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := encoder.Write(data); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}
