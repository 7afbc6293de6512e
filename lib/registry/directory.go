// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// DirectoryClient reads contributions from a local directory. Each
// publisher ships one file, <name>.json or <name>.jsonc, containing a
// single contribution. JSONC files may use // line comments, /* block
// comments */, and trailing commas.
type DirectoryClient struct {
	path string
}

// NewDirectoryClient returns a client reading from path. The
// directory must exist by the time ListAll is called.
func NewDirectoryClient(path string) *DirectoryClient {
	return &DirectoryClient{path: path}
}

// ListAll reads every contribution file in the directory, in
// lexical filename order so repeated runs see the same publisher
// precedence. Subdirectories and files with other extensions are
// skipped.
func (c *DirectoryClient) ListAll(ctx context.Context) ([]command.Contribution, error) {
	entries, err := os.ReadDir(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading contribution directory %s: %w", c.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		extension := filepath.Ext(entry.Name())
		if extension != ".json" && extension != ".jsonc" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	contributions := make([]command.Contribution, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(c.path, name)
		contribution, err := readContribution(path)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, contribution)
	}

	return contributions, nil
}

// readContribution strips JSONC syntax from the file and unmarshals
// the result.
func readContribution(path string) (command.Contribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return command.Contribution{}, fmt.Errorf("reading %s: %w", path, err)
	}

	stripped := data
	if strings.HasSuffix(path, ".jsonc") {
		stripped = jsonc.ToJSON(data)
	}

	var contribution command.Contribution
	if err := json.Unmarshal(stripped, &contribution); err != nil {
		return command.Contribution{}, fmt.Errorf("parsing contribution %s: %w", path, err)
	}

	return contribution, nil
}
