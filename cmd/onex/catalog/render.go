// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/OmniNode-ai/onex/lib/catalog"
)

// diffRenderer writes a human-readable change summary. Colors are
// applied only when the destination is a terminal; piped output stays
// plain so scripts can parse it.
type diffRenderer struct {
	out     io.Writer
	colored bool
}

func newDiffRenderer(out io.Writer) *diffRenderer {
	colored := false
	if file, ok := out.(*os.File); ok {
		colored = term.IsTerminal(int(file.Fd()))
	}
	return &diffRenderer{out: out, colored: colored}
}

var (
	addedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	updatedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	deprecatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render writes one line per changed command, grouped by change kind,
// followed by a totals line. An empty diff renders a single
// "catalog unchanged" line.
func (r *diffRenderer) Render(diff catalog.Diff) {
	if diff.Empty() {
		fmt.Fprintln(r.out, "catalog unchanged")
		return
	}

	r.section("added", "+", addedStyle, diff.Added)
	r.section("removed", "-", removedStyle, diff.Removed)
	r.section("updated", "~", updatedStyle, diff.Updated)
	r.section("deprecated", "!", deprecatedStyle, diff.Deprecated)

	var totals []string
	for _, part := range []struct {
		label string
		count int
	}{
		{"added", len(diff.Added)},
		{"removed", len(diff.Removed)},
		{"updated", len(diff.Updated)},
		{"deprecated", len(diff.Deprecated)},
	} {
		if part.count > 0 {
			totals = append(totals, fmt.Sprintf("%d %s", part.count, part.label))
		}
	}
	fmt.Fprintln(r.out, strings.Join(totals, ", "))
}

func (r *diffRenderer) section(label, marker string, style lipgloss.Style, ids []string) {
	for _, id := range ids {
		line := fmt.Sprintf("%s %s (%s)", marker, id, label)
		if r.colored {
			line = style.Render(line)
		}
		fmt.Fprintln(r.out, line)
	}
}
