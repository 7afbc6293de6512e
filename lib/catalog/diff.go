// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"sort"

	"github.com/OmniNode-ai/onex/lib/codec"
	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// Diff classifies what changed between two catalog snapshots. One
// diff is computed per refresh, comparing the snapshot that was live
// against the one about to be installed. All four lists are sorted,
// so diff output is deterministic and directly comparable.
//
// The four lists are pairwise disjoint: an id appears in exactly one
// of them, or in none.
type Diff struct {
	// Added lists ids present only in the new snapshot.
	Added []string

	// Removed lists ids present only in the old snapshot.
	Removed []string

	// Updated lists ids present in both whose content changed and
	// whose new visibility is not deprecated.
	Updated []string

	// Deprecated lists ids present in both whose content changed and
	// whose new visibility is deprecated. A command transitioning
	// into deprecation is reported here only, never also in Updated,
	// so deprecation notices reach the CLI consumer unambiguously.
	Deprecated []string
}

// Empty reports whether the diff records no changes at all.
func (d *Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 &&
		len(d.Updated) == 0 && len(d.Deprecated) == 0
}

// ComputeDiff compares two snapshots keyed by command id. Entries
// present in both are compared by their deterministic encoding;
// byte-identical entries are ignored. Content changes classify by the
// new entry's visibility only: an entry leaving deprecation counts as
// updated, an entry entering it counts as deprecated.
func ComputeDiff(old, new map[string]command.Entry) Diff {
	var diff Diff

	for id, newEntry := range new {
		oldEntry, existed := old[id]
		if !existed {
			diff.Added = append(diff.Added, id)
			continue
		}
		if entriesEqual(oldEntry, newEntry) {
			continue
		}
		if newEntry.Visibility == command.VisibilityDeprecated {
			diff.Deprecated = append(diff.Deprecated, id)
		} else {
			diff.Updated = append(diff.Updated, id)
		}
	}

	for id := range old {
		if _, present := new[id]; !present {
			diff.Removed = append(diff.Removed, id)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Updated)
	sort.Strings(diff.Deprecated)

	return diff
}

// entriesEqual compares two entries by deterministic CBOR encoding.
// Encoding a value type of strings and string maps cannot fail; a
// failure here is a bug in the entry type, not a runtime condition.
func entriesEqual(a, b command.Entry) bool {
	encodedA, err := codec.Marshal(a)
	if err != nil {
		panic("catalog: encoding entry for comparison: " + err.Error())
	}
	encodedB, err := codec.Marshal(b)
	if err != nil {
		panic("catalog: encoding entry for comparison: " + err.Error())
	}
	return bytes.Equal(encodedA, encodedB)
}
