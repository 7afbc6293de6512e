// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"strings"
)

// Visibility is a command's lifecycle stage. It drives policy
// filtering: deprecated and experimental commands can be hidden
// without removing them from the registry.
type Visibility string

const (
	// VisibilityActive marks a command as generally available.
	VisibilityActive Visibility = "active"

	// VisibilityDeprecated marks a command as scheduled for removal.
	// Still invocable, but hidden when the policy sets HideDeprecated.
	VisibilityDeprecated Visibility = "deprecated"

	// VisibilityExperimental marks a command whose contract may still
	// change. Hidden when the policy sets HideExperimental.
	VisibilityExperimental Visibility = "experimental"
)

// Valid reports whether v is one of the defined visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityActive, VisibilityDeprecated, VisibilityExperimental:
		return true
	}
	return false
}

// ParseVisibility parses a visibility string, rejecting anything
// outside the defined values.
func ParseVisibility(s string) (Visibility, error) {
	visibility := Visibility(s)
	if !visibility.Valid() {
		return "", fmt.Errorf("unknown visibility %q (want active, deprecated, or experimental)", s)
	}
	return visibility, nil
}

// Entry is a single command descriptor in the catalog. Entries are
// immutable values; identity is the globally namespaced ID. Two
// entries are the same catalog member iff their IDs are equal, and
// unchanged iff their deterministic encodings are byte-identical.
type Entry struct {
	// ID is the globally namespaced command identifier
	// (e.g., "onex/validate"). Unique across all publishers; on
	// collision the last contribution wins.
	ID string `json:"id" cbor:"id"`

	// Group is the CLI grouping the command is listed under
	// (e.g., "core", "schema").
	Group string `json:"group,omitempty" cbor:"group,omitempty"`

	// Permissions are the role/tag strings attached to the command.
	// Policy evaluation intersects these with the allowed-role and
	// blocked-org-tag sets.
	Permissions []string `json:"permissions,omitempty" cbor:"permissions,omitempty"`

	// Visibility is the command's lifecycle stage.
	Visibility Visibility `json:"visibility" cbor:"visibility"`

	// Summary is the one-line description shown in catalog listings.
	Summary string `json:"summary,omitempty" cbor:"summary,omitempty"`

	// Annotations carries publisher-defined fields the catalog stores
	// and serves opaquely (help topics, owner contact, deprecation
	// replacement, ...). Content changes here count as updates in the
	// refresh diff.
	Annotations map[string]string `json:"annotations,omitempty" cbor:"annotations,omitempty"`
}

// Validate checks the field invariants enforced at construction:
// non-empty well-formed ID and a defined visibility value.
func (e *Entry) Validate() error {
	var errs []error

	if e.ID == "" {
		errs = append(errs, errors.New("command id is empty"))
	} else if strings.TrimSpace(e.ID) != e.ID {
		errs = append(errs, fmt.Errorf("command id %q has leading or trailing whitespace", e.ID))
	}

	if !e.Visibility.Valid() {
		errs = append(errs, fmt.Errorf("command %q: unknown visibility %q", e.ID, e.Visibility))
	}

	return errors.Join(errs...)
}

// HasPermission reports whether the entry carries the given
// permission string.
func (e *Entry) HasPermission(permission string) bool {
	for _, p := range e.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
