// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package command

// Policy is the visibility policy applied when materializing the
// catalog. Supplied once at manager construction and never mutated.
//
// Evaluation order is a contract (see catalog.Visible): the allowlist
// is checked first so operators can force-expose a command regardless
// of role, tag, or lifecycle rules below it.
type Policy struct {
	// CommandAllowlist force-exposes the listed command IDs,
	// overriding every other rule.
	CommandAllowlist []string `json:"command_allowlist,omitempty" yaml:"command_allowlist"`

	// CommandDenylist hides the listed command IDs (unless
	// allowlisted).
	CommandDenylist []string `json:"command_denylist,omitempty" yaml:"command_denylist"`

	// AllowedRoles, when non-empty, hides any command whose
	// permissions share no member with this set.
	AllowedRoles []string `json:"allowed_roles,omitempty" yaml:"allowed_roles"`

	// BlockedOrgTags hides any command whose permissions intersect
	// this set.
	BlockedOrgTags []string `json:"blocked_org_tags,omitempty" yaml:"blocked_org_tags"`

	// HideDeprecated hides commands with deprecated visibility.
	HideDeprecated bool `json:"hide_deprecated,omitempty" yaml:"hide_deprecated"`

	// HideExperimental hides commands with experimental visibility.
	HideExperimental bool `json:"hide_experimental,omitempty" yaml:"hide_experimental"`
}
