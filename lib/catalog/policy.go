// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import "github.com/OmniNode-ai/onex/lib/schema/command"

// Visible evaluates the visibility policy for a single command entry.
// Rules apply in order, first match wins:
//
//  1. allowlisted id: visible
//  2. denylisted id: hidden
//  3. allowed roles configured and no permission matches: hidden
//  4. any permission in the blocked org tags: hidden
//  5. deprecated and HideDeprecated: hidden
//  6. experimental and HideExperimental: hidden
//  7. otherwise: visible
//
// The order is a contract, not an implementation detail: the
// allowlist must be checked before everything else so operators can
// force-expose a command regardless of role, tag, or lifecycle rules.
func Visible(entry command.Entry, policy command.Policy) bool {
	if containsString(policy.CommandAllowlist, entry.ID) {
		return true
	}
	if containsString(policy.CommandDenylist, entry.ID) {
		return false
	}

	if len(policy.AllowedRoles) > 0 && !holdsAny(&entry, policy.AllowedRoles) {
		return false
	}
	if holdsAny(&entry, policy.BlockedOrgTags) {
		return false
	}

	if policy.HideDeprecated && entry.Visibility == command.VisibilityDeprecated {
		return false
	}
	if policy.HideExperimental && entry.Visibility == command.VisibilityExperimental {
		return false
	}

	return true
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// holdsAny reports whether the entry carries any of the given
// permissions. Policy sets are small (tens of entries), so the
// quadratic scan beats building a map.
func holdsAny(entry *command.Entry, permissions []string) bool {
	for _, permission := range permissions {
		if entry.HasPermission(permission) {
			return true
		}
	}
	return false
}
