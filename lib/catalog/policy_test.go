// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

func TestVisible_DefaultPolicy(t *testing.T) {
	entry := command.Entry{ID: "onex/validate", Visibility: command.VisibilityActive}
	if !Visible(entry, command.Policy{}) {
		t.Error("active command hidden under empty policy")
	}

	deprecated := command.Entry{ID: "onex/legacy", Visibility: command.VisibilityDeprecated}
	if !Visible(deprecated, command.Policy{}) {
		t.Error("deprecated command hidden when HideDeprecated is off")
	}
}

func TestVisible_AllowlistOverridesEverything(t *testing.T) {
	entry := command.Entry{
		ID:          "onex/forced",
		Permissions: []string{"internal"},
		Visibility:  command.VisibilityDeprecated,
	}

	policy := command.Policy{
		CommandAllowlist: []string{"onex/forced"},
		CommandDenylist:  []string{"onex/forced"},
		AllowedRoles:     []string{"operator"},
		BlockedOrgTags:   []string{"internal"},
		HideDeprecated:   true,
	}

	if !Visible(entry, policy) {
		t.Error("allowlisted command hidden despite denylist, role, tag, and lifecycle rules")
	}
}

func TestVisible_Denylist(t *testing.T) {
	entry := command.Entry{ID: "onex/hidden", Visibility: command.VisibilityActive}
	policy := command.Policy{CommandDenylist: []string{"onex/hidden"}}

	if Visible(entry, policy) {
		t.Error("denylisted command visible")
	}
}

func TestVisible_AllowedRoles(t *testing.T) {
	policy := command.Policy{AllowedRoles: []string{"operator", "admin"}}

	match := command.Entry{ID: "a", Permissions: []string{"admin"}, Visibility: command.VisibilityActive}
	if !Visible(match, policy) {
		t.Error("command with matching role hidden")
	}

	noMatch := command.Entry{ID: "b", Permissions: []string{"viewer"}, Visibility: command.VisibilityActive}
	if Visible(noMatch, policy) {
		t.Error("command without matching role visible")
	}

	noPermissions := command.Entry{ID: "c", Visibility: command.VisibilityActive}
	if Visible(noPermissions, policy) {
		t.Error("command with no permissions visible when roles are restricted")
	}
}

func TestVisible_BlockedOrgTags(t *testing.T) {
	policy := command.Policy{BlockedOrgTags: []string{"internal"}}

	blocked := command.Entry{ID: "a", Permissions: []string{"core", "internal"}, Visibility: command.VisibilityActive}
	if Visible(blocked, policy) {
		t.Error("command with blocked tag visible")
	}

	clean := command.Entry{ID: "b", Permissions: []string{"core"}, Visibility: command.VisibilityActive}
	if !Visible(clean, policy) {
		t.Error("command without blocked tag hidden")
	}
}

func TestVisible_LifecycleHiding(t *testing.T) {
	deprecated := command.Entry{ID: "a", Visibility: command.VisibilityDeprecated}
	experimental := command.Entry{ID: "b", Visibility: command.VisibilityExperimental}

	if Visible(deprecated, command.Policy{HideDeprecated: true}) {
		t.Error("deprecated command visible with HideDeprecated")
	}
	if !Visible(experimental, command.Policy{HideDeprecated: true}) {
		t.Error("experimental command hidden by HideDeprecated")
	}

	if Visible(experimental, command.Policy{HideExperimental: true}) {
		t.Error("experimental command visible with HideExperimental")
	}
	if !Visible(deprecated, command.Policy{HideExperimental: true}) {
		t.Error("deprecated command hidden by HideExperimental")
	}
}

func TestVisible_AllowlistedDeprecatedStaysVisible(t *testing.T) {
	entry := command.Entry{ID: "onex/legacy", Visibility: command.VisibilityDeprecated}
	policy := command.Policy{
		CommandAllowlist: []string{"onex/legacy"},
		HideDeprecated:   true,
	}

	if !Visible(entry, policy) {
		t.Error("allowlisted deprecated command hidden despite allowlist precedence")
	}
}
