// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"
	"testing"
)

func TestParseVisibility(t *testing.T) {
	for _, name := range []string{"active", "deprecated", "experimental"} {
		visibility, err := ParseVisibility(name)
		if err != nil {
			t.Errorf("ParseVisibility(%q): %v", name, err)
		}
		if string(visibility) != name {
			t.Errorf("ParseVisibility(%q) = %q", name, visibility)
		}
	}

	if _, err := ParseVisibility("retired"); err == nil {
		t.Error("ParseVisibility accepted unknown value")
	}
	if _, err := ParseVisibility(""); err == nil {
		t.Error("ParseVisibility accepted empty value")
	}
	if _, err := ParseVisibility("ACTIVE"); err == nil {
		t.Error("ParseVisibility accepted wrong case")
	}
}

func TestEntryValidate(t *testing.T) {
	entry := Entry{ID: "onex/validate", Group: "core", Visibility: VisibilityActive}
	if err := entry.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	missing := Entry{Visibility: VisibilityActive}
	if err := missing.Validate(); err == nil {
		t.Error("Validate accepted empty id")
	}

	padded := Entry{ID: " onex/validate", Visibility: VisibilityActive}
	if err := padded.Validate(); err == nil {
		t.Error("Validate accepted whitespace-padded id")
	}

	badVisibility := Entry{ID: "onex/validate", Visibility: "retired"}
	err := badVisibility.Validate()
	if err == nil {
		t.Fatal("Validate accepted unknown visibility")
	}
	if !strings.Contains(err.Error(), "onex/validate") {
		t.Errorf("error does not name the command: %v", err)
	}
}

func TestContributionValidate(t *testing.T) {
	valid := Contribution{
		Publisher:       "omninode.core",
		Fingerprint:     strings.Repeat("ab", 32),
		Signature:       "c2lnbmF0dXJl",
		SignerPublicKey: "cHVibGlja2V5",
		Commands: []Entry{
			{ID: "onex/validate", Visibility: VisibilityActive},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	noPublisher := valid
	noPublisher.Publisher = ""
	if err := noPublisher.Validate(); err == nil {
		t.Error("Validate accepted missing publisher")
	}

	shortFingerprint := valid
	shortFingerprint.Fingerprint = "abcd"
	if err := shortFingerprint.Validate(); err == nil {
		t.Error("Validate accepted short fingerprint")
	}

	badCommand := valid
	badCommand.Commands = []Entry{{Visibility: VisibilityActive}}
	err := badCommand.Validate()
	if err == nil {
		t.Fatal("Validate accepted invalid command entry")
	}
	if !strings.Contains(err.Error(), "omninode.core") {
		t.Errorf("error does not name the publisher: %v", err)
	}
}

func TestContributionRecord(t *testing.T) {
	contribution := Contribution{
		Publisher:       "omninode.core",
		Fingerprint:     strings.Repeat("01", 32),
		Signature:       "sig",
		SignerPublicKey: "key",
	}

	record := contribution.Record()
	if record.Fingerprint != contribution.Fingerprint {
		t.Errorf("Fingerprint = %q", record.Fingerprint)
	}
	if record.Signature != "sig" || record.SignerPublicKey != "key" {
		t.Errorf("record = %+v", record)
	}
}
