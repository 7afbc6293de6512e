// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalogstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

func testSnapshot() map[string]command.Entry {
	return map[string]command.Entry{
		"onex/validate": {ID: "onex/validate", Group: "core", Visibility: command.VisibilityActive},
		"onex/lint":     {ID: "onex/lint", Group: "core", Visibility: command.VisibilityActive},
	}
}

func testSignatures() map[string]command.SignatureRecord {
	return map[string]command.SignatureRecord{
		"omninode.core": {
			Fingerprint:     strings.Repeat("ab", 32),
			Signature:       "c2lnbmF0dXJl",
			SignerPublicKey: "cHVibGljLWtleQ",
		},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "catalog.json"))
	fetchedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if err := store.Write(testSnapshot(), testSignatures(), "1.4.0", fetchedAt); err != nil {
		t.Fatalf("Write: %v", err)
	}

	file, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if file.CLIVersion != "1.4.0" {
		t.Errorf("CLIVersion = %q", file.CLIVersion)
	}
	if file.FetchedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("FetchedAt = %q", file.FetchedAt)
	}
	if file.CacheKey != command.CacheKey([]string{"onex/lint", "onex/validate"}, "1.4.0") {
		t.Errorf("CacheKey = %q", file.CacheKey)
	}
	if len(file.Commands) != 2 {
		t.Errorf("Commands = %d entries, want 2", len(file.Commands))
	}
	if _, ok := file.Signatures["omninode.core"]; !ok {
		t.Error("signature record missing after round trip")
	}
}

func TestWrite_StableSerialization(t *testing.T) {
	directory := t.TempDir()
	fetchedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	write := func(name string) []byte {
		t.Helper()
		store := NewStore(filepath.Join(directory, name))
		if err := store.Write(testSnapshot(), testSignatures(), "1.4.0", fetchedAt); err != nil {
			t.Fatalf("Write: %v", err)
		}
		data, err := os.ReadFile(store.Path())
		if err != nil {
			t.Fatalf("reading written cache: %v", err)
		}
		return data
	}

	first := write("a.json")
	second := write("b.json")

	if !bytes.Equal(first, second) {
		t.Error("identical content produced different bytes on disk")
	}
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "catalog.json")
	store := NewStore(path)

	if err := store.Write(testSnapshot(), testSignatures(), "1.4.0", time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat written cache: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("cache mode = %o, want 0644", perm)
	}
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	directory := t.TempDir()
	store := NewStore(filepath.Join(directory, "catalog.json"))

	if err := store.Write(testSnapshot(), testSignatures(), "1.4.0", time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "catalog.json" {
		names := make([]string, len(entries))
		for i, entry := range entries {
			names[i] = entry.Name()
		}
		t.Errorf("directory contents = %v, want only catalog.json", names)
	}
}

func TestRead_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	store := NewStore(path)

	_, err := store.Read()
	if err == nil {
		t.Fatal("Read of missing file succeeded")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the cache path", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not preserve the not-exist cause", err)
	}
}

func TestRead_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{\"cli_version\": "), 0644); err != nil {
		t.Fatalf("writing malformed cache: %v", err)
	}

	if _, err := NewStore(path).Read(); err == nil {
		t.Error("Read of malformed JSON succeeded")
	}
}

func TestRead_CacheKeyMismatch(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "catalog.json"))
	if err := store.Write(testSnapshot(), testSignatures(), "1.4.0", time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Drop a command from the stored set without updating the key.
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	truncated := bytes.Replace(data, []byte(`"onex/lint"`), []byte(`"onex/cut"`), 1)
	if bytes.Equal(truncated, data) {
		t.Fatal("tamper replacement did not apply")
	}
	if err := os.WriteFile(store.Path(), truncated, 0644); err != nil {
		t.Fatalf("writing tampered cache: %v", err)
	}

	_, err = store.Read()
	if err == nil {
		t.Fatal("Read accepted a cache whose key no longer matches its content")
	}
	if !strings.Contains(err.Error(), "cache key") {
		t.Errorf("error %q does not mention the cache key mismatch", err)
	}
}

func TestRemove(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "catalog.json"))

	// Removing a cache that never existed is fine.
	if err := store.Remove(); err != nil {
		t.Fatalf("Remove without file: %v", err)
	}

	if err := store.Write(testSnapshot(), testSignatures(), "1.4.0", time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("cache still present after Remove: %v", err)
	}
}
