// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package command

import "testing"

func TestCacheKey_Format(t *testing.T) {
	key := CacheKey([]string{"onex/validate", "onex/lint"}, "1.4.0")
	if len(key) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(key))
	}
	for _, c := range key {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Fatalf("key %q is not lowercase hex", key)
		}
	}
}

func TestCacheKey_OrderInsensitive(t *testing.T) {
	forward := CacheKey([]string{"a", "b", "c"}, "1.0.0")
	shuffled := CacheKey([]string{"c", "a", "b"}, "1.0.0")
	if forward != shuffled {
		t.Error("key depends on input order")
	}
}

func TestCacheKey_DoesNotMutateInput(t *testing.T) {
	ids := []string{"c", "a", "b"}
	CacheKey(ids, "1.0.0")
	if ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("input slice reordered: %v", ids)
	}
}

func TestCacheKey_SensitiveToContent(t *testing.T) {
	base := CacheKey([]string{"a", "b"}, "1.0.0")

	if CacheKey([]string{"a", "b", "c"}, "1.0.0") == base {
		t.Error("key unchanged after adding an ID")
	}
	if CacheKey([]string{"a", "b"}, "2.0.0") == base {
		t.Error("key unchanged across versions")
	}
	// Concatenation ambiguity: {"ab"} must differ from {"a", "b"}.
	if CacheKey([]string{"ab"}, "1.0.0") == base {
		t.Error("id list hashing is ambiguous under concatenation")
	}
}
