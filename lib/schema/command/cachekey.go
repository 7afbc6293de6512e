// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// CacheKey computes the deterministic digest identifying a catalog's
// content and version: SHA-256 over the sorted command IDs followed by
// the CLI version, hex-encoded (64 characters). Two catalogs with the
// same visible command set and version always produce the same key,
// across calls and across processes.
//
// The key is stored in the cache file and used for quick equality
// checks between in-memory catalogs without comparing full content.
func CacheKey(ids []string, cliVersion string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	hasher := sha256.New()
	for _, id := range sorted {
		// Newline terminators keep id boundaries unambiguous: the id
		// lists ["ab", "c"] and ["a", "bc"] must not collide.
		hasher.Write([]byte(id))
		hasher.Write([]byte{'\n'})
	}
	hasher.Write([]byte(cliVersion))

	return hex.EncodeToString(hasher.Sum(nil))
}
