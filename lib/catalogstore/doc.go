// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalogstore persists the materialized command catalog to a
// local cache file and reads it back.
//
// The on-disk format is stable-sorted JSON: repeated writes of
// identical content produce byte-identical files, so the cache is
// diffable and safe to checksum. The store owns only format and file
// handling; it performs no signature verification. The catalog
// manager re-verifies every stored signature record on load, which is
// what catches tampering with the file between writes and reads.
package catalogstore
