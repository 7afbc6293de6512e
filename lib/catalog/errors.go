// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import "errors"

// Error kinds returned by the manager. Each carries its remediation
// in the message so that a bare CLI "error:" line already tells the
// operator what to do next. Match with errors.Is; details (publisher,
// path, version pair) are attached by wrapping.
var (
	// ErrNoRegistry is returned by Refresh when the manager was
	// constructed without a registry client.
	ErrNoRegistry = errors.New("catalog: no registry client configured; construct the manager with a registry before calling refresh")

	// ErrSignature is returned when a contribution or stored
	// signature record fails to decode or verify. Always fatal for
	// the whole operation: accepting a partially verified catalog
	// would defeat the point of signing it.
	ErrSignature = errors.New(`catalog: signature verification failed; refuse to use this catalog, re-run "onex catalog refresh" against a trusted registry`)

	// ErrCacheLoad is returned by Load when the cache file is
	// missing, malformed, or contains an invalid entry.
	ErrCacheLoad = errors.New(`catalog: cannot load the catalog cache; run "onex catalog refresh" to rebuild it`)

	// ErrVersionMismatch is returned by Load when the cache was
	// written by a different CLI version than the manager is
	// configured for.
	ErrVersionMismatch = errors.New(`catalog: cache was built for a different CLI version; run "onex catalog refresh" to rebuild it`)

	// ErrPersist is returned by Refresh when the in-memory swap
	// succeeded but the cache file could not be written. The
	// refreshed catalog is authoritative for this process; only the
	// next process start is affected.
	ErrPersist = errors.New("catalog: refreshed catalog could not be persisted; the in-memory catalog is current, check cache path permissions before the next run")
)
