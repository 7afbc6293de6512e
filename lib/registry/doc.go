// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry provides clients for fetching signed command
// contributions from a registry. Three implementations cover the
// deployment shapes ONEX supports:
//
//   - [Static]: a fixed in-memory contribution list, used by tests
//     and by tooling that already holds the contributions.
//   - [HTTPClient]: fetches the contribution list from a registry
//     service over HTTP.
//   - [DirectoryClient]: reads contribution files from a local
//     directory, one JSONC file per publisher. This is the air-gapped
//     and development path.
//
// All three satisfy the catalog manager's RegistryClient interface.
// Clients fetch and decode only; signature verification and policy
// filtering belong to the catalog manager.
package registry
