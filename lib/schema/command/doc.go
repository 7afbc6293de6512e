// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package command defines the value types of the ONEX command catalog:
// command entries, signed contributions, per-publisher signature
// records, and the visibility policy configuration.
//
// These are plain data types with constructor-time validation. The
// verification, filtering, and diffing logic that operates on them
// lives in lib/catalog; the on-disk cache format lives in
// lib/catalogstore.
//
// This package depends on no other ONEX packages.
package command
