// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog implements the "onex catalog" command group:
// materializing the signed command catalog from a registry, verifying
// and inspecting the cached catalog, and exporting snapshots.
package catalog
