// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog materializes signed command contributions into a
// locally cached, policy-filtered lookup table and detects tampering,
// version skew, and change between materializations.
//
// The entry point is [Manager]:
//
//   - [Manager.Refresh] fetches contributions from the registry,
//     verifies every signature before touching any state, builds a
//     policy-filtered candidate snapshot, diffs it against the live
//     snapshot, swaps the snapshot and signature set as a single
//     unit, and persists via lib/catalogstore.
//   - [Manager.Load] reads the cache file, checks the CLI version,
//     re-verifies every stored signature record, validates every
//     entry, and installs the state. Re-verification on every load is
//     the defense against on-disk tampering after the cache was
//     written.
//   - [Manager.Get], [Manager.List], [Manager.IsVisible], and
//     [Manager.CacheKey] read only in-memory state; they never touch
//     the network or cryptography.
//
// Verification fails closed: any signature failure aborts the whole
// operation and the previous good state stays authoritative. There is
// no partial trust and no downgrade to a warning.
//
// The pure pieces are exported for direct use: [Fingerprint] and
// [SignContribution] for publishers, [VerifySignature] and
// [VerifyContribution] for consumers, [Visible] for policy
// evaluation, and [ComputeDiff] for snapshot comparison.
package catalog
