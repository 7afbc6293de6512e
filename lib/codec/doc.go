// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides deterministic CBOR encoding for ONEX.
//
// Contribution fingerprints and catalog entry comparison both depend
// on the same logical data always producing identical bytes. The
// encoder is configured with Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Decoding accepts standard CBOR and ignores
// unknown fields for forward compatibility.
package codec
