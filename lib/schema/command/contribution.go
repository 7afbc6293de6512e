// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
)

// FingerprintLength is the length of a contribution fingerprint in
// hex characters (32-byte digest).
const FingerprintLength = 64

// Contribution is a signed bundle of command entries published by a
// single source. The signature covers the fingerprint (a content
// hash of Commands), so verification cost is independent of catalog
// size. The contribution, not the individual command, is the unit of
// trust: one bad signature poisons the whole bundle.
type Contribution struct {
	// Publisher identifies the publishing source
	// (e.g., "omninode.core"). Used as the key for the retained
	// signature record and named in every verification error.
	Publisher string `json:"publisher"`

	// Fingerprint is the hex-encoded content hash of Commands. This
	// is the signed payload. See catalog.Fingerprint for the
	// construction.
	Fingerprint string `json:"fingerprint"`

	// Signature is the base64url (unpadded) Ed25519 signature over
	// the raw bytes of the Fingerprint string.
	Signature string `json:"signature"`

	// SignerPublicKey is the base64url (unpadded) Ed25519 public key
	// that produced Signature.
	SignerPublicKey string `json:"signer_public_key"`

	// Commands are the entries this contribution publishes, in the
	// publisher's order. Order matters for fingerprinting but not for
	// catalog membership.
	Commands []Entry `json:"commands"`
}

// Validate checks structural invariants: a named publisher, a
// fingerprint of the right shape, signature material present, and
// every command entry valid. It does not verify the signature; that
// is lib/catalog's job.
func (c *Contribution) Validate() error {
	var errs []error

	if c.Publisher == "" {
		errs = append(errs, errors.New("contribution has no publisher"))
	}
	if len(c.Fingerprint) != FingerprintLength {
		errs = append(errs, fmt.Errorf("contribution %q: fingerprint is %d chars, want %d",
			c.Publisher, len(c.Fingerprint), FingerprintLength))
	}
	if c.Signature == "" {
		errs = append(errs, fmt.Errorf("contribution %q: missing signature", c.Publisher))
	}
	if c.SignerPublicKey == "" {
		errs = append(errs, fmt.Errorf("contribution %q: missing signer public key", c.Publisher))
	}

	for i := range c.Commands {
		if err := c.Commands[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("contribution %q: %w", c.Publisher, err))
		}
	}

	return errors.Join(errs...)
}

// SignatureRecord is the per-publisher signature material retained
// alongside the catalog snapshot. Load re-verifies these records
// against the cached fingerprints without re-fetching, so tampering
// with the cache file between writes and reads is caught.
type SignatureRecord struct {
	// Fingerprint is the signed content hash from the contribution
	// that produced the current snapshot.
	Fingerprint string `json:"fingerprint"`

	// Signature is the base64url Ed25519 signature over Fingerprint.
	Signature string `json:"signature"`

	// SignerPublicKey is the base64url Ed25519 public key.
	SignerPublicKey string `json:"signer_public_key"`
}

// Record extracts the signature record retained for this
// contribution's publisher.
func (c *Contribution) Record() SignatureRecord {
	return SignatureRecord{
		Fingerprint:     c.Fingerprint,
		Signature:       c.Signature,
		SignerPublicKey: c.SignerPublicKey,
	}
}
