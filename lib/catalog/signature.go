// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// VerifySignature verifies a detached Ed25519 signature over the raw
// bytes of a fingerprint string. signatureB64 and publicKeyB64 are
// base64url without padding.
//
// Every failure, including a decode failure, is a hard error wrapping
// [ErrSignature] and naming the publisher. A malformed key is treated
// exactly like a forged signature: there is no path on which bad
// material is skipped.
func VerifySignature(publisher, fingerprint, signatureB64, publicKeyB64 string) error {
	publicKey, err := base64.RawURLEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return fmt.Errorf("%w: publisher %q: decoding public key: %v", ErrSignature, publisher, err)
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: publisher %q: public key is %d bytes, want %d",
			ErrSignature, publisher, len(publicKey), ed25519.PublicKeySize)
	}

	signature, err := base64.RawURLEncoding.DecodeString(signatureB64)
	if err != nil {
		return fmt.Errorf("%w: publisher %q: decoding signature: %v", ErrSignature, publisher, err)
	}
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("%w: publisher %q: signature is %d bytes, want %d",
			ErrSignature, publisher, len(signature), ed25519.SignatureSize)
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), []byte(fingerprint), signature) {
		return fmt.Errorf("%w: publisher %q: Ed25519 signature does not verify", ErrSignature, publisher)
	}

	return nil
}

// VerifyContribution fully verifies a fetched contribution: the
// fingerprint must be the content hash of the command list, and the
// signature must verify over it. Refresh runs this on every
// contribution before any state mutation.
//
// Load does not use this function. The cached snapshot is the
// filtered union across publishers, so per-publisher fingerprints
// cannot be recomputed from it; load re-verifies the stored signature
// records with [VerifySignature] instead.
func VerifyContribution(contribution *command.Contribution) error {
	if err := contribution.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrSignature, err)
	}

	fingerprint, err := Fingerprint(contribution.Commands)
	if err != nil {
		return err
	}
	if fingerprint != contribution.Fingerprint {
		return fmt.Errorf("%w: publisher %q: fingerprint %s does not match command content hash %s",
			ErrSignature, contribution.Publisher, contribution.Fingerprint, fingerprint)
	}

	return VerifySignature(contribution.Publisher, contribution.Fingerprint,
		contribution.Signature, contribution.SignerPublicKey)
}
