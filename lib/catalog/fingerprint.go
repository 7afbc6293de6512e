// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/OmniNode-ai/onex/lib/codec"
	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// fingerprintDomainKey is the BLAKE3 keyed-hash domain for command
// contribution fingerprints. A fixed constant: changing it invalidates
// every published fingerprint. The bytes are the ASCII domain name
// zero-padded to 32 bytes, so the key is readable in hex dumps without
// weakening the construction (keyed BLAKE3 treats the key as opaque).
var fingerprintDomainKey = [32]byte{
	'o', 'n', 'e', 'x', '.', 'c', 'a', 't', 'a', 'l', 'o', 'g', '.',
	'c', 'o', 'm', 'm', 'a', 'n', 'd', 's', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint computes the content hash of a command list: the keyed
// BLAKE3 digest of its deterministic CBOR encoding, hex-encoded to 64
// characters. The fingerprint, not the command list, is the signed
// payload, which keeps signature verification O(1) in catalog size.
//
// Command order matters: publishers sign the list as they published
// it.
func Fingerprint(commands []command.Entry) (string, error) {
	payload, err := codec.Marshal(commands)
	if err != nil {
		return "", fmt.Errorf("catalog: encoding commands for fingerprint: %w", err)
	}

	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		// NewKeyed fails only for a wrong key length, which the
		// fixed-size array rules out.
		panic("catalog: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(payload)

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// SignContribution builds a complete signed contribution for a
// publisher: fingerprints the command list, signs the fingerprint
// bytes with the Ed25519 private key, and embeds the base64url
// signature and public key. This is the publisher-side mirror of
// [VerifyContribution]; registry fixtures and tests use it to produce
// material that verifies.
func SignContribution(private ed25519.PrivateKey, publisher string, commands []command.Entry) (command.Contribution, error) {
	fingerprint, err := Fingerprint(commands)
	if err != nil {
		return command.Contribution{}, err
	}

	signature := ed25519.Sign(private, []byte(fingerprint))
	public := private.Public().(ed25519.PublicKey)

	contribution := command.Contribution{
		Publisher:       publisher,
		Fingerprint:     fingerprint,
		Signature:       base64.RawURLEncoding.EncodeToString(signature),
		SignerPublicKey: base64.RawURLEncoding.EncodeToString(public),
		Commands:        commands,
	}

	if err := contribution.Validate(); err != nil {
		return command.Contribution{}, fmt.Errorf("catalog: signing produced an invalid contribution: %w", err)
	}

	return contribution, nil
}

// GenerateSigningKey creates a new Ed25519 keypair for contribution
// signing.
func GenerateSigningKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	public, private, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: generating Ed25519 keypair: %w", err)
	}
	return public, private, nil
}
