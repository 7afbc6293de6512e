// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries the CLI version string. The catalog cache
// is keyed to this value: a cache materialized under one version is
// rejected by another, so changing Version invalidates every cache.
package version

// Version is the semantic version of the onex CLI. Overridden at
// build time via:
//
//	go build -ldflags "-X github.com/OmniNode-ai/onex/lib/version.Version=1.4.0"
var Version = "0.0.0-dev"
