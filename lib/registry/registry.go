// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// Static serves a fixed contribution list from memory.
type Static struct {
	contributions []command.Contribution
}

// NewStatic returns a client serving the given contributions. The
// slice is not copied; callers must not mutate it after handoff.
func NewStatic(contributions []command.Contribution) *Static {
	return &Static{contributions: contributions}
}

// ListAll returns the configured contributions.
func (s *Static) ListAll(ctx context.Context) ([]command.Contribution, error) {
	return s.contributions, nil
}
