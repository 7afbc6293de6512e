// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestCompressTo_RoundTrip(t *testing.T) {
	original := []byte(`{"cli_version":"1.4.0","commands":{}}`)

	var compressed bytes.Buffer
	if err := compressTo(&compressed, original); err != nil {
		t.Fatalf("compressTo: %v", err)
	}

	decoder, err := zstd.NewReader(&compressed)
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer decoder.Close()

	decompressed, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("decompressing: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Errorf("round trip = %q, want %q", decompressed, original)
	}
}
