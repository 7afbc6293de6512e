// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalogstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// File is the on-disk cache document. Field order here is irrelevant:
// encoding/json emits struct fields in declaration order and map keys
// sorted, which together give the stable serialization the format
// requires.
type File struct {
	// CLIVersion is the CLI version the cache was materialized for.
	// Load refuses caches built for a different configured version.
	CLIVersion string `json:"cli_version"`

	// FetchedAt is the RFC3339 UTC timestamp of the refresh that
	// produced this cache.
	FetchedAt string `json:"fetched_at"`

	// CacheKey is command.CacheKey over the command IDs and
	// CLIVersion.
	CacheKey string `json:"cache_key"`

	// Commands is the policy-filtered snapshot, keyed by command ID.
	Commands map[string]command.Entry `json:"commands"`

	// Signatures holds the signature record of every contribution
	// that produced the snapshot, keyed by publisher. Retained even
	// for publishers whose commands were all filtered out, so load
	// can re-verify the complete provenance.
	Signatures map[string]command.SignatureRecord `json:"signatures"`
}

// Store reads and writes the catalog cache file at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store for the cache file at path. The file and
// its parent directories need not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns the per-user default cache file location
// (<user config dir>/onex/catalog.json).
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(configDir, "onex", "catalog.json"), nil
}

// Write persists a snapshot and its signature records, computing the
// cache key from the snapshot's command IDs. Parent directories are
// created as needed. The file is written to a temporary sibling and
// renamed into place so a crash mid-write never leaves a truncated
// cache.
func (s *Store) Write(snapshot map[string]command.Entry, signatures map[string]command.SignatureRecord, cliVersion string, fetchedAt time.Time) error {
	ids := make([]string, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}

	file := File{
		CLIVersion: cliVersion,
		FetchedAt:  fetchedAt.UTC().Format(time.RFC3339),
		CacheKey:   command.CacheKey(ids, cliVersion),
		Commands:   snapshot,
		Signatures: signatures,
	}

	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog cache: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", directory, err)
	}

	temp, err := os.CreateTemp(directory, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary cache file in %s: %w", directory, err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		os.Remove(tempPath)
		return fmt.Errorf("writing catalog cache %s: %w", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing catalog cache %s: %w", tempPath, err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("setting catalog cache permissions: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("installing catalog cache %s: %w", s.path, err)
	}

	return nil
}

// Read loads and decodes the cache file. A missing file or malformed
// JSON is an error naming the path. Read does not verify signatures
// or version compatibility; the catalog manager does both on load.
func (s *Store) Read() (*File, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog cache %s: %w", s.path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog cache %s: %w", s.path, err)
	}

	// Format-level integrity recheck: the stored cache key must be
	// the digest of the stored ids and version. Catches truncated or
	// hand-edited command sets without any cryptography.
	ids := make([]string, 0, len(file.Commands))
	for id := range file.Commands {
		ids = append(ids, id)
	}
	if expected := command.CacheKey(ids, file.CLIVersion); file.CacheKey != expected {
		return nil, fmt.Errorf("parsing catalog cache %s: cache key %s does not match content digest %s",
			s.path, file.CacheKey, expected)
	}

	return &file, nil
}

// Remove deletes the cache file. Removing a cache that does not exist
// is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing catalog cache %s: %w", s.path, err)
	}
	return nil
}
