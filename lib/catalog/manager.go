// Copyright 2026 The ONEX Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/OmniNode-ai/onex/lib/catalogstore"
	"github.com/OmniNode-ai/onex/lib/schema/command"
)

// RegistryClient is the consumed interface to the registry that
// publishes signed contributions. The manager performs no retries or
// backoff around ListAll; timeout and failure semantics belong to the
// implementation. An empty list is a valid result meaning "nothing to
// refresh", not an error.
type RegistryClient interface {
	ListAll(ctx context.Context) ([]command.Contribution, error)
}

// Options configures a Manager. All dependencies are explicit; there
// is no process-wide singleton. Callers that want a shared manager
// pass the same instance around.
type Options struct {
	// Registry supplies contributions for Refresh. May be nil for a
	// read-only manager that only loads from cache; Refresh then
	// fails with ErrNoRegistry.
	Registry RegistryClient

	// Policy is the visibility policy applied when building
	// snapshots. Immutable for the manager's lifetime.
	Policy command.Policy

	// CachePath overrides the cache file location. Empty means the
	// per-user default (catalogstore.DefaultPath).
	CachePath string

	// CLIVersion is the version stamped into cache writes and
	// enforced on loads. Empty disables the version check.
	CLIVersion string
}

// Manager owns the materialized catalog: the policy-filtered snapshot
// and the signature records of the contributions that produced it.
// The pair is guarded by one RWMutex and only ever replaced as a
// single unit, so no reader observes a snapshot paired with a
// mismatched signature set.
//
// Refresh and Load do all fetching, verification, and building before
// taking the write lock; the lock is held only for the swap. Fast
// reads take the read lock and never block each other.
//
// Locking discipline: public methods take the lock exactly once and
// never call other public methods while holding it.
type Manager struct {
	registry   RegistryClient
	policy     command.Policy
	store      *catalogstore.Store
	cliVersion string

	mu         sync.RWMutex
	snapshot   map[string]command.Entry
	signatures map[string]command.SignatureRecord
	cacheKey   string
}

// NewManager constructs a manager with an empty catalog. Call Load to
// populate it from the cache file, or Refresh to materialize from the
// registry.
func NewManager(options Options) (*Manager, error) {
	cachePath := options.CachePath
	if cachePath == "" {
		var err error
		cachePath, err = catalogstore.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}

	return &Manager{
		registry:   options.Registry,
		policy:     options.Policy,
		store:      catalogstore.NewStore(cachePath),
		cliVersion: options.CLIVersion,
	}, nil
}

// CachePath returns the cache file path this manager persists to.
func (m *Manager) CachePath() string {
	return m.store.Path()
}

// Refresh materializes the catalog from the registry: fetch all
// contributions, verify every signature, build the policy-filtered
// candidate snapshot, diff it against the live snapshot, swap, and
// persist.
//
// The first verification failure aborts the whole refresh before any
// state mutation; no partial catalog is ever installed. When only the
// cache write fails, Refresh returns the diff together with an error
// wrapping ErrPersist: the in-memory swap is not rolled back.
//
// Cancellation is the registry client's concern; Refresh does no
// cancellable work of its own beyond the fetch.
func (m *Manager) Refresh(ctx context.Context) (Diff, error) {
	if m.registry == nil {
		return Diff{}, ErrNoRegistry
	}

	contributions, err := m.registry.ListAll(ctx)
	if err != nil {
		return Diff{}, fmt.Errorf("catalog: fetching contributions: %w", err)
	}

	// Verify everything before touching any mutable state.
	for i := range contributions {
		if err := VerifyContribution(&contributions[i]); err != nil {
			return Diff{}, err
		}
	}

	candidate := make(map[string]command.Entry)
	signatures := make(map[string]command.SignatureRecord, len(contributions))
	for _, contribution := range contributions {
		// The signature record is retained even when every command
		// of the contribution is filtered out: the record set is the
		// provenance of the snapshot, not of the visible subset.
		signatures[contribution.Publisher] = contribution.Record()

		for _, entry := range contribution.Commands {
			if !Visible(entry, m.policy) {
				continue
			}
			// Later contributions overwrite earlier ones on id
			// collision: last publisher wins.
			candidate[entry.ID] = entry
		}
	}

	fetchedAt := time.Now()

	m.mu.Lock()
	diff := ComputeDiff(m.snapshot, candidate)
	m.snapshot = candidate
	m.signatures = signatures
	m.cacheKey = command.CacheKey(snapshotIDs(candidate), m.cliVersion)
	m.mu.Unlock()

	if err := m.store.Write(candidate, signatures, m.cliVersion, fetchedAt); err != nil {
		return diff, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return diff, nil
}

// Load populates the catalog from the cache file. Every stored
// signature record is re-verified before the state is installed; a
// cache that verified when written but was modified on disk since
// fails here, and the manager keeps its prior state.
func (m *Manager) Load() error {
	file, err := m.store.Read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheLoad, err)
	}

	if m.cliVersion != "" && file.CLIVersion != m.cliVersion {
		return fmt.Errorf("%w: cache has version %q, CLI is %q",
			ErrVersionMismatch, file.CLIVersion, m.cliVersion)
	}

	for publisher, record := range file.Signatures {
		if err := VerifySignature(publisher, record.Fingerprint, record.Signature, record.SignerPublicKey); err != nil {
			return err
		}
	}

	snapshot := make(map[string]command.Entry, len(file.Commands))
	for id, entry := range file.Commands {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: entry %q: %v", ErrCacheLoad, id, err)
		}
		if entry.ID != id {
			return fmt.Errorf("%w: entry keyed %q declares id %q", ErrCacheLoad, id, entry.ID)
		}
		snapshot[id] = entry
	}

	signatures := make(map[string]command.SignatureRecord, len(file.Signatures))
	for publisher, record := range file.Signatures {
		signatures[publisher] = record
	}

	m.mu.Lock()
	m.snapshot = snapshot
	m.signatures = signatures
	m.cacheKey = file.CacheKey
	m.mu.Unlock()

	return nil
}

// Get returns the entry for id from the installed snapshot. The
// second result is false for unknown ids; unknown is not an error.
func (m *Manager) Get(id string) (command.Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.snapshot[id]
	return entry, ok
}

// List returns the installed entries sorted by id. A non-empty group
// restricts the result to that group. Returns nil when nothing
// matches.
func (m *Manager) List(group string) []command.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []command.Entry
	for _, entry := range m.snapshot {
		if group != "" && entry.Group != group {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries
}

// IsVisible reports whether id is in the installed snapshot. The
// snapshot only ever contains entries that passed the policy when it
// was built, so membership is visibility.
func (m *Manager) IsVisible(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.snapshot[id]
	return ok
}

// CacheKey returns the deterministic digest of the installed
// catalog's command ids and the CLI version. Empty until the first
// successful Refresh or Load.
func (m *Manager) CacheKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cacheKey
}

// Len returns the number of commands in the installed snapshot.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.snapshot)
}

// Signatures returns a copy of the installed signature records keyed
// by publisher.
func (m *Manager) Signatures() map[string]command.SignatureRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	signatures := make(map[string]command.SignatureRecord, len(m.signatures))
	for publisher, record := range m.signatures {
		signatures[publisher] = record
	}
	return signatures
}

// Clear drops the in-memory catalog and removes the cache file.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.snapshot = nil
	m.signatures = nil
	m.cacheKey = ""
	m.mu.Unlock()

	return m.store.Remove()
}

func snapshotIDs(snapshot map[string]command.Entry) []string {
	ids := make([]string, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	return ids
}
