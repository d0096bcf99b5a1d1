package cache

import (
	"errors"
	"sync"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MemoryStore keeps the serialized snapshot in memory, so callers get the
// same copy semantics as the file store. It is safe for concurrent use.
type MemoryStore struct {
	*opts
	mu   sync.RWMutex
	blob []byte
}

var _ Store = (*MemoryStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore(opt ...Opt) (*MemoryStore, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{opts: o}, nil
}

// Close drops the snapshot
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = nil
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns the stored snapshot, or nil if there is none or it cannot be
// decoded.
func (m *MemoryStore) Get() *schema.ModelsData {
	entry, err := m.Read()
	if errors.Is(err, modelsdev.ErrNotFound) {
		return nil
	} else if err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("ignoring unreadable cache")
		return nil
	}
	return &entry.Data
}

// Set replaces the stored snapshot. Failures are logged and dropped.
func (m *MemoryStore) Set(data schema.ModelsData) {
	if err := m.Write(data); err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("unable to write cache")
	}
}

// Read returns the stored entry, or ErrNotFound
func (m *MemoryStore) Read() (*schema.CacheEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.blob == nil {
		return nil, modelsdev.ErrNotFound.Withf("%s", m.key)
	}
	return decode(m.blob)
}

// Write replaces the stored entry
func (m *MemoryStore) Write(data schema.ModelsData) error {
	blob, err := m.encode(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = blob
	return nil
}

// SetBlob replaces the stored bytes verbatim, without validation
func (m *MemoryStore) SetBlob(blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
}

// Clear removes the stored snapshot
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = nil
	return nil
}
