package schema

import (
	"encoding/json"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelsData is one complete snapshot of the catalog. Providers are sorted
// by name and models by provider name then model name. A snapshot is never
// updated in place; a refresh replaces it.
type ModelsData struct {
	Providers []Provider `json:"providers"`
	Models    []Model    `json:"models"`
}

// CacheEntry is the persisted form of a snapshot. The timestamp is in
// milliseconds since the Unix epoch.
type CacheEntry struct {
	Data      ModelsData `json:"data"`
	Timestamp int64      `json:"timestamp"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCacheEntry wraps a snapshot with the given time
func NewCacheEntry(data ModelsData, ts time.Time) CacheEntry {
	return CacheEntry{Data: data, Timestamp: ts.UnixMilli()}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d ModelsData) String() string {
	return Stringify(d)
}

func (e CacheEntry) String() string {
	return Stringify(e)
}

// Stringify returns v as indented JSON
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Time returns the time the entry was written
func (e CacheEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}
