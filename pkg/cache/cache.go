/*
cache persists a single catalog snapshot under a fixed key. Reads degrade to
a miss on absence or corruption and failed writes are logged and dropped:
the cache only ever saves a network round trip.
*/
package cache

import (
	"encoding/json"
	"strings"
	"time"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Store holds at most one snapshot. Get returns nil on a miss; Set replaces
// any previous snapshot.
type Store interface {
	Get() *schema.ModelsData
	Set(schema.ModelsData)
	Close() error
}

// Opt is a functional option for configuring a store
type Opt func(*opts) error

type opts struct {
	key    string
	log    zerolog.Logger
	now    func() time.Time
	indent bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultKey is the key the snapshot is stored under
	DefaultKey = "models-data"
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithKey sets the key the snapshot is stored under
func WithKey(key string) Opt {
	return func(o *opts) error {
		key = strings.TrimSpace(key)
		if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
			return modelsdev.ErrBadParameter.Withf("invalid cache key %q", key)
		}
		o.key = key
		return nil
	}
}

// WithLogger sets the logger used to report dropped reads and writes
func WithLogger(log zerolog.Logger) Opt {
	return func(o *opts) error {
		o.log = log
		return nil
	}
}

// WithClock sets the function used to timestamp entries
func WithClock(fn func() time.Time) Opt {
	return func(o *opts) error {
		if fn == nil {
			return modelsdev.ErrBadParameter.With("clock is required")
		}
		o.now = fn
		return nil
	}
}

// WithIndent writes indented JSON, which is easier to inspect by hand
func WithIndent() Opt {
	return func(o *opts) error {
		o.indent = true
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt ...Opt) (*opts, error) {
	o := &opts{
		key: DefaultKey,
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, fn := range opt {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// encode serialises the snapshot with the current time
func (o *opts) encode(data schema.ModelsData) ([]byte, error) {
	entry := schema.NewCacheEntry(data, o.now())
	var result []byte
	var err error
	if o.indent {
		result, err = json.MarshalIndent(entry, "", "  ")
	} else {
		result, err = json.Marshal(entry)
	}
	if err != nil {
		return nil, modelsdev.ErrInternalServerError.Withf("marshal: %v", err)
	}
	return result, nil
}

// decode deserialises an entry. A blob that is not an object with a data
// member is treated as corrupt rather than an empty snapshot.
func decode(blob []byte) (*schema.CacheEntry, error) {
	var entry struct {
		Data      *schema.ModelsData `json:"data"`
		Timestamp int64              `json:"timestamp"`
	}
	if err := json.Unmarshal(blob, &entry); err != nil {
		return nil, modelsdev.ErrInternalServerError.Withf("unmarshal: %v", err)
	}
	if entry.Data == nil {
		return nil, modelsdev.ErrInternalServerError.With("unmarshal: missing data")
	}
	return &schema.CacheEntry{Data: *entry.Data, Timestamp: entry.Timestamp}, nil
}
