package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	jsonExt              = ".json"
	DirPerm  os.FileMode = 0o700 // Directory permission for the cache directory
	FilePerm os.FileMode = 0o600 // File permission for the snapshot
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileStore keeps the snapshot as {key}.json in a directory.
// It is safe for concurrent use.
type FileStore struct {
	*opts
	mu   sync.Mutex
	path string
}

var _ Store = (*FileStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Open returns a file store in the given directory, which is created if it
// does not exist.
func Open(dir string, opt ...Opt) (*FileStore, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, modelsdev.ErrBadParameter.With("directory is required")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, modelsdev.ErrInternalServerError.Withf("mkdir: %v", err)
	}
	return &FileStore{opts: o, path: filepath.Join(dir, o.key+jsonExt)}, nil
}

// DefaultDir returns the per-user cache directory for an application name
func DefaultDir(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", modelsdev.ErrInternalServerError.Withf("cache dir: %v", err)
	}
	return filepath.Join(dir, name), nil
}

// Close releases the store. Snapshots are written through, so there is
// nothing to flush.
func (f *FileStore) Close() error {
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the location of the snapshot file
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the cached snapshot, or nil if there is none or it cannot be
// read.
func (f *FileStore) Get() *schema.ModelsData {
	entry, err := f.Read()
	if errors.Is(err, modelsdev.ErrNotFound) {
		f.log.Debug().Str("path", f.path).Msg("cache miss")
		return nil
	} else if err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("ignoring unreadable cache")
		return nil
	}
	return &entry.Data
}

// Set replaces the cached snapshot. Failures are logged and dropped.
func (f *FileStore) Set(data schema.ModelsData) {
	if err := f.Write(data); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("unable to write cache")
	}
}

// Read returns the cached entry. It returns ErrNotFound when there is no
// snapshot and ErrInternalServerError when it cannot be decoded.
func (f *FileStore) Read() (*schema.CacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, modelsdev.ErrNotFound.Withf("%s", f.key)
		}
		return nil, modelsdev.ErrInternalServerError.Withf("read: %v", err)
	}
	return decode(blob)
}

// Write replaces the cached snapshot. The file is written to a temporary
// name and renamed, so a reader never sees a partial snapshot.
func (f *FileStore) Write(data schema.ModelsData) error {
	blob, err := f.encode(data)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+f.key+"-*")
	if err != nil {
		return modelsdev.ErrInternalServerError.Withf("create: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return modelsdev.ErrInternalServerError.Withf("write: %v", err)
	}
	if err := tmp.Chmod(FilePerm); err != nil {
		tmp.Close()
		return modelsdev.ErrInternalServerError.Withf("chmod: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return modelsdev.ErrInternalServerError.Withf("close: %v", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return modelsdev.ErrInternalServerError.Withf("rename: %v", err)
	}
	return nil
}

// Clear removes the cached snapshot. It is not an error if there is none.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return modelsdev.ErrInternalServerError.Withf("remove: %v", err)
	}
	return nil
}
