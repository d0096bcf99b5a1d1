package main

import (
	"context"
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	modelsdev "github.com/mutablelogic/go-modelsdev"
	cache "github.com/mutablelogic/go-modelsdev/pkg/cache"
	httpclient "github.com/mutablelogic/go-modelsdev/pkg/httpclient"
	loader "github.com/mutablelogic/go-modelsdev/pkg/loader"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a catalog client configured from the global flags
func (g *Globals) Client() (*httpclient.Client, error) {
	opts := []client.ClientOpt{}
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return httpclient.New(g.Endpoint, opts...)
}

// Store returns the file cache in the cache directory
func (g *Globals) Store() (*cache.FileStore, error) {
	if g.store != nil {
		return g.store, nil
	}
	dir := g.CacheDir
	if dir == "" {
		if d, err := cache.DefaultDir(g.execName); err != nil {
			return nil, err
		} else {
			dir = d
		}
	}
	store, err := cache.Open(dir, cache.WithLogger(g.log))
	if err != nil {
		return nil, err
	}
	g.store = store
	return store, nil
}

// Loader returns the catalog loader, which has read the cache but not yet
// started a refresh
func (g *Globals) Loader() (*loader.Loader, error) {
	if g.loader != nil {
		return g.loader, nil
	}
	store, err := g.Store()
	if err != nil {
		return nil, err
	}
	client, err := g.Client()
	if err != nil {
		return nil, err
	}
	l, err := loader.New(store, client,
		loader.WithLogger(g.log),
		loader.WithTracer(g.tracer),
		loader.WithLogoBase(g.LogoBase),
	)
	if err != nil {
		return nil, err
	}
	g.loader = l
	return l, nil
}

// Data returns the catalog, refreshed from the endpoint unless offline.
// A failed refresh falls back to the cached snapshot.
func (g *Globals) Data(ctx context.Context) (*schema.ModelsData, error) {
	l, err := g.Loader()
	if err != nil {
		return nil, err
	}

	state := l.Snapshot()
	if !g.Offline {
		if state, err = l.Load(ctx); err != nil {
			return nil, err
		}
	}
	if state.Data == nil {
		return nil, modelsdev.ErrNotFound.With("no catalog is available, the cache is empty and nothing was fetched")
	}
	return state.Data, nil
}

// Close releases the cache
func (g *Globals) Close() error {
	if g.store == nil {
		return nil
	}
	return g.store.Close()
}
