/*
loader serves the cached catalog snapshot immediately and refreshes it from
the network once per activation (stale-while-revalidate).

A Loader starts in one of two states: with the cached snapshot and not
loading, or with no data and loading. Start issues exactly one fetch. On
success the snapshot is normalized, written to the cache and published; on
failure the error is logged and the previous data stays in place. Either
way IsLoading settles to false and the loader makes no further transitions.
*/
package loader

import (
	"context"
	"sync"
	"sync/atomic"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	modelsdev "github.com/mutablelogic/go-modelsdev"
	cache "github.com/mutablelogic/go-modelsdev/pkg/cache"
	catalog "github.com/mutablelogic/go-modelsdev/pkg/catalog"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Fetcher returns the raw catalog
type Fetcher interface {
	Catalog(ctx context.Context) (schema.RawCatalog, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context) (schema.RawCatalog, error)

// State is what consumers observe: the current snapshot, if any, and
// whether a refresh is still outstanding. Data is never mutated; a refresh
// publishes a new snapshot.
type State struct {
	Data      *schema.ModelsData
	IsLoading bool
}

// Loader owns the in-memory snapshot for one activation and is the only
// writer to the cache store.
type Loader struct {
	*opts
	store   cache.Store
	fetcher Fetcher
	state   atomic.Pointer[State]
	once    sync.Once
	done    chan struct{}
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a loader initialised from the cache store. The cache is read
// synchronously; no network request is made until Start is called.
func New(store cache.Store, fetcher Fetcher, opt ...Opt) (*Loader, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, modelsdev.ErrBadParameter.With("cache store is required")
	}
	if fetcher == nil {
		return nil, modelsdev.ErrBadParameter.With("fetcher is required")
	}

	l := &Loader{
		opts:    o,
		store:   store,
		fetcher: fetcher,
		done:    make(chan struct{}),
	}

	// Serve the cached snapshot while the refresh runs
	if data := store.Get(); data != nil {
		l.log.Debug().Int("models", len(data.Models)).Msg("serving cached models")
		l.state.Store(&State{Data: data})
	} else {
		l.state.Store(&State{IsLoading: true})
	}

	return l, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Catalog calls f(ctx)
func (f FetcherFunc) Catalog(ctx context.Context) (schema.RawCatalog, error) {
	return f(ctx)
}

// Snapshot returns the current state. It never blocks.
func (l *Loader) Snapshot() State {
	return *l.state.Load()
}

// Start begins the refresh in the background and returns the channel which
// is closed when it settles. Only the first call issues a request. The
// refresh is not cancelled with ctx: once issued it runs to completion, and
// the HTTP client timeout bounds it.
func (l *Loader) Start(ctx context.Context) <-chan struct{} {
	l.once.Do(func() {
		go l.refresh(context.WithoutCancel(ctx))
	})
	return l.done
}

// Done returns a channel which is closed when the refresh has settled
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the refresh has settled and returns the final state.
// If ctx is done first, it returns the current state and the context error;
// the refresh keeps running.
func (l *Loader) Wait(ctx context.Context) (State, error) {
	select {
	case <-l.done:
		return l.Snapshot(), nil
	case <-ctx.Done():
		return l.Snapshot(), ctx.Err()
	}
}

// Load starts the refresh if needed and waits for it to settle
func (l *Loader) Load(ctx context.Context) (State, error) {
	l.Start(ctx)
	return l.Wait(ctx)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (l *Loader) refresh(ctx context.Context) {
	defer close(l.done)

	data, err := l.fetch(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("failed to fetch models")
		l.settle(State{Data: l.Snapshot().Data})
		return
	}

	l.store.Set(*data)
	l.log.Debug().Int("providers", len(data.Providers)).Int("models", len(data.Models)).Msg("refreshed models")
	l.settle(State{Data: data})
}

func (l *Loader) fetch(ctx context.Context) (result *schema.ModelsData, err error) {
	ctx, endSpan := otel.StartSpan(l.tracer, ctx, "RefreshCatalog",
		attribute.Bool("cached", l.Snapshot().Data != nil),
	)
	defer func() { endSpan(err) }()

	raw, err := l.fetcher.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	data := catalog.NormalizeWithLogoBase(raw, l.logoBase)
	return &data, nil
}

func (l *Loader) settle(state State) {
	l.state.Store(&state)
	if l.notify != nil {
		l.notify(state)
	}
}
