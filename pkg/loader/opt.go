package loader

import (
	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	catalog "github.com/mutablelogic/go-modelsdev/pkg/catalog"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a loader
type Opt func(*opts) error

type opts struct {
	log      zerolog.Logger
	tracer   trace.Tracer
	logoBase string
	notify   func(State)
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger for fetch failures and cache events
func WithLogger(log zerolog.Logger) Opt {
	return func(o *opts) error {
		o.log = log
		return nil
	}
}

// WithTracer sets the tracer used to record the refresh span
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) error {
		o.tracer = tracer
		return nil
	}
}

// WithLogoBase sets the base location of provider logos
func WithLogoBase(base string) Opt {
	return func(o *opts) error {
		if base == "" {
			return modelsdev.ErrBadParameter.With("logo base is required")
		}
		o.logoBase = base
		return nil
	}
}

// WithNotify sets a function which is called with the final state once the
// refresh has settled
func WithNotify(fn func(State)) Opt {
	return func(o *opts) error {
		o.notify = fn
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt ...Opt) (*opts, error) {
	o := &opts{
		log:      zerolog.Nop(),
		logoBase: catalog.DefaultLogoBase,
	}
	for _, fn := range opt {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
