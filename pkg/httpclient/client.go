/*
httpclient implements a client for the models.dev catalog endpoint.
https://models.dev
*/
package httpclient

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	version "github.com/mutablelogic/go-modelsdev/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client fetches the raw catalog. It wraps the base HTTP client, so the
// usual client options (trace, timeout, tracer) apply.
type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultEndpoint is the origin the catalog is served from
	DefaultEndpoint = "https://models.dev"

	// Path of the catalog document relative to the endpoint
	catalogPath = "api.json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a catalog client for the given endpoint, for example
// "https://models.dev". An empty endpoint uses DefaultEndpoint.
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := new(Client)
	opts = append([]client.ClientOpt{client.OptUserAgent(version.UserAgent())}, opts...)
	if client, err := client.New(append(opts, client.OptEndpoint(endpoint))...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}
