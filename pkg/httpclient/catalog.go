package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	modelsdev "github.com/mutablelogic/go-modelsdev"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Catalog fetches the raw catalog. Transport errors, non-2xx responses and
// undecodable bodies are all returned as errors.
func (c *Client) Catalog(ctx context.Context) (schema.RawCatalog, error) {
	var response schema.RawCatalog
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath(catalogPath)); err != nil {
		return nil, err
	}
	if response == nil {
		return nil, modelsdev.ErrInternalServerError.With("empty catalog response")
	}
	return response, nil
}
