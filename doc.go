/*
modelsdev is a client-side data layer for the models.dev catalog of AI
providers and models.

The catalog is fetched as JSON, normalized into sorted provider and model
collections (package catalog), persisted as a single snapshot (package cache)
and served to consumers through a stale-while-revalidate loader (package
loader). Package query holds the filtering, sorting, pricing and formatting
functions used by list views, and package compare the side-by-side model
comparison.
*/
package modelsdev
