// Package pipeline renders catalog pages in bulk.
//
// A render job pairs a catalog page name with a format name. The
// BatchRenderer resolves both, builds a fresh page for the job and renders
// it. Jobs run concurrently with errgroup; every job gets its own page, so
// no page is shared between goroutines and no renderer swap can race with
// a view. Renderers are stateless and are shared freely.
package pipeline
