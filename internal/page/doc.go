// Package page defines the page abstractions rendered by pagebridge.
//
// A page describes which content fragments it contains and in which order,
// and delegates the writing of every fragment to the render.Renderer it
// holds. The renderer is a shared, non-owned reference: many pages may hold
// the same renderer, and ChangeRenderer swaps it at runtime without touching
// any other page state.
//
// Pages provide no internal synchronization. A ChangeRenderer call that runs
// concurrently with View on the same page must be serialized by the caller.
package page
