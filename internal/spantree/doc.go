// Package spantree plans how a catalog of candidate aggregate views is
// organized into a build dependency forest, and decides, as views finish
// building, which remaining views they supply data for.
//
// The package works in two phases:
//
//  1. Build statically derives, for every view, its minimal set of direct
//     parent candidates under an injected derivation oracle, producing a
//     Forest. Views with no possible ancestor become roots.
//  2. DecideNextLayer is called repeatedly as build layers complete. Each
//     call greedily assigns unclaimed views to the cheapest already-built
//     eligible parent of the layer, then freezes that parent's children.
//
// A Forest must be owned by a single build-planning session at a time:
// DecideNextLayer is not safe to call concurrently, nor to interleave with
// reads. Read-only queries are safe from multiple goroutines once no
// mutation is in flight.
package spantree
