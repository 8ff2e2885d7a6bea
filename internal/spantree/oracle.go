package spantree

import "github.com/vk/cubeplan/internal/config"

// DerivationOracle answers whether one view's data can be fully computed by
// rolling up another's. Implementations must induce a strict partial order
// over the catalog: irreflexive, antisymmetric and transitive. The forest
// builder's candidate pruning silently produces a wrong forest if the
// relation violates transitivity; that invariant is owned by the oracle,
// not validated here.
//
// The oracle is injected rather than being a method on the view type so
// alternative derivation semantics can be substituted without touching the
// tree algorithm.
type DerivationOracle interface {
	// Derives reports whether candidate can fully derive target.
	Derives(candidate, target *config.View) bool
}

// BuildContext reflects the durable build state of one dataset segment. It
// is queried fresh on every decision call and never mutated by this
// package.
type BuildContext interface {
	// IsBuilt reports whether the layout has been materialized.
	IsBuilt(layoutID int64) bool

	// RowCount returns the materialized row count of the layout, and
	// whether the layout was built at all.
	RowCount(layoutID int64) (int64, bool)
}
