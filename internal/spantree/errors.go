package spantree

import "errors"

// Sentinel errors returned by forest construction and queries. All of them
// mark misuse or bad input; none are retryable.
var (
	// ErrNotFound marks a lookup of a view or layout id the forest does
	// not know about.
	ErrNotFound = errors.New("not found in spanning forest")

	// ErrNotDecided marks a ChildrenOf call on a parent whose children
	// have not been frozen yet. Reading the set earlier would silently
	// return an incomplete snapshot, so the call fails loudly instead.
	ErrNotDecided = errors.New("node has not been decided")

	// ErrNotBuilt marks a layer member whose first layout is missing from
	// the build context. Layer members must be built by construction, so
	// this is a caller contract violation.
	ErrNotBuilt = errors.New("view has no built layout in this context")

	// ErrDuplicateView marks a catalog carrying two views with one id.
	ErrDuplicateView = errors.New("duplicate view id in catalog")
)
