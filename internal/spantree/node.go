package spantree

import "github.com/vk/cubeplan/internal/config"

// node is one forest entry per view. It is un-exported to enforce
// interaction through the Forest API; parent and children are stored as
// view ids into the forest's node map rather than as pointers, matching
// the identifier-keyed lookup used everywhere else.
//
// Field lifecycle: parentCandidates is fixed at build time and never
// mutated afterwards. parent is set at most once, by DecideNextLayer.
// children only grows, and is frozen the moment decided flips to true.
type node struct {
	view *config.View

	// parentCandidates holds the ids of the minimal super-views that can
	// derive this view, in candidate-scan order. Empty means this node is
	// a root.
	parentCandidates []int64

	parentID  int64
	hasParent bool

	children []int64

	// level is the depth in the forest; roots sit at 0 and a child is
	// fixed at its parent's level plus one when it is claimed.
	level int

	decided bool
}
