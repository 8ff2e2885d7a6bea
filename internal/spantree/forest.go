package spantree

import (
	"fmt"

	"github.com/vk/cubeplan/internal/config"
)

// Forest is the spanning forest over one catalog: an arena of nodes keyed
// by view id, the root set, and a catalog-wide layout index. Topology is
// immutable after Build; only DecideNextLayer mutates parent, children,
// level and decided, and only a single session may do so at a time.
type Forest struct {
	nodes map[int64]*node

	// order is the ascending (dimension count, id) build order; all scans
	// and returned sequences follow it so results are reproducible.
	order []int64

	roots []int64

	layouts map[int64]*config.Layout
}

// IsValid reports whether a node exists for the given view id.
func (f *Forest) IsValid(viewID int64) bool {
	_, ok := f.nodes[viewID]
	return ok
}

// CuboidCount returns the number of nodes in the forest.
func (f *Forest) CuboidCount() int {
	return len(f.nodes)
}

// RootViews returns the view of every root node, in forest order.
func (f *Forest) RootViews() []*config.View {
	views := make([]*config.View, 0, len(f.roots))
	for _, id := range f.roots {
		views = append(views, f.nodes[id].view)
	}
	return views
}

// LayoutsOf returns all layouts owned by the view, per the catalog's own
// grouping. It fails if the view is unknown to this forest.
func (f *Forest) LayoutsOf(view *config.View) ([]*config.Layout, error) {
	n, ok := f.nodes[view.ID]
	if !ok {
		return nil, fmt.Errorf("%w: view %d", ErrNotFound, view.ID)
	}
	return n.view.Layouts, nil
}

// IndexEntity returns the view registered under the given id.
func (f *Forest) IndexEntity(viewID int64) (*config.View, error) {
	n, ok := f.nodes[viewID]
	if !ok {
		return nil, fmt.Errorf("%w: view %d", ErrNotFound, viewID)
	}
	return n.view, nil
}

// Layout returns the layout with the given id, if the catalog has one.
func (f *Forest) Layout(layoutID int64) (*config.Layout, bool) {
	layout, ok := f.layouts[layoutID]
	return layout, ok
}

// ChildrenOf returns the views assigned to parent. The parent must have
// been decided: before that the children set is still accumulating and
// reading it would silently hand out stale data, so the call fails with
// ErrNotDecided instead.
func (f *Forest) ChildrenOf(parent *config.View) ([]*config.View, error) {
	n, ok := f.nodes[parent.ID]
	if !ok {
		return nil, fmt.Errorf("%w: view %d", ErrNotFound, parent.ID)
	}
	if !n.decided {
		return nil, fmt.Errorf("%w: view %d", ErrNotDecided, parent.ID)
	}

	children := make([]*config.View, 0, len(n.children))
	for _, id := range n.children {
		children = append(children, f.nodes[id].view)
	}
	return children, nil
}

// AllViews returns every view with a node, in forest order.
func (f *Forest) AllViews() []*config.View {
	views := make([]*config.View, 0, len(f.order))
	for _, id := range f.order {
		views = append(views, f.nodes[id].view)
	}
	return views
}
