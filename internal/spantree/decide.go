package spantree

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/ctxlog"
)

// DecideNextLayer advances the forest for a layer of views whose layouts
// have just been built. Layer members are processed in ascending order of
// their materialized row count (ties broken by ascending id): a child
// eligible for several built candidates is claimed by whichever is
// processed first, so cheaper parents win and downstream aggregation reads
// the smallest available source. Each processed parent's children set is
// then frozen, permanently.
//
// All cost lookups happen before any assignment, so a bad layer leaves the
// forest untouched. A layer member that was already decided by an earlier
// call is skipped; callers still should not resubmit layers.
func (f *Forest) DecideNextLayer(ctx context.Context, currentLayer []*config.View, bctx BuildContext) error {
	logger := ctxlog.FromContext(ctx)

	type costed struct {
		view *config.View
		rows int64
	}
	ordered := make([]costed, 0, len(currentLayer))
	for _, p := range currentLayer {
		if _, ok := f.nodes[p.ID]; !ok {
			return fmt.Errorf("%w: layer member %d", ErrNotFound, p.ID)
		}
		rows, err := f.rowsOf(p, bctx)
		if err != nil {
			return err
		}
		ordered = append(ordered, costed{view: p, rows: rows})
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].rows != ordered[j].rows {
			return ordered[i].rows < ordered[j].rows
		}
		return ordered[i].view.ID < ordered[j].view.ID
	})

	for _, c := range ordered {
		parent := f.nodes[c.view.ID]
		if parent.decided {
			logger.Warn("Layer member was already decided, skipping.", "view_id", c.view.ID)
			continue
		}

		f.adjust(parent, bctx)

		logger.Info("Adjusted spanning forest.",
			"parent_id", c.view.ID,
			"parent_rows", c.rows,
			"children", parent.children,
		)
	}

	return nil
}

// adjust claims every still-unclaimed node that parent is eligible to
// produce, then freezes parent. Nodes are scanned in forest order so the
// children sequence is reproducible across runs.
func (f *Forest) adjust(parent *node, bctx BuildContext) {
	for _, id := range f.order {
		n := f.nodes[id]
		if !f.shouldAttach(n, parent, bctx) {
			continue
		}
		n.parentID = parent.view.ID
		n.hasParent = true
		n.level = parent.level + 1
		parent.children = append(parent.children, id)
	}
	parent.decided = true
}

// shouldAttach reports whether n can be claimed by parent right now: n is
// still unclaimed, is not a root, all of its candidates are built in this
// context, and parent is one of them. Waiting for every candidate keeps
// the cheapest-parent choice meaningful; deciding earlier could hand a
// child to an expensive parent while a cheaper candidate is still
// building.
func (f *Forest) shouldAttach(n, parent *node, bctx BuildContext) bool {
	if n.hasParent || len(n.parentCandidates) == 0 {
		return false
	}
	isCandidate := false
	for _, cid := range n.parentCandidates {
		if !f.isBuilt(f.nodes[cid].view, bctx) {
			return false
		}
		if cid == parent.view.ID {
			isCandidate = true
		}
	}
	return isCandidate
}

// isBuilt treats the first layout's build state as the view's.
func (f *Forest) isBuilt(v *config.View, bctx BuildContext) bool {
	return bctx.IsBuilt(v.Layouts[0].ID)
}

// rowsOf returns the materialized row count of v's first layout, the cost
// proxy used to order layer members.
func (f *Forest) rowsOf(v *config.View, bctx BuildContext) (int64, error) {
	rows, ok := bctx.RowCount(v.Layouts[0].ID)
	if !ok {
		return 0, fmt.Errorf("%w: view %d layout %d", ErrNotBuilt, v.ID, v.Layouts[0].ID)
	}
	return rows, nil
}
