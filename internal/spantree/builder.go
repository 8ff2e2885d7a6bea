package spantree

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/ctxlog"
)

// Build constructs the static spanning forest for a catalog. Every view
// gets one node with its direct parent candidates resolved; views with no
// possible ancestor are registered as roots at level 0. No parent/children
// assignments happen here, those are build-time concerns resolved by
// DecideNextLayer from among the available candidates.
func Build(ctx context.Context, cube *config.Cube, oracle DerivationOracle) (*Forest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting forest construction.", "views", len(cube.Views))

	ordered, err := sortedCatalog(cube.Views)
	if err != nil {
		return nil, err
	}

	f := &Forest{
		nodes:   make(map[int64]*node, len(ordered)),
		layouts: make(map[int64]*config.Layout),
	}

	for _, v := range ordered {
		if len(v.Layouts) == 0 {
			return nil, fmt.Errorf("view %d (%s) has no layouts", v.ID, v.Name)
		}
		if oracle.Derives(v, v) {
			return nil, fmt.Errorf("derivation oracle claims view %d derives itself", v.ID)
		}

		n := &node{view: v}
		candidates := directParentCandidates(v, ordered, oracle)
		if len(candidates) == 0 {
			n.level = 0
			f.roots = append(f.roots, v.ID)
		} else {
			n.parentCandidates = make([]int64, 0, len(candidates))
			for _, c := range candidates {
				n.parentCandidates = append(n.parentCandidates, c.ID)
			}
		}

		f.nodes[v.ID] = n
		f.order = append(f.order, v.ID)

		for _, layout := range v.Layouts {
			if _, exists := f.layouts[layout.ID]; exists {
				logger.Warn("Duplicate layout id found, it will be overwritten.", "layout_id", layout.ID, "view_id", v.ID)
			}
			f.layouts[layout.ID] = layout
		}

		logger.Debug("Registered view node.", "view_id", v.ID, "candidates", n.parentCandidates, "root", len(candidates) == 0)
	}

	logger.Debug("Build: forest construction complete.", "nodes", len(f.nodes), "roots", len(f.roots))
	return f, nil
}

// sortedCatalog returns the views in ascending (dimension count, id) order
// and rejects duplicate ids. Both the candidate scan and the forest order
// depend on this total order being fixed.
func sortedCatalog(views []*config.View) ([]*config.View, error) {
	ordered := make([]*config.View, len(views))
	copy(ordered, views)
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].Dimensions) != len(ordered[j].Dimensions) {
			return len(ordered[i].Dimensions) < len(ordered[j].Dimensions)
		}
		return ordered[i].ID < ordered[j].ID
	})

	seen := make(map[int64]struct{}, len(ordered))
	for _, v := range ordered {
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateView, v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	return ordered, nil
}
