package planner

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/ctxlog"
	"github.com/vk/cubeplan/internal/spantree"
)

// Segment is the mutable build context the planner records simulated
// builds into. Both segment.Memory and segment.Store satisfy it.
type Segment interface {
	spantree.BuildContext
	MarkBuilt(layoutID, rowCount int64) error
}

// Assignment is one view's place in the final plan.
type Assignment struct {
	View *config.View
	// Parent is the view this one rolls up from; nil for roots.
	Parent *config.View
	Level  int
	Rows   int64
}

// Layer is one build wave: views whose parents were all decided in
// earlier waves, ordered by ascending view id.
type Layer struct {
	Level       int
	Assignments []Assignment
}

// Plan is the complete materialization order for a catalog.
type Plan struct {
	Layers []Layer
}

// Planner walks a forest layer by layer. It owns the forest for the
// duration of Run; nothing else may mutate the forest while Run is active.
type Planner struct {
	forest     *spantree.Forest
	seg        Segment
	numWorkers int
}

// New creates a planner over the given forest and segment.
func New(forest *spantree.Forest, seg Segment, numWorkers int) *Planner {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Planner{forest: forest, seg: seg, numWorkers: numWorkers}
}

// Run executes the full planning cycle and returns the plan. It fails if
// any layer cannot be built or if some views never become buildable,
// which indicates an inconsistent catalog or derivation oracle.
func (p *Planner) Run(ctx context.Context) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	layer := p.forest.RootViews()
	sortByID(layer)
	logger.Debug("Planner starting.", "roots", len(layer), "total_views", p.forest.CuboidCount())

	plan := &Plan{}
	parents := make(map[int64]*config.View)
	planned := 0

	for level := 0; len(layer) > 0; level++ {
		if err := p.buildLayer(ctx, layer); err != nil {
			return nil, fmt.Errorf("failed to build layer %d: %w", level, err)
		}

		entry := Layer{Level: level}
		for _, v := range layer {
			entry.Assignments = append(entry.Assignments, Assignment{
				View:   v,
				Parent: parents[v.ID],
				Level:  level,
				Rows:   v.RowEstimate,
			})
		}
		plan.Layers = append(plan.Layers, entry)
		planned += len(layer)

		if err := p.forest.DecideNextLayer(ctx, layer, p.seg); err != nil {
			return nil, fmt.Errorf("failed to decide layer %d: %w", level, err)
		}

		var next []*config.View
		for _, v := range layer {
			children, err := p.forest.ChildrenOf(v)
			if err != nil {
				return nil, fmt.Errorf("failed to read children of view %d: %w", v.ID, err)
			}
			for _, child := range children {
				parents[child.ID] = v
				next = append(next, child)
			}
		}
		sortByID(next)

		logger.Debug("Layer planned.", "level", level, "views", len(layer), "next", len(next))
		layer = next
	}

	if planned != p.forest.CuboidCount() {
		return nil, fmt.Errorf("planning stalled: %d of %d views never became buildable",
			p.forest.CuboidCount()-planned, p.forest.CuboidCount())
	}

	logger.Info("Planning complete.", "layers", len(plan.Layers), "views", planned)
	return plan, nil
}

func sortByID(views []*config.View) {
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
}
