package app

import (
	"fmt"

	"github.com/vk/cubeplan/internal/planner"
)

// renderPlan writes the materialization plan as a plain, layer-per-section
// listing. Output order is deterministic: layers ascend, views within a
// layer ascend by id.
func (a *App) renderPlan(plan *planner.Plan) {
	fmt.Fprintf(a.outW, "Materialization plan for cube %q (%d layers):\n",
		a.model.Cube.Name, len(plan.Layers))

	for _, layer := range plan.Layers {
		fmt.Fprintf(a.outW, "\nlayer %d:\n", layer.Level)
		for _, as := range layer.Assignments {
			if as.Parent == nil {
				fmt.Fprintf(a.outW, "  %s (id=%d, rows=%d) <- base table\n",
					as.View.Name, as.View.ID, as.Rows)
				continue
			}
			fmt.Fprintf(a.outW, "  %s (id=%d, rows=%d) <- %s (id=%d)\n",
				as.View.Name, as.View.ID, as.Rows, as.Parent.Name, as.Parent.ID)
		}
	}
}
