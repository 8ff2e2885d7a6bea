package hcl

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/ctxlog"
)

// translate converts the decoded HCL schema into the agnostic catalog model
// and validates the caller-side contracts the planner relies on: unique view
// names, at least one layout per view, and a positive row estimate.
//
// Duplicate view and layout IDs are deliberately NOT rejected here; the
// forest builder owns that contract and fails fast on it, so a programmatic
// caller bypassing the loader gets the same behavior.
func (l *Loader) translate(ctx context.Context, cubes []*Cube, views []*View) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	if len(cubes) == 0 {
		return nil, fmt.Errorf("catalog defines no cube block")
	}
	if len(cubes) > 1 {
		return nil, fmt.Errorf("catalog defines %d cube blocks, expected exactly one", len(cubes))
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("catalog defines no view blocks")
	}

	cube := &config.Cube{
		Name:        cubes[0].Name,
		Description: cubes[0].Description,
	}

	names := make(map[string]struct{}, len(views))
	for _, v := range views {
		if _, dup := names[v.Name]; dup {
			return nil, fmt.Errorf("duplicate view name %q", v.Name)
		}
		names[v.Name] = struct{}{}

		cv, err := l.translateView(v)
		if err != nil {
			return nil, err
		}
		cube.Views = append(cube.Views, cv)
	}

	logger.Debug("Catalog translated into unified model.", "views", len(cube.Views))
	return &config.Model{Cube: cube}, nil
}

func (l *Loader) translateView(v *View) (*config.View, error) {
	if len(v.Dimensions) == 0 {
		return nil, fmt.Errorf("view %q declares no dimensions", v.Name)
	}
	if len(v.Layouts) == 0 {
		return nil, fmt.Errorf("view %q declares no layouts", v.Name)
	}

	rows, err := l.evalRowEstimate(v)
	if err != nil {
		return nil, err
	}

	cv := &config.View{
		ID:          v.ID,
		Name:        v.Name,
		Dimensions:  v.Dimensions,
		Measures:    v.Measures,
		RowEstimate: rows,
	}
	for _, layout := range v.Layouts {
		cv.Layouts = append(cv.Layouts, &config.Layout{
			ID:      layout.ID,
			ViewID:  v.ID,
			ShardBy: layout.ShardBy,
		})
	}
	return cv, nil
}

// evalRowEstimate evaluates the row_estimate expression to an int64. The
// attribute is an expression rather than a literal so catalog authors can
// write arithmetic like `1000 * 1000`.
func (l *Loader) evalRowEstimate(v *View) (int64, error) {
	val, diags := v.RowEstimate.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("view %q: failed to evaluate row_estimate: %w", v.Name, diags)
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("view %q: row_estimate is not a number: %w", v.Name, err)
	}

	var rows int64
	if err := gocty.FromCtyValue(converted, &rows); err != nil {
		return 0, fmt.Errorf("view %q: row_estimate does not fit an int64: %w", v.Name, err)
	}
	if rows <= 0 {
		return 0, fmt.Errorf("view %q: row_estimate must be positive, got %d", v.Name, rows)
	}
	return rows, nil
}
