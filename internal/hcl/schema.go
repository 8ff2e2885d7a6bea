package hcl

import "github.com/hashicorp/hcl/v2"

// Layout represents a `layout` block inside a view: one physical
// materialization format of the enclosing view.
type Layout struct {
	ID      int64    `hcl:"id"`
	ShardBy []string `hcl:"shard_by,optional"`
}

// View represents a `view` block from a catalog file: one candidate
// aggregate view with its dimension/measure combination and layouts.
type View struct {
	Name        string         `hcl:"name,label"`
	ID          int64          `hcl:"id"`
	Dimensions  []string       `hcl:"dimensions"`
	Measures    []string       `hcl:"measures,optional"`
	RowEstimate hcl.Expression `hcl:"row_estimate"`
	Layouts     []*Layout      `hcl:"layout,block"`
}

// Cube represents the `cube` block naming the dataset the views belong to.
type Cube struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
}

// fileRoot decodes all recognized top-level blocks from any catalog file.
// Cube and view blocks may be spread over several files in one directory.
type fileRoot struct {
	Cubes  []*Cube  `hcl:"cube,block"`
	Views  []*View  `hcl:"view,block"`
	Remain hcl.Body `hcl:",remain"`
}
