package config

// Model is the unified, format-agnostic representation of a loaded cube
// catalog. Loaders (HCL today) translate their on-disk schema into this
// model; everything downstream of loading works only with these types.
type Model struct {
	Cube *Cube
}

// Cube groups the full set of candidate aggregate views for one dataset.
type Cube struct {
	Name        string
	Description string
	Views       []*View
}

// View is one candidate aggregate view (a cuboid): a distinct combination
// of dimensions and measures, materialized through one or more layouts.
type View struct {
	ID         int64
	Name       string
	Dimensions []string
	Measures   []string

	// RowEstimate is the catalog author's cardinality estimate for this
	// view. It seeds the cost model during dry-run planning; real builds
	// replace it with observed row counts.
	RowEstimate int64

	// Layouts is ordered; the first layout is the one whose build state
	// stands in for the whole view when costing.
	Layouts []*Layout
}

// Layout is one physical materialization format of a View. Layout IDs are
// unique across the whole catalog, not just within their view.
type Layout struct {
	ID      int64
	ViewID  int64
	ShardBy []string
}

// ViewByID returns the view with the given id, or nil if the catalog has
// no such view.
func (c *Cube) ViewByID(id int64) *View {
	for _, v := range c.Views {
		if v.ID == id {
			return v
		}
	}
	return nil
}
