package spantree

import (
	"github.com/vk/cubeplan/internal/config"
)

// testView builds a catalog view for tests. The first layout id doubles as
// the view's cost-lookup key.
func testView(id int64, name string, dims []string, rows int64, layoutIDs ...int64) *config.View {
	v := &config.View{
		ID:          id,
		Name:        name,
		Dimensions:  dims,
		Measures:    []string{"sum_price", "count"},
		RowEstimate: rows,
	}
	for _, lid := range layoutIDs {
		v.Layouts = append(v.Layouts, &config.Layout{ID: lid, ViewID: id})
	}
	return v
}

// testCatalog is the worked example from the planner's design discussions:
// ABCD is the only maximal view, ABC and ABD both stand directly for AB,
// and A rolls up from AB alone.
func testCatalog() *config.Cube {
	return &config.Cube{
		Name: "sales",
		Views: []*config.View{
			testView(1, "ABCD", []string{"a", "b", "c", "d"}, 1000, 10001),
			testView(2, "ABC", []string{"a", "b", "c"}, 100, 20001),
			testView(3, "ABD", []string{"a", "b", "d"}, 150, 30001, 30002),
			testView(4, "AB", []string{"a", "b"}, 50, 40001),
			testView(5, "A", []string{"a"}, 10, 50001),
		},
	}
}
