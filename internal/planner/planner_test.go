package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cubeplan/internal/config"
	"github.com/vk/cubeplan/internal/rollup"
	"github.com/vk/cubeplan/internal/segment"
	"github.com/vk/cubeplan/internal/spantree"
)

func testView(id int64, name string, dims []string, rows int64, layoutIDs ...int64) *config.View {
	v := &config.View{
		ID:          id,
		Name:        name,
		Dimensions:  dims,
		Measures:    []string{"sum_price"},
		RowEstimate: rows,
	}
	for _, lid := range layoutIDs {
		v.Layouts = append(v.Layouts, &config.Layout{ID: lid, ViewID: id})
	}
	return v
}

func TestRun(t *testing.T) {
	cube := &config.Cube{
		Name: "sales",
		Views: []*config.View{
			testView(1, "ABCD", []string{"a", "b", "c", "d"}, 1000, 10001),
			testView(2, "ABC", []string{"a", "b", "c"}, 100, 20001),
			testView(3, "ABD", []string{"a", "b", "d"}, 150, 30001),
			testView(4, "AB", []string{"a", "b"}, 50, 40001),
			testView(5, "A", []string{"a"}, 10, 50001),
		},
	}

	forest, err := spantree.Build(context.Background(), cube, rollup.New())
	require.NoError(t, err)

	seg := segment.NewMemory()
	plan, err := New(forest, seg, 2).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, plan.Layers, 4)

	layerIDs := func(l Layer) []int64 {
		var ids []int64
		for _, as := range l.Assignments {
			ids = append(ids, as.View.ID)
		}
		return ids
	}

	assert.Equal(t, []int64{1}, layerIDs(plan.Layers[0]))
	assert.Equal(t, []int64{2, 3}, layerIDs(plan.Layers[1]))
	assert.Equal(t, []int64{4}, layerIDs(plan.Layers[2]))
	assert.Equal(t, []int64{5}, layerIDs(plan.Layers[3]))

	t.Run("roots have no parent", func(t *testing.T) {
		assert.Nil(t, plan.Layers[0].Assignments[0].Parent)
		assert.Equal(t, 0, plan.Layers[0].Assignments[0].Level)
	})

	t.Run("children record the parent that claimed them", func(t *testing.T) {
		for _, as := range plan.Layers[1].Assignments {
			require.NotNil(t, as.Parent)
			assert.Equal(t, int64(1), as.Parent.ID)
		}

		ab := plan.Layers[2].Assignments[0]
		require.NotNil(t, ab.Parent)
		assert.Equal(t, int64(2), ab.Parent.ID, "AB rolls up from the cheaper ABC")
		assert.Equal(t, 2, ab.Level)
	})

	t.Run("every layout was marked built", func(t *testing.T) {
		for _, v := range cube.Views {
			for _, layout := range v.Layouts {
				rows, ok := seg.RowCount(layout.ID)
				require.True(t, ok, "layout %d should be built", layout.ID)
				assert.Equal(t, v.RowEstimate, rows)
			}
		}
	})
}

func TestRun_SingleView(t *testing.T) {
	cube := &config.Cube{
		Name:  "tiny",
		Views: []*config.View{testView(1, "A", []string{"a"}, 10, 101)},
	}

	forest, err := spantree.Build(context.Background(), cube, rollup.New())
	require.NoError(t, err)

	plan, err := New(forest, segment.NewMemory(), 8).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, plan.Layers, 1)
	require.Len(t, plan.Layers[0].Assignments, 1)
	assert.Nil(t, plan.Layers[0].Assignments[0].Parent)
}

func TestRun_CanceledContext(t *testing.T) {
	cube := &config.Cube{
		Name:  "tiny",
		Views: []*config.View{testView(1, "A", []string{"a"}, 10, 101)},
	}

	forest, err := spantree.Build(context.Background(), cube, rollup.New())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New(forest, segment.NewMemory(), 2).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
