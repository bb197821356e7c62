package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *Set {
	return &Set{
		Trees: []*TreeSpec{{
			Name: "sample",
			Root: &TreeNode{Value: 1, Left: &TreeNode{Value: 2}, Right: &TreeNode{Value: 3}},
		}},
		Grids:  []*GridSpec{{Name: "maze", Rows: []string{".."}}},
		Stairs: []*StairsSpec{{Name: "ten", Steps: 10, Method: MethodMemoized}},
	}
}

func TestSet_AllAndAddresses(t *testing.T) {
	set := sampleSet()
	require.NoError(t, set.Validate())

	all := set.All()
	require.Len(t, all, set.Len())

	var addrs []string
	for _, p := range all {
		addrs = append(addrs, p.Address().String())
	}
	assert.Equal(t, []string{"tree.sample", "grid.maze", "stairs.ten"}, addrs)
	assert.Equal(t, KindGrid, all[1].Kind())
}

func TestSet_ValidateErrors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Set)
		wantErr string
	}{
		{
			name:    "duplicate",
			mutate:  func(s *Set) { s.Grids = append(s.Grids, &GridSpec{Name: "maze"}) },
			wantErr: `duplicate puzzle "grid.maze"`,
		},
		{
			name:    "dotted name",
			mutate:  func(s *Set) { s.Grids[0].Name = "a.b" },
			wantErr: `invalid name "a.b"`,
		},
		{
			name:    "indexed name",
			mutate:  func(s *Set) { s.Stairs[0].Name = "ten[1]" },
			wantErr: `invalid name "ten[1]"`,
		},
		{
			name:    "empty name",
			mutate:  func(s *Set) { s.Trees[0].Name = "" },
			wantErr: "invalid name",
		},
		{
			name:    "name with spaces",
			mutate:  func(s *Set) { s.Trees[0].Name = "my tree" },
			wantErr: "invalid name",
		},
		{
			name:    "missing root",
			mutate:  func(s *Set) { s.Trees[0].Root = nil },
			wantErr: "root node is required",
		},
		{
			name:    "bad path",
			mutate:  func(s *Set) { s.Trees[0].Path = "left..right" },
			wantErr: "invalid path",
		},
		{
			name:    "unknown method",
			mutate:  func(s *Set) { s.Stairs[0].Method = "guess" },
			wantErr: `unknown method "guess"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set := sampleSet()
			tc.mutate(set)
			err := set.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestTreeNode_Build(t *testing.T) {
	root := &TreeNode{Value: 1, Left: &TreeNode{Value: 2, Right: &TreeNode{Value: 4}}, Right: &TreeNode{Value: 3}}
	tree := root.Build()

	assert.Equal(t, []int{2, 4, 1, 3}, tree.InOrder())
	assert.Equal(t, 3, tree.Height())

	var empty *TreeNode
	assert.Nil(t, empty.Build())
}
