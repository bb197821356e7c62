package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		rawID        string
		expectErr    bool
		expectedAddr Address
	}{
		{
			name:         "puzzle address",
			rawID:        "grid.maze",
			expectedAddr: Address{Path: []PathSegment{NewPathSegment("grid"), NewPathSegment("maze")}},
		},
		{
			name:         "tree path",
			rawID:        "left.right.left",
			expectedAddr: New("left", "right", "left"),
		},
		{
			name:  "indexed segment",
			rawID: "tree.sample[3]",
			expectedAddr: Address{
				Path: []PathSegment{NewPathSegment("tree"), NewPathSegmentWithIndex("sample", 3)},
			},
		},
		{
			name:         "zero index",
			rawID:        "stairs[0]",
			expectedAddr: Address{Path: []PathSegment{NewPathSegmentWithIndex("stairs", 0)}},
		},
		{name: "error - empty segment", rawID: "a..b", expectErr: true},
		{name: "error - bad index", rawID: "a.b[x]", expectErr: true},
		{name: "error - empty string", rawID: "", expectErr: true},
		{name: "error - hyphen segment", rawID: "a.-.c", expectErr: true},
		{name: "error - lone dot", rawID: ".", expectErr: true},
		{name: "error - trailing dot", rawID: "left.", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.rawID)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedAddr.Equal(addr), "parsed %v, want %v", addr, tc.expectedAddr)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
	assert.NotPanics(t, func() { MustParse("a.b") })
}
