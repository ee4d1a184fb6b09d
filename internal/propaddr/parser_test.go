// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package propaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    Address
		wantErr string
	}{
		{
			name: "tree root",
			raw:  "ui.inputs",
			want: Address{Node: "ui", Tree: Inputs},
		},
		{
			name: "leaf",
			raw:  "sum.outputs.sum",
			want: Address{Node: "sum", Tree: Outputs, Path: []Segment{{Name: "sum"}}},
		},
		{
			name: "array element field",
			raw:  "mover.inputs.items[2].x",
			want: Address{Node: "mover", Tree: Inputs, Path: []Segment{{Name: "items", Indices: []int{2}}, {Name: "x"}}},
		},
		{
			name: "nested arrays",
			raw:  "m.inputs.grid[1][0]",
			want: Address{Node: "m", Tree: Inputs, Path: []Segment{{Name: "grid", Indices: []int{1, 0}}}},
		},
		{
			name: "dashes and underscores",
			raw:  "my-node.outputs.out_1",
			want: Address{Node: "my-node", Tree: Outputs, Path: []Segment{{Name: "out_1"}}},
		},
		{name: "empty", raw: "", wantErr: "cannot be empty"},
		{name: "node only", raw: "ui", wantErr: "needs a node and a tree"},
		{name: "unknown tree", raw: "ui.params.x", wantErr: `tree must be "inputs" or "outputs"`},
		{name: "indexed node", raw: "ui[0].inputs", wantErr: "cannot be indexed"},
		{name: "empty segment", raw: "ui.inputs..x", wantErr: "empty segment"},
		{name: "trailing dot", raw: "ui.inputs.", wantErr: "empty segment"},
		{name: "negative index", raw: "ui.inputs.a[-1]", wantErr: "invalid segment"},
		{name: "unclosed index", raw: "ui.inputs.a[1", wantErr: "invalid segment"},
		{name: "leading digit", raw: "1ui.inputs", wantErr: "invalid segment"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if tc.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalid)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %#v", got)
			assert.Equal(t, tc.raw, got.String())
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	a, err := Parse("n.inputs.items[1].x")
	require.NoError(t, err)
	b, err := Parse("n.inputs.items[1].x")
	require.NoError(t, err)
	c, err := Parse("n.inputs.items[2].x")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Address{Node: "n", Tree: Outputs}))
}
