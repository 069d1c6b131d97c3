// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package net

import (
	"encoding/json"
	"testing"

	"github.com/gomlx/netshapes/pkg/core/shapes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerKind(t *testing.T) {
	assert.Equal(t, "InnerProduct", KindInnerProduct.String())
	assert.Equal(t, "BNLL", KindBNLL.String())

	kind, err := LayerKindString("Convolution")
	require.NoError(t, err)
	assert.Equal(t, KindConvolution, kind)
	kind, err = LayerKindString("relu")
	require.NoError(t, err)
	assert.Equal(t, KindReLU, kind)
	_, err = LayerKindString("Transformer")
	require.Error(t, err)

	assert.False(t, LayerKind(1000).IsALayerKind())
	assert.True(t, KindMemoryData.IsDataSource())
	assert.False(t, KindConcat.IsDataSource())

	var decoded struct{ Kind LayerKind }
	require.NoError(t, json.Unmarshal([]byte(`{"Kind": "Pooling"}`), &decoded))
	assert.Equal(t, KindPooling, decoded.Kind)
}

func TestKernelSpecResolve(t *testing.T) {
	testCases := []struct {
		name         string
		spec         KernelSpec
		withDilation bool
		want         FilterParameters
		wantErr      bool
	}{
		{
			name: "defaults",
			spec: KernelSpec{KernelSize: []int{3}},
			want: FilterParameters{KernelH: 3, KernelW: 3, StrideH: 1, StrideW: 1, Dilation: 1},
		},
		{
			name: "per axis repeated values",
			spec: KernelSpec{KernelSize: []int{3, 5}, Stride: []int{1, 2}, Pad: []int{1, 2}},
			want: FilterParameters{KernelH: 3, KernelW: 5, StrideH: 1, StrideW: 2, PadH: 1, PadW: 2, Dilation: 1},
		},
		{
			name: "explicit axis values win",
			spec: KernelSpec{KernelSize: []int{3}, KernelW: 7, Stride: []int{2}, StrideH: 4, Pad: []int{1}, PadW: 3},
			want: FilterParameters{KernelH: 3, KernelW: 7, StrideH: 4, StrideW: 2, PadH: 1, PadW: 3, Dilation: 1},
		},
		{
			name:         "dilation",
			spec:         KernelSpec{KernelSize: []int{3}, Dilation: []int{2}},
			withDilation: true,
			want:         FilterParameters{KernelH: 3, KernelW: 3, StrideH: 1, StrideW: 1, Dilation: 2},
		},
		{
			name: "dilation ignored for pooling",
			spec: KernelSpec{KernelSize: []int{3}, Dilation: []int{2}},
			want: FilterParameters{KernelH: 3, KernelW: 3, StrideH: 1, StrideW: 1, Dilation: 1},
		},
		{name: "missing kernel", spec: KernelSpec{Stride: []int{2}}, wantErr: true},
		{name: "too many values", spec: KernelSpec{KernelSize: []int{1, 2, 3}}, wantErr: true},
		{name: "zero stride", spec: KernelSpec{KernelSize: []int{3}, Stride: []int{0}}, wantErr: true},
		{
			name:         "different dilations",
			spec:         KernelSpec{KernelSize: []int{3}, Dilation: []int{1, 2}},
			withDilation: true,
			wantErr:      true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.spec.Resolve(tc.withDilation)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNodeOutputShapeWriteOnce(t *testing.T) {
	node := NewNode("loss", KindSoftmaxWithLoss, nil)
	_, found := node.OutputShape()
	require.False(t, found)
	require.False(t, node.IsEvaluated())

	require.NoError(t, node.SetOutputShape(shapes.Scalar()))
	err := node.SetOutputShape(shapes.Make(2, 2, 2, 2))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrShapeAlreadySet))

	shape, found := node.OutputShape()
	require.True(t, found)
	assert.Equal(t, shapes.Scalar(), shape)
	assert.Equal(t, `"loss"[SoftmaxWithLoss] -> (1, 1, 1, 1)`, node.Describe())
}

func TestGraph(t *testing.T) {
	g := NewGraph()
	data := must.M1(g.Add("data", KindInput, nil))
	data.DeclareShape(shapes.Make(1, 3, 32, 32))
	declared, found := data.DeclaredShape()
	require.True(t, found)
	assert.Equal(t, shapes.Make(1, 3, 32, 32), declared)

	left := must.M1(g.Add("left", KindReLU, nil, data))
	right := must.M1(g.Add("right", KindSigmoid, nil, data))
	concat := must.M1(g.Add("concat", KindConcat, &ConcatParameters{Axis: shapes.ChannelsAxis}, left, right))

	// Errors.
	_, err := g.Add("data", KindInput, nil)
	require.Error(t, err)
	_, err = g.Add("", KindInput, nil)
	require.Error(t, err)
	_, err = g.Add("bad", LayerKind(-3), nil)
	require.Error(t, err)
	_, err = g.Add("foreign", KindReLU, nil, NewNode("standalone", KindInput, nil))
	require.Error(t, err)

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, concat, g.Node("concat"))
	assert.Nil(t, g.Node("missing"))
	assert.Equal(t, []*Node{data}, g.Inputs())
	assert.Equal(t, []*Node{concat}, g.Outputs())
	assert.Equal(t, []*Node{left, right}, data.Children())
	assert.Equal(t, []*Node{left, right}, concat.Parents())
	assert.Equal(t, g, concat.Graph())
	assert.Equal(t, `"concat"[Concat] <- (left, right)`, concat.Describe())

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	requireTopological(t, order)
	assert.Len(t, order, 4)
	assert.Equal(t, data, order[0])
	assert.Equal(t, concat, order[3])
}

func TestGraphCycle(t *testing.T) {
	g := NewGraph()
	a := must.M1(g.Add("a", KindInput, nil))
	b := must.M1(g.Add("b", KindReLU, nil, a))
	c := must.M1(g.Add("c", KindReLU, nil, b))
	require.Error(t, g.Connect(c, c))
	require.NoError(t, g.Connect(c, b))
	_, err := g.TopologicalOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[b c]")
}

// requireTopological checks that every node comes after all of its parents.
func requireTopological(t *testing.T, order []*Node) {
	position := make(map[*Node]int, len(order))
	for ii, node := range order {
		position[node] = ii
	}
	for _, node := range order {
		for _, parent := range node.Parents() {
			require.Less(t, position[parent], position[node], "parent %s must come before %s", parent, node)
		}
	}
}
