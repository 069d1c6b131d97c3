// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package zoo

import (
	"context"
	"testing"

	"github.com/gomlx/netshapes/pkg/core/shapes"
	"github.com/gomlx/netshapes/pkg/shapeinference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	for _, name := range Names() {
		g, err := Build(name, 0)
		require.NoError(t, err, "network %s", name)
		require.Greater(t, g.NumNodes(), 0)
		_, err = g.TopologicalOrder()
		require.NoError(t, err)
	}
	_, err := Build("ResNet1000", 1)
	require.Error(t, err)
}

func TestShapes(t *testing.T) {
	testCases := []struct {
		network   string
		batchSize int
		want      map[string]shapes.TensorShape
	}{
		{"LeNet", 0, map[string]shapes.TensorShape{
			"data":     shapes.Make(64, 1, 28, 28),
			"label":    shapes.Make(64, 1, 1, 1),
			"conv1":    shapes.Make(64, 20, 24, 24),
			"pool1":    shapes.Make(64, 20, 12, 12),
			"conv2":    shapes.Make(64, 50, 8, 8),
			"pool2":    shapes.Make(64, 50, 4, 4),
			"ip1":      shapes.Make(64, 500, 1, 1),
			"ip2":      shapes.Make(64, 10, 1, 1),
			"prob":     shapes.Make(64, 10, 1, 1),
			"accuracy": shapes.Scalar(),
			"loss":     shapes.Scalar(),
		}},
		{"AlexNet", 0, map[string]shapes.TensorShape{
			"conv1": shapes.Make(10, 96, 55, 55),
			"norm1": shapes.Make(10, 96, 55, 55),
			"pool1": shapes.Make(10, 96, 27, 27),
			"conv2": shapes.Make(10, 256, 27, 27),
			"pool2": shapes.Make(10, 256, 13, 13),
			"conv5": shapes.Make(10, 256, 13, 13),
			"pool5": shapes.Make(10, 256, 6, 6),
			"fc6":   shapes.Make(10, 4096, 1, 1),
			"drop7": shapes.Make(10, 4096, 1, 1),
			"prob":  shapes.Make(10, 1000, 1, 1),
		}},
		{"GoogLeNetStem", 2, map[string]shapes.TensorShape{
			"conv1/7x7_s2":        shapes.Make(2, 64, 112, 112),
			"pool1/3x3_s2":        shapes.Make(2, 64, 56, 56),
			"conv2/3x3":           shapes.Make(2, 192, 56, 56),
			"pool2/3x3_s2":        shapes.Make(2, 192, 28, 28),
			"inception_3a/5x5":    shapes.Make(2, 32, 28, 28),
			"inception_3a/output": shapes.Make(2, 256, 28, 28),
			"inception_3b/output": shapes.Make(2, 480, 28, 28),
			"pool3/7x7_s1":        shapes.Make(2, 480, 1, 1),
			"prob":                shapes.Make(2, 1000, 1, 1),
		}},
		{"DilatedContext", 0, map[string]shapes.TensorShape{
			"ctx_conv1": shapes.Make(1, 42, 64, 64),
			"ctx_conv5": shapes.Make(1, 42, 64, 64),
			"prob":      shapes.Make(1, 21, 64, 64),
		}},
		{"MemoryMLP", 0, map[string]shapes.TensorShape{
			"data":   shapes.Make(100, 1, 28, 28),
			"target": shapes.Make(100, 10, 1, 1),
			"ip1":    shapes.Make(100, 256, 1, 1),
			"ip2":    shapes.Make(100, 10, 1, 1),
			"loss":   shapes.Scalar(),
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.network, func(t *testing.T) {
			g, err := Build(tc.network, tc.batchSize)
			require.NoError(t, err)
			require.NoError(t, shapeinference.New(shapeinference.WithStrictConcat(true)).InferGraph(g))
			got := shapeinference.Shapes(g)
			require.Len(t, got, g.NumNodes())
			for name, want := range tc.want {
				assert.Equal(t, want, got[name], "node %s", name)
			}

			// Parallel evaluation on a fresh copy gives the same results.
			g2, err := Build(tc.network, tc.batchSize)
			require.NoError(t, err)
			inf := shapeinference.New(shapeinference.WithParallelism(8))
			require.NoError(t, inf.InferGraphParallel(context.Background(), g2))
			assert.Equal(t, got, shapeinference.Shapes(g2))
		})
	}
}
