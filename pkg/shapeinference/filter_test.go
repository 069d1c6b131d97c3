// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"testing"

	"github.com/gomlx/netshapes/pkg/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floorDiv and ceilDiv are integer divisions rounding towards -inf and +inf respectively, for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

func TestFilterOutputDimClosedForm(t *testing.T) {
	for inputDim := 1; inputDim <= 40; inputDim++ {
		for dilation := 1; dilation <= 3; dilation++ {
			for kernel := 1; kernel <= 7; kernel++ {
				for stride := 1; stride <= 4; stride++ {
					for pad := 0; pad <= 3; pad++ {
						numerator := inputDim + 2*pad - (dilation*(kernel-1) + 1)
						wantFloor := floorDiv(numerator, stride) + 1
						wantCeil := ceilDiv(numerator, stride) + 1
						gotFloor := FilterOutputDim(inputDim, dilation, kernel, pad, stride, RoundFloor)
						gotCeil := FilterOutputDim(inputDim, dilation, kernel, pad, stride, RoundCeil)
						if gotFloor != wantFloor || gotCeil != wantCeil {
							t.Fatalf("FilterOutputDim(d=%d, dilation=%d, k=%d, p=%d, s=%d): got floor=%d ceil=%d, wanted floor=%d ceil=%d",
								inputDim, dilation, kernel, pad, stride, gotFloor, gotCeil, wantFloor, wantCeil)
						}
					}
				}
			}
		}
	}
}

func TestFilterOutputDim(t *testing.T) {
	// Classic examples: AlexNet conv1 and pool1, GoogLeNet conv1.
	assert.Equal(t, 55, FilterOutputDim(227, 1, 11, 0, 4, RoundFloor))
	assert.Equal(t, 27, FilterOutputDim(55, 1, 3, 0, 2, RoundCeil))
	assert.Equal(t, 112, FilterOutputDim(224, 1, 7, 3, 2, RoundFloor))

	// Floor and ceil differ when the last window is partial.
	assert.Equal(t, 2, FilterOutputDim(6, 1, 3, 0, 2, RoundFloor))
	assert.Equal(t, 3, FilterOutputDim(6, 1, 3, 0, 2, RoundCeil))

	// Dilation enlarges the kernel extent: 3x3 with dilation 2 covers 5 positions.
	assert.Equal(t, 6, FilterOutputDim(10, 2, 3, 0, 1, RoundFloor))

	// Kernels larger than the input are passed through as non-positive values.
	assert.Equal(t, 0, FilterOutputDim(3, 1, 4, 0, 1, RoundFloor))
	assert.Equal(t, -2, FilterOutputDim(2, 1, 5, 0, 1, RoundFloor))
}

func TestFilterOutputDimIdentity(t *testing.T) {
	for inputDim := 1; inputDim <= 512; inputDim++ {
		require.Equal(t, inputDim, FilterOutputDim(inputDim, 1, 1, 0, 1, RoundFloor))
		require.Equal(t, inputDim, FilterOutputDim(inputDim, 1, 1, 0, 1, RoundCeil))
	}
}

func TestFilterOutputShape(t *testing.T) {
	params := net.FilterParameters{KernelH: 3, KernelW: 5, StrideH: 1, StrideW: 2, PadH: 1, PadW: 0, Dilation: 1}
	height, width := FilterOutputShape(32, 32, params, RoundFloor)
	assert.Equal(t, 32, height)
	assert.Equal(t, 14, width)
	height, width = FilterOutputShape(32, 32, params, RoundCeil)
	assert.Equal(t, 32, height)
	assert.Equal(t, 15, width)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, "Floor", RoundFloor.String())
	assert.Equal(t, "Ceil", RoundCeil.String())
	rounding, err := RoundingString("ceil")
	require.NoError(t, err)
	assert.Equal(t, RoundCeil, rounding)
}
