// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"math"

	"github.com/gomlx/netshapes/pkg/net"
)

// Rounding policy used when the kernel doesn't fit a whole number of times in the padded input.
type Rounding int

//go:generate go tool enumer -type=Rounding -trimprefix=Round -json -text -output=gen_rounding_enumer.go filter.go

const (
	// RoundFloor drops a last partial window, used by convolutions.
	RoundFloor Rounding = iota

	// RoundCeil keeps a last partial window, used by pooling.
	RoundCeil
)

// FilterOutputDim returns the output dimension of a strided kernel along one spatial axis:
//
//	kernelExtent = dilation*(kernelSize-1) + 1
//	output = rounding((inputDim + 2*pad - kernelExtent) / stride + 1)
//
// The division is done in floating point before rounding. The result is not checked: it may be zero or
// negative for kernels larger than the padded input, it's up to the caller to decide whether that's an error.
// stride must be > 0.
func FilterOutputDim(inputDim, dilation, kernelSize, pad, stride int, rounding Rounding) int {
	kernelExtent := float64(dilation*(kernelSize-1)) + 1.0
	output := (float64(inputDim+2*pad)-kernelExtent)/float64(stride) + 1.0
	if rounding == RoundCeil {
		return int(math.Ceil(output))
	}
	return int(math.Floor(output))
}

// FilterOutputShape applies FilterOutputDim to the height and width.
func FilterOutputShape(height, width int, params net.FilterParameters, rounding Rounding) (outputHeight, outputWidth int) {
	outputHeight = FilterOutputDim(height, params.Dilation, params.KernelH, params.PadH, params.StrideH, rounding)
	outputWidth = FilterOutputDim(width, params.Dilation, params.KernelW, params.PadW, params.StrideW, rounding)
	return
}
