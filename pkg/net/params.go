// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package net

import (
	"github.com/pkg/errors"
)

// Parameters holds the layer specific parameters of a Node.
//
// It is implemented only by the *XxxParameters types of this package: ConvolutionParameters,
// PoolingParameters, InnerProductParameters, ConcatParameters, DataParameters and MemoryDataParameters.
// Layers without parameters use nil.
type Parameters interface {
	isParameters()
}

// KernelSpec describes a 2D kernel the way a network description declares it: the repeated fields
// (KernelSize, Stride, Pad, Dilation) hold either one value, used for both spatial axes, or two values
// (height, width). The per-axis fields (KernelH, KernelW, ...) take precedence when they are > 0.
//
// Use Resolve to get the concrete FilterParameters.
type KernelSpec struct {
	KernelSize       []int
	KernelH, KernelW int

	Stride           []int
	StrideH, StrideW int

	Pad        []int
	PadH, PadW int

	Dilation []int
}

// FilterParameters are the concrete kernel arithmetic values of a strided kernel layer
// (convolution or pooling).
type FilterParameters struct {
	KernelH, KernelW int
	StrideH, StrideW int
	PadH, PadW       int
	Dilation         int
}

// kernelValue picks the value for the given spatial axis (0 for height, 1 for width).
// It returns defaultValue if nothing is set; if defaultValue < 0 a missing value is an error.
func kernelValue(name string, perAxis int, repeated []int, axis int, defaultValue int) (int, error) {
	if perAxis > 0 {
		return perAxis, nil
	}
	switch len(repeated) {
	case 0:
		if defaultValue < 0 {
			return 0, errors.Errorf("%s not set for spatial axis %d", name, axis)
		}
		return defaultValue, nil
	case 1:
		return repeated[0], nil
	case 2:
		return repeated[axis], nil
	default:
		return 0, errors.Errorf("%s has %d values (%v), wanted 1 or 2", name, len(repeated), repeated)
	}
}

// Resolve the kernel specification into FilterParameters. Missing strides default to 1, missing paddings to 0
// and a missing dilation to 1. The kernel size is required.
//
// If withDilation is false (pooling), the dilation is always 1.
func (k KernelSpec) Resolve(withDilation bool) (FilterParameters, error) {
	var (
		fp  FilterParameters
		err error
	)
	if fp.KernelH, err = kernelValue("kernel size", k.KernelH, k.KernelSize, 0, -1); err != nil {
		return fp, err
	}
	if fp.KernelW, err = kernelValue("kernel size", k.KernelW, k.KernelSize, 1, -1); err != nil {
		return fp, err
	}
	if fp.StrideH, err = kernelValue("stride", k.StrideH, k.Stride, 0, 1); err != nil {
		return fp, err
	}
	if fp.StrideW, err = kernelValue("stride", k.StrideW, k.Stride, 1, 1); err != nil {
		return fp, err
	}
	if fp.PadH, err = kernelValue("pad", k.PadH, k.Pad, 0, 0); err != nil {
		return fp, err
	}
	if fp.PadW, err = kernelValue("pad", k.PadW, k.Pad, 1, 0); err != nil {
		return fp, err
	}
	fp.Dilation = 1
	if withDilation && len(k.Dilation) > 0 {
		// A single dilation factor is used for both axes.
		if len(k.Dilation) == 2 && k.Dilation[0] != k.Dilation[1] {
			return fp, errors.Errorf("different dilations per axis (%v) are not supported", k.Dilation)
		}
		if len(k.Dilation) > 2 {
			return fp, errors.Errorf("dilation has %d values (%v), wanted 1 or 2", len(k.Dilation), k.Dilation)
		}
		fp.Dilation = k.Dilation[0]
	}
	if fp.StrideH < 1 || fp.StrideW < 1 {
		return fp, errors.Errorf("strides must be >= 1, got (%d, %d)", fp.StrideH, fp.StrideW)
	}
	return fp, nil
}

// ConvolutionParameters for KindConvolution layers.
type ConvolutionParameters struct {
	// NumOutput is the number of output channels. If 0, the number of channels of the input is kept.
	NumOutput int
	Kernel    KernelSpec
}

// PoolingParameters for KindPooling layers. Pooling never changes the number of channels.
type PoolingParameters struct {
	Method PoolMethod
	Kernel KernelSpec
}

// PoolMethod is the reduction used by a pooling layer. It doesn't affect shapes.
type PoolMethod int

const (
	PoolMax PoolMethod = iota
	PoolAverage
	PoolStochastic
)

// InnerProductParameters for KindInnerProduct (fully-connected) layers.
type InnerProductParameters struct {
	// NumOutput is the number of output units.
	NumOutput int
}

// ConcatParameters for KindConcat layers.
//
// A Concat node without parameters concatenates on the channels axis.
type ConcatParameters struct {
	// Axis to concatenate on. Negative values count from the end.
	Axis int
}

// BlobShape is an explicit list of dimensions, in (batch, channels, height, width) order.
type BlobShape struct {
	Dim []int64
}

// DataParameters for data source layers (KindInput, KindData, KindDummyData, ...).
//
// Only the first shape is used: it is the shape of the data output.
type DataParameters struct {
	Shape []BlobShape
}

// MemoryDataParameters for KindMemoryData layers.
type MemoryDataParameters struct {
	BatchSize, Channels, Height, Width int
}

func (*ConvolutionParameters) isParameters()  {}
func (*PoolingParameters) isParameters()      {}
func (*InnerProductParameters) isParameters() {}
func (*ConcatParameters) isParameters()       {}
func (*DataParameters) isParameters()         {}
func (*MemoryDataParameters) isParameters()   {}
