// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines TensorShape, the shape of the data flowing along one edge of a network graph.
//
// A TensorShape is always the 4-tuple (batch size, channels, height, width). The axis order is
// fixed and given by the constants BatchAxis, ChannelsAxis, HeightAxis and WidthAxis.
//
// ## Glossary
//
//   - Axis: the index of one of the four dimensions. Negative axes count from the end, so -1 refers
//     to WidthAxis.
//   - Dimension: the size of the tensor along one axis.
//   - Size: the number of elements, the product of all four dimensions.
//
// Example: `shapes.Make(2, 3, 224, 224)` is a batch of two RGB images of 224x224 pixels, printed as
// `(2, 3, 224, 224)`.
package shapes

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

const (
	BatchAxis = iota
	ChannelsAxis
	HeightAxis
	WidthAxis

	// Rank is the number of axes of every TensorShape.
	Rank
)

// TensorShape is the (batch size, channels, height, width) shape of a tensor.
//
// It is a plain value: copies are independent, and once a TensorShape is stored somewhere it can't
// be changed through another copy.
type TensorShape struct {
	BatchSize, Channels, Height, Width int
}

// Make returns a TensorShape with the given dimensions.
// It panics if any dimension is negative.
func Make(batchSize, channels, height, width int) TensorShape {
	s := TensorShape{BatchSize: batchSize, Channels: channels, Height: height, Width: width}
	for axis, dim := range s.Dims() {
		if dim < 0 {
			exceptions.Panicf("shapes.Make%s: axis %d has negative dimension %d", s, axis, dim)
		}
	}
	return s
}

// Scalar returns the shape (1, 1, 1, 1), used for single value outputs like losses and accuracies.
func Scalar() TensorShape {
	return TensorShape{BatchSize: 1, Channels: 1, Height: 1, Width: 1}
}

// FromDims converts a slice of exactly Rank dimensions to a TensorShape.
// Differently from Make, it returns an error for invalid input instead of panicking.
func FromDims(dims []int) (TensorShape, error) {
	if len(dims) != Rank {
		return TensorShape{}, errors.Errorf("shapes.FromDims(%v): wanted %d dimensions, got %d", dims, Rank, len(dims))
	}
	for axis, dim := range dims {
		if dim < 0 {
			return TensorShape{}, errors.Errorf("shapes.FromDims(%v): axis %d has negative dimension %d", dims, axis, dim)
		}
	}
	return TensorShape{BatchSize: dims[0], Channels: dims[1], Height: dims[2], Width: dims[3]}, nil
}

// NormalizeAxis converts a possibly negative axis to its position in [0, Rank).
func NormalizeAxis(axis int) (int, error) {
	adjusted := axis
	if adjusted < 0 {
		adjusted += Rank
	}
	if adjusted < 0 || adjusted >= Rank {
		return 0, errors.Errorf("axis %d out-of-bounds for rank %d", axis, Rank)
	}
	return adjusted, nil
}

// Dims returns the dimensions as an array, in axis order.
func (s TensorShape) Dims() [Rank]int {
	return [Rank]int{s.BatchSize, s.Channels, s.Height, s.Width}
}

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s TensorShape) Dim(axis int) int {
	adjusted, err := NormalizeAxis(axis)
	if err != nil {
		exceptions.Panicf("TensorShape.Dim(%d) for shape %s: %v", axis, s, err)
	}
	return s.Dims()[adjusted]
}

// WithDim returns a copy of the shape with the given axis set to dim.
// It panics for an out-of-bound axis.
func (s TensorShape) WithDim(axis, dim int) TensorShape {
	adjusted, err := NormalizeAxis(axis)
	if err != nil {
		exceptions.Panicf("TensorShape.WithDim(%d, %d) for shape %s: %v", axis, dim, s, err)
	}
	dims := s.Dims()
	dims[adjusted] = dim
	return TensorShape{BatchSize: dims[0], Channels: dims[1], Height: dims[2], Width: dims[3]}
}

// Size returns the number of elements for this shape: the product of all dimensions.
func (s TensorShape) Size() int {
	return s.BatchSize * s.Channels * s.Height * s.Width
}

// IsZero returns whether s is the zero value TensorShape{}, which is never produced by shape inference.
func (s TensorShape) IsZero() bool {
	return s == TensorShape{}
}

// Equal compares two shapes for equality.
func (s TensorShape) Equal(s2 TensorShape) bool {
	return s == s2
}

// String implements fmt.Stringer.
func (s TensorShape) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", s.BatchSize, s.Channels, s.Height, s.Width)
}

// Check that the shape has the given dimensions. A value of -1 in dimensions means it can take any
// value and is not checked.
//
// It returns an error if the number of dimensions is not Rank or if any of the dimensions don't match.
func (s TensorShape) Check(dimensions ...int) error {
	if len(dimensions) != Rank {
		return errors.Errorf("shape %s has rank %d, but %d dimensions were given to check (%v)", s, Rank, len(dimensions), dimensions)
	}
	for axis, dim := range s.Dims() {
		wantDim := dimensions[axis]
		if wantDim != -1 && dim != wantDim {
			return errors.Errorf("shape %s axis %d has dimension %d, wanted %d (shape wanted=%v)", s, axis, dim, wantDim, dimensions)
		}
	}
	return nil
}
