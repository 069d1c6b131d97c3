// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"github.com/gomlx/netshapes/pkg/core/shapes"
	"github.com/gomlx/netshapes/pkg/net"
	"github.com/pkg/errors"
)

// Rule is the shape rule used for a layer kind.
type Rule int

//go:generate go tool enumer -type=Rule -trimprefix=Rule -json -text -output=gen_rule_enumer.go rules.go

const (
	// RuleNotImplemented always fails with ErrUnimplementedShapeRule.
	RuleNotImplemented Rule = iota

	// RuleIdentity returns the shape of the first parent.
	RuleIdentity

	// RuleScalar returns (1, 1, 1, 1), for layers that output a single statistic (losses, accuracy).
	RuleScalar

	// RuleData returns the declared shape, or the shape given in the DataParameters.
	RuleData

	// RuleMemoryData returns the shape given in the MemoryDataParameters.
	RuleMemoryData

	// RuleConcat adds up the parents' dimension along the concatenation axis.
	RuleConcat

	// RuleConvolution is a strided kernel with floor rounding and, optionally, a new number of channels.
	RuleConvolution

	// RulePooling is a strided kernel with ceil rounding that keeps the number of channels.
	RulePooling

	// RuleInnerProduct flattens its only parent into (batch, NumOutput, 1, 1).
	RuleInnerProduct
)

// RuleFor returns the shape rule bound to a layer kind.
//
// Kinds without a rule map to RuleNotImplemented explicitly: a new kind must be added here
// before its shape can be inferred.
func RuleFor(kind net.LayerKind) Rule {
	switch kind {
	case net.KindAbsVal, net.KindBatchNorm, net.KindDropout, net.KindEltwise, net.KindExp,
		net.KindHDF5Output, net.KindLRN, net.KindPower, net.KindReLU, net.KindScale,
		net.KindSigmoid, net.KindSoftmax, net.KindTanH, net.KindThreshold:
		return RuleIdentity

	case net.KindAccuracy, net.KindContrastiveLoss, net.KindEuclideanLoss, net.KindHingeLoss,
		net.KindInfogainLoss, net.KindMultinomialLogisticLoss, net.KindSigmoidCrossEntropyLoss,
		net.KindSoftmaxWithLoss:
		return RuleScalar

	case net.KindData, net.KindDummyData, net.KindHDF5Data, net.KindImageData, net.KindInput:
		return RuleData

	case net.KindMemoryData:
		return RuleMemoryData

	case net.KindConcat:
		return RuleConcat

	case net.KindConvolution:
		return RuleConvolution

	case net.KindPooling:
		return RulePooling

	case net.KindInnerProduct:
		return RuleInnerProduct

	case net.KindInvalid, net.KindArgMax, net.KindBNLL, net.KindDeconvolution, net.KindFlatten,
		net.KindIm2col, net.KindMVN, net.KindSilence, net.KindSplit, net.KindSlice, net.KindWindowData:
		return RuleNotImplemented
	}
	return RuleNotImplemented
}

// apply the rule to the node. Parents must have been evaluated already.
func (inf *Inferrer) apply(rule Rule, node *net.Node) (shapes.TensorShape, error) {
	switch rule {
	case RuleIdentity:
		return firstParentShape(node)
	case RuleScalar:
		return shapes.Scalar(), nil
	case RuleData:
		return dataShape(node)
	case RuleMemoryData:
		return memoryDataShape(node)
	case RuleConcat:
		return inf.concatShape(node)
	case RuleConvolution:
		return inf.convolutionShape(node)
	case RulePooling:
		return inf.poolingShape(node)
	case RuleInnerProduct:
		return innerProductShape(node)
	case RuleNotImplemented:
	}
	return shapes.TensorShape{}, errors.Wrapf(ErrUnimplementedShapeRule, "layer kind %s", node.Kind())
}

// parentShape returns the output shape of the i-th parent.
func parentShape(node *net.Node, i int) (shapes.TensorShape, error) {
	parent := node.Parent(i)
	shape, found := parent.OutputShape()
	if !found {
		return shape, errors.Wrapf(ErrUnevaluatedParent, "parent #%d %s", i, parent)
	}
	return shape, nil
}

func firstParentShape(node *net.Node) (shapes.TensorShape, error) {
	if node.NumParents() == 0 {
		return shapes.TensorShape{}, errors.Wrapf(ErrMissingParent, "%s requires at least one parent", node.Kind())
	}
	return parentShape(node, 0)
}

// onlyParentShape returns the shape of the only parent of node.
func onlyParentShape(node *net.Node) (shapes.TensorShape, error) {
	switch node.NumParents() {
	case 0:
		return shapes.TensorShape{}, errors.Wrapf(ErrMissingParent, "%s requires exactly one parent", node.Kind())
	case 1:
		return parentShape(node, 0)
	default:
		return shapes.TensorShape{}, errors.Wrapf(ErrTooManyParents, "%s requires exactly one parent, got %d",
			node.Kind(), node.NumParents())
	}
}

// dataShape tries first the declared shape, then the parameters. The data source is never read.
func dataShape(node *net.Node) (shapes.TensorShape, error) {
	if shape, found := node.DeclaredShape(); found {
		return shape, nil
	}
	params, _ := node.Parameters().(*net.DataParameters)
	if params == nil || len(params.Shape) == 0 || len(params.Shape[0].Dim) == 0 {
		return shapes.TensorShape{}, errors.Wrap(ErrIndeterminateDataShape,
			"declare its shape or give an explicit shape in its parameters")
	}
	blobDims := params.Shape[0].Dim
	if len(blobDims) > shapes.Rank {
		return shapes.TensorShape{}, errors.Wrapf(ErrInvalidDimension,
			"data shape %v has %d axes, at most %d are supported", blobDims, len(blobDims), shapes.Rank)
	}
	// Missing trailing axes are 1: a (batch, channels) input is (batch, channels, 1, 1).
	dims := []int{1, 1, 1, 1}
	for axis, dim := range blobDims {
		if dim < 0 {
			return shapes.TensorShape{}, errors.Wrapf(ErrInvalidDimension,
				"data shape %v has negative dimension at axis %d", blobDims, axis)
		}
		dims[axis] = int(dim)
	}
	return shapes.FromDims(dims)
}

func memoryDataShape(node *net.Node) (shapes.TensorShape, error) {
	params, _ := node.Parameters().(*net.MemoryDataParameters)
	if params == nil {
		return shapes.TensorShape{}, errors.Wrap(ErrMissingParameters, "MemoryData requires MemoryDataParameters")
	}
	return shapes.TensorShape{
		BatchSize: params.BatchSize,
		Channels:  params.Channels,
		Height:    params.Height,
		Width:     params.Width,
	}, nil
}

func (inf *Inferrer) concatShape(node *net.Node) (shapes.TensorShape, error) {
	if node.NumParents() == 0 {
		return shapes.TensorShape{}, errors.Wrap(ErrMissingParent, "Concat requires at least one parent")
	}
	axis := shapes.ChannelsAxis
	if params, _ := node.Parameters().(*net.ConcatParameters); params != nil {
		axis = params.Axis
	}
	axis, err := shapes.NormalizeAxis(axis)
	if err != nil {
		return shapes.TensorShape{}, errors.WithMessage(err, "invalid concatenation axis")
	}

	first, err := parentShape(node, 0)
	if err != nil {
		return first, err
	}
	dims := first.Dims()
	for ii := 1; ii < node.NumParents(); ii++ {
		current, err := parentShape(node, ii)
		if err != nil {
			return current, err
		}
		currentDims := current.Dims()
		if inf.strictConcat {
			for d := range shapes.Rank {
				if d != axis && currentDims[d] != dims[d] {
					return shapes.TensorShape{}, errors.Wrapf(ErrMismatchedConcat,
						"axis %d (non-concatenation axis): parent #0 has %d, parent #%d has %d",
						d, dims[d], ii, currentDims[d])
				}
			}
		}
		dims[axis] += currentDims[axis]
	}
	return shapes.TensorShape{BatchSize: dims[0], Channels: dims[1], Height: dims[2], Width: dims[3]}, nil
}

// stridedKernelShape returns the output shape of a convolution or pooling layer, keeping the parent's channels.
func (inf *Inferrer) stridedKernelShape(node *net.Node, kernel net.KernelSpec, withDilation bool, rounding Rounding) (
	shapes.TensorShape, error) {
	input, err := onlyParentShape(node)
	if err != nil {
		return input, err
	}
	filter, err := kernel.Resolve(withDilation)
	if err != nil {
		return shapes.TensorShape{}, errors.WithMessage(err, "invalid kernel parameters")
	}
	outputHeight, outputWidth := FilterOutputShape(input.Height, input.Width, filter, rounding)
	if inf.checkDimensions && (outputHeight <= 0 || outputWidth <= 0) {
		return shapes.TensorShape{}, errors.Wrapf(ErrInvalidDimension,
			"output spatial dimensions (%d, %d) for input %s and kernel %+v", outputHeight, outputWidth, input, filter)
	}
	return shapes.TensorShape{
		BatchSize: input.BatchSize,
		Channels:  input.Channels,
		Height:    outputHeight,
		Width:     outputWidth,
	}, nil
}

func (inf *Inferrer) convolutionShape(node *net.Node) (shapes.TensorShape, error) {
	params, _ := node.Parameters().(*net.ConvolutionParameters)
	if params == nil {
		return shapes.TensorShape{}, errors.Wrap(ErrMissingParameters, "Convolution requires ConvolutionParameters")
	}
	output, err := inf.stridedKernelShape(node, params.Kernel, true, RoundFloor)
	if err != nil {
		return output, err
	}
	if params.NumOutput > 0 {
		output.Channels = params.NumOutput
	}
	return output, nil
}

func (inf *Inferrer) poolingShape(node *net.Node) (shapes.TensorShape, error) {
	params, _ := node.Parameters().(*net.PoolingParameters)
	if params == nil {
		return shapes.TensorShape{}, errors.Wrap(ErrMissingParameters, "Pooling requires PoolingParameters")
	}
	return inf.stridedKernelShape(node, params.Kernel, false, RoundCeil)
}

func innerProductShape(node *net.Node) (shapes.TensorShape, error) {
	params, _ := node.Parameters().(*net.InnerProductParameters)
	if params == nil {
		return shapes.TensorShape{}, errors.Wrap(ErrMissingParameters, "InnerProduct requires InnerProductParameters")
	}
	input, err := onlyParentShape(node)
	if err != nil {
		return input, err
	}
	return shapes.TensorShape{BatchSize: input.BatchSize, Channels: params.NumOutput, Height: 1, Width: 1}, nil
}
