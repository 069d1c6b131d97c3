// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package net

// LayerKind is an enum of the layer types a network Node can have.
//
// It is a closed set: the shape rule bound to each kind is decided by a switch over all values (see
// package shapeinference), so adding a kind here requires deciding its shape rule there.
//
// The string representation is the name used by network descriptions, e.g. KindInnerProduct -> "InnerProduct".
type LayerKind int

//go:generate go tool enumer -type=LayerKind -trimprefix=Kind -json -text -output=gen_layerkind_enumer.go layerkind.go

const (
	KindInvalid LayerKind = iota
	KindAbsVal
	KindAccuracy
	KindArgMax
	KindBatchNorm
	KindBNLL
	KindConcat
	KindContrastiveLoss
	KindConvolution
	KindData
	KindDeconvolution
	KindDropout
	KindDummyData
	KindEuclideanLoss
	KindEltwise
	KindExp
	KindFlatten
	KindHDF5Data
	KindHDF5Output
	KindHingeLoss
	KindIm2col
	KindImageData
	KindInfogainLoss
	KindInnerProduct
	KindInput
	KindLRN
	KindMemoryData
	KindMultinomialLogisticLoss
	KindMVN
	KindPooling
	KindPower
	KindReLU
	KindScale
	KindSigmoid
	KindSigmoidCrossEntropyLoss
	KindSilence
	KindSoftmax
	KindSoftmaxWithLoss
	KindSplit
	KindSlice
	KindTanH
	KindWindowData
	KindThreshold
)

// IsDataSource returns whether the kind reads its data from outside the graph, and hence has no parents.
func (k LayerKind) IsDataSource() bool {
	switch k {
	case KindData, KindDummyData, KindHDF5Data, KindImageData, KindInput, KindMemoryData, KindWindowData:
		return true
	default:
		return false
	}
}
