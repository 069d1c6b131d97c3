// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"fmt"

	"github.com/gomlx/netshapes/pkg/net"
	"github.com/pkg/errors"
)

// Failures of shape inference. They are always returned wrapped in a *NodeError, use errors.Is to test for them.
var (
	// ErrUnimplementedShapeRule is returned for layer kinds without a shape rule.
	ErrUnimplementedShapeRule = errors.New("no shape rule implemented for layer kind")

	// ErrMissingParent is returned when a rule needs more parents than the node has.
	ErrMissingParent = errors.New("missing parent")

	// ErrTooManyParents is returned by rules that require exactly one parent.
	ErrTooManyParents = errors.New("too many parents")

	// ErrUnevaluatedParent is returned when a parent's shape hasn't been computed yet: nodes were not
	// evaluated in topological order.
	ErrUnevaluatedParent = errors.New("parent shape not evaluated")

	// ErrIndeterminateDataShape is returned for data layers with neither a declared shape nor an explicit
	// shape in their parameters. Their dimensions could only be found by reading the data source, which is
	// never done.
	ErrIndeterminateDataShape = errors.New("cannot determine the dimensions of the data layer")

	// ErrMissingParameters is returned when a rule requires layer parameters the node doesn't have.
	ErrMissingParameters = errors.New("missing layer parameters")

	// ErrInvalidDimension is returned when a computed dimension is not positive, usually due to
	// inconsistent kernel, stride and padding values.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrMismatchedConcat is returned in strict concatenation mode when the parents' shapes differ on
	// an axis other than the concatenation axis.
	ErrMismatchedConcat = errors.New("mismatched dimensions for concatenation")
)

// NodeError is the error returned when inferring the shape of a node fails. It identifies the node
// and unwraps to the cause.
type NodeError struct {
	Node *net.Node
	Err  error
}

func newNodeError(node *net.Node, err error) *NodeError {
	return &NodeError{Node: node, Err: err}
}

// Error implements error.
func (e *NodeError) Error() string {
	return fmt.Sprintf("shape inference failed for node %s: %v", e.Node, e.Err)
}

// Unwrap returns the cause of the failure.
func (e *NodeError) Unwrap() error { return e.Err }

// Cause implements github.com/pkg/errors causer interface.
func (e *NodeError) Cause() error { return e.Err }
