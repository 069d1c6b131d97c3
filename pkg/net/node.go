// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package net

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/gomlx/netshapes/pkg/core/shapes"
	"github.com/pkg/errors"
)

// ErrShapeAlreadySet is returned by Node.SetOutputShape when the node already has its output shape.
var ErrShapeAlreadySet = errors.New("output shape already set")

// Node is one layer of a network: its kind, its parents (the layers whose outputs it consumes), its
// parameters and, once evaluated, its output shape.
//
// The output shape is a write-once cell: it is set once by shape inference and from then on it can be
// read concurrently by any number of readers.
type Node struct {
	name     string
	kind     LayerKind
	params   Parameters
	parents  []*Node
	children []*Node

	// graph that owns the node (nil for standalone nodes) and its id in it.
	graph *Graph
	id    int64

	declaredShape *shapes.TensorShape
	outputShape   atomic.Pointer[shapes.TensorShape]
}

// NewNode creates a standalone node, not owned by any Graph.
// Nodes that are part of a network should be created with Graph.Add instead.
func NewNode(name string, kind LayerKind, params Parameters, parents ...*Node) *Node {
	node := &Node{
		name:    name,
		kind:    kind,
		params:  params,
		parents: slices.Clone(parents),
		id:      -1,
	}
	for _, parent := range parents {
		parent.children = append(parent.children, node)
	}
	return node
}

// Name of the node, unique within its Graph.
func (n *Node) Name() string { return n.name }

// Kind returns the layer kind of the node.
func (n *Node) Kind() LayerKind { return n.kind }

// Parameters returns the layer specific parameters, or nil if the layer has none.
func (n *Node) Parameters() Parameters { return n.params }

// Graph returns the Graph that owns the node, or nil for standalone nodes.
func (n *Node) Graph() *Graph { return n.graph }

// NumParents returns the number of parents (inputs) of the node.
func (n *Node) NumParents() int { return len(n.parents) }

// Parents returns a copy of the ordered list of parents of the node.
func (n *Node) Parents() []*Node { return slices.Clone(n.parents) }

// Parent returns the i-th parent.
func (n *Node) Parent(i int) *Node { return n.parents[i] }

// Children returns a copy of the list of nodes that have n as a parent.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// DeclareShape sets the shape the node declares upfront: it's used by data source layers whose
// shape is given by the network description and not derived from parameters.
func (n *Node) DeclareShape(shape shapes.TensorShape) {
	n.declaredShape = &shape
}

// DeclaredShape returns the shape declared with DeclareShape, if any.
func (n *Node) DeclaredShape() (shape shapes.TensorShape, found bool) {
	if n.declaredShape == nil {
		return
	}
	return *n.declaredShape, true
}

// OutputShape returns the computed output shape of the node, and whether it has been computed already.
func (n *Node) OutputShape() (shape shapes.TensorShape, found bool) {
	ptr := n.outputShape.Load()
	if ptr == nil {
		return
	}
	return *ptr, true
}

// IsEvaluated returns whether the output shape has been set.
func (n *Node) IsEvaluated() bool {
	return n.outputShape.Load() != nil
}

// SetOutputShape stores the output shape of the node. It can only be done once: further calls
// return ErrShapeAlreadySet and leave the stored value unchanged.
//
// It is safe to call concurrently, exactly one of the callers wins.
func (n *Node) SetOutputShape(shape shapes.TensorShape) error {
	if !n.outputShape.CompareAndSwap(nil, &shape) {
		return errors.Wrapf(ErrShapeAlreadySet, "node %s", n)
	}
	return nil
}

// String implements fmt.Stringer. It prints the name and kind of the node.
func (n *Node) String() string {
	return fmt.Sprintf("%q[%s]", n.name, n.kind)
}

// Describe returns a one-line description of the node: name, kind, parents and output shape, if set.
func (n *Node) Describe() string {
	var sb strings.Builder
	sb.WriteString(n.String())
	if len(n.parents) > 0 {
		names := make([]string, len(n.parents))
		for ii, parent := range n.parents {
			names[ii] = parent.name
		}
		fmt.Fprintf(&sb, " <- (%s)", strings.Join(names, ", "))
	}
	if shape, found := n.OutputShape(); found {
		fmt.Fprintf(&sb, " -> %s", shape)
	}
	return sb.String()
}
