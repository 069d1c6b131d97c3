// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapeinference calculates the output shape of every node of a network graph.
//
// Each layer kind is bound to a shape Rule (see RuleFor), a function of the node's parameters and the
// already computed shapes of its parents. The Inferrer visits the nodes of a graph in topological order,
// applies the rule of each one and stores the result in the node (see net.Node.OutputShape).
//
// Convolution and pooling layers share the strided kernel arithmetic of FilterOutputDim, with different
// rounding policies.
//
// Example:
//
//	inferrer := shapeinference.New()
//	if err := inferrer.InferGraph(g); err != nil {
//		klog.Fatalf("Failed: %+v", err)
//	}
//	shape, _ := g.Node("prob").OutputShape()
package shapeinference

import (
	"sync/atomic"

	"github.com/gomlx/netshapes/pkg/core/shapes"
	"github.com/gomlx/netshapes/pkg/net"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Inferrer applies the shape rules to nodes. Create it with New.
//
// Its configuration is immutable after creation, and it can be used concurrently.
type Inferrer struct {
	strictConcat    bool
	checkDimensions bool
	parallelism     int

	evaluations atomic.Int64
}

// Option configures an Inferrer.
type Option func(inf *Inferrer)

// WithStrictConcat makes Concat layers fail with ErrMismatchedConcat if the parents' shapes differ on an axis
// other than the concatenation axis. By default, those axes are not checked and the first parent's
// dimensions are used.
func WithStrictConcat(strict bool) Option {
	return func(inf *Inferrer) { inf.strictConcat = strict }
}

// WithDimensionCheck enables (the default) or disables failing with ErrInvalidDimension when a convolution or
// pooling outputs a non-positive height or width. If disabled, such dimensions are stored as computed.
func WithDimensionCheck(check bool) Option {
	return func(inf *Inferrer) { inf.checkDimensions = check }
}

// WithParallelism sets the maximum number of nodes evaluated concurrently by InferGraphParallel.
// A value <= 1 evaluates sequentially.
func WithParallelism(parallelism int) Option {
	return func(inf *Inferrer) { inf.parallelism = parallelism }
}

// New returns a new Inferrer configured with the given options.
func New(options ...Option) *Inferrer {
	inf := &Inferrer{checkDimensions: true}
	for _, option := range options {
		option(inf)
	}
	return inf
}

// Evaluations returns how many times a shape rule was applied by this Inferrer. Nodes that already had
// their shape are not counted.
func (inf *Inferrer) Evaluations() int64 {
	return inf.evaluations.Load()
}

// Infer returns the output shape of node, and stores it in the node.
//
// If the node was already evaluated, its stored shape is returned without applying the rule again.
// The parents of the node must have been evaluated before, otherwise it fails with ErrUnevaluatedParent.
//
// Errors are returned as *NodeError.
func (inf *Inferrer) Infer(node *net.Node) (shapes.TensorShape, error) {
	if shape, found := node.OutputShape(); found {
		return shape, nil
	}
	rule := RuleFor(node.Kind())
	inf.evaluations.Add(1)
	shape, err := inf.apply(rule, node)
	if err != nil {
		return shapes.TensorShape{}, newNodeError(node, err)
	}
	if err = node.SetOutputShape(shape); err != nil {
		if !errors.Is(err, net.ErrShapeAlreadySet) {
			return shapes.TensorShape{}, newNodeError(node, err)
		}
		// Someone else evaluated the node concurrently: the first value stored wins.
		shape, _ = node.OutputShape()
	}
	if klog.V(1).Enabled() {
		klog.Infof("shapeinference: %s (rule %s) -> %s", node, rule, shape)
	}
	return shape, nil
}

// InferGraph evaluates all the nodes of the graph, in topological order.
//
// It stops at the first failure, and the descendants of the failed node are left unevaluated.
func (inf *Inferrer) InferGraph(g *net.Graph) error {
	order, err := g.TopologicalOrder()
	if err != nil {
		return err
	}
	for _, node := range order {
		if _, err := inf.Infer(node); err != nil {
			return err
		}
	}
	return nil
}

// Shapes returns the output shapes of all the evaluated nodes of the graph, indexed by node name.
func Shapes(g *net.Graph) map[string]shapes.TensorShape {
	results := make(map[string]shapes.TensorShape, g.NumNodes())
	for _, node := range g.Nodes() {
		if shape, found := node.OutputShape(); found {
			results[node.Name()] = shape
		}
	}
	return results
}
