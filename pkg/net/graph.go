// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package net describes a neural network as a directed acyclic graph of layer descriptors.
//
// Each Node has a LayerKind, an ordered list of parents, layer specific Parameters and a write-once
// output shape, filled by package shapeinference.
//
// A Graph owns the nodes and provides a TopologicalOrder, where every node comes after all of its
// parents. Example:
//
//	g := net.NewGraph()
//	data := must.M1(g.Add("data", net.KindInput, nil))
//	data.DeclareShape(shapes.Make(1, 3, 224, 224))
//	conv := must.M1(g.Add("conv1", net.KindConvolution, &net.ConvolutionParameters{
//		NumOutput: 64,
//		Kernel:    net.KernelSpec{KernelSize: []int{7}, Stride: []int{2}, Pad: []int{3}},
//	}, data))
package net

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a network: a set of uniquely named nodes and the parent/child relation between them.
//
// It is not safe for concurrent modification. Once built, it can be read concurrently.
type Graph struct {
	nodes  []*Node
	byName map[string]*Node
	dag    *simple.DirectedGraph
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		byName: make(map[string]*Node),
		dag:    simple.NewDirectedGraph(),
	}
}

// Add creates a new node in the graph. The parents must already be part of g.
func (g *Graph) Add(name string, kind LayerKind, params Parameters, parents ...*Node) (*Node, error) {
	if name == "" {
		return nil, errors.Errorf("Graph.Add(kind=%s): empty node name", kind)
	}
	if _, found := g.byName[name]; found {
		return nil, errors.Errorf("Graph.Add(%q): a node with this name already exists", name)
	}
	if !kind.IsALayerKind() {
		return nil, errors.Errorf("Graph.Add(%q): invalid layer kind %s", name, kind)
	}
	for ii, parent := range parents {
		if parent == nil {
			return nil, errors.Errorf("Graph.Add(%q): parent #%d is nil", name, ii)
		}
		if parent.graph != g {
			return nil, errors.Errorf("Graph.Add(%q): parent #%d %s is not part of this graph", name, ii, parent)
		}
	}
	node := NewNode(name, kind, params, parents...)
	node.graph = g
	node.id = int64(len(g.nodes))
	g.nodes = append(g.nodes, node)
	g.byName[name] = node
	g.dag.AddNode(simple.Node(node.id))
	for _, parent := range parents {
		g.setEdge(parent, node)
	}
	return node, nil
}

func (g *Graph) setEdge(parent, child *Node) {
	// The same parent can be used more than once (e.g.: concatenating a node with itself): the
	// underlying graph keeps only one edge, which is enough for the ordering.
	g.dag.SetEdge(g.dag.NewEdge(simple.Node(parent.id), simple.Node(child.id)))
}

// Connect appends parent to the list of parents of child, after child was created.
//
// Differently from Add, this allows building graphs with cycles, which TopologicalOrder will then reject.
func (g *Graph) Connect(parent, child *Node) error {
	if parent == nil || child == nil {
		return errors.New("Graph.Connect: nil node")
	}
	if parent.graph != g || child.graph != g {
		return errors.Errorf("Graph.Connect(%s, %s): both nodes must be part of this graph", parent, child)
	}
	if parent == child {
		return errors.Errorf("Graph.Connect(%s, %s): a node can't be its own parent", parent, child)
	}
	child.parents = append(child.parents, parent)
	parent.children = append(parent.children, child)
	g.setEdge(parent, child)
	return nil
}

// Node returns the node with the given name, or nil if not found.
func (g *Graph) Node(name string) *Node {
	return g.byName[name]
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Nodes returns all nodes, in insertion order.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// Inputs returns the nodes without parents, in insertion order.
func (g *Graph) Inputs() []*Node {
	var inputs []*Node
	for _, node := range g.nodes {
		if len(node.parents) == 0 {
			inputs = append(inputs, node)
		}
	}
	return inputs
}

// Outputs returns the nodes without children, in insertion order.
func (g *Graph) Outputs() []*Node {
	var outputs []*Node
	for _, node := range g.nodes {
		if len(node.children) == 0 {
			outputs = append(outputs, node)
		}
	}
	return outputs
}

// TopologicalOrder returns all the nodes in an order where every node comes after all of its parents.
// Where there is more than one valid order, ties are broken by insertion order, so the result is deterministic.
//
// It returns an error if the graph has a cycle.
func (g *Graph) TopologicalOrder() ([]*Node, error) {
	sorted, err := topo.SortStabilized(g.dag, func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })
	})
	if err != nil {
		var unorderable topo.Unorderable
		if errors.As(err, &unorderable) {
			var names [][]string
			for _, component := range unorderable {
				var cycle []string
				for _, gNode := range component {
					cycle = append(cycle, g.nodes[gNode.ID()].name)
				}
				slices.Sort(cycle)
				names = append(names, cycle)
			}
			return nil, errors.Errorf("network graph is not acyclic, cycles among nodes %v", names)
		}
		return nil, errors.Wrap(err, "failed to sort network graph")
	}
	order := make([]*Node, len(sorted))
	for ii, gNode := range sorted {
		order[ii] = g.nodes[gNode.ID()]
	}
	return order, nil
}
