// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package zoo builds a few well known networks as net.Graph, with their shapes left for inference.
//
// They are used by the netshapes command line tool and as end-to-end test cases.
package zoo

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/netshapes/pkg/net"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

var menu = [...]struct {
	name         string
	defaultBatch int
	build        func(b *builder, batchSize int)
}{
	{"LeNet", 64, leNet},
	{"AlexNet", 10, alexNet},
	{"GoogLeNetStem", 1, googLeNetStem},
	{"DilatedContext", 1, dilatedContext},
	{"MemoryMLP", 100, memoryMLP},
}

// Names returns the names of the networks available.
func Names() []string {
	names := make([]string, len(menu))
	for i := range &menu {
		names[i] = menu[i].name
	}
	return names
}

// Build returns the graph of the named network. If batchSize <= 0 the network's default batch size is used.
func Build(name string, batchSize int) (*net.Graph, error) {
	for i := range &menu {
		if menu[i].name != name {
			continue
		}
		if batchSize <= 0 {
			batchSize = menu[i].defaultBatch
		}
		b := &builder{g: net.NewGraph()}
		err := exceptions.TryCatch[error](func() { menu[i].build(b, batchSize) })
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to build network %q", name)
		}
		return b.g, nil
	}
	return nil, errors.Errorf("unknown network %q, available networks: %v", name, Names())
}

// builder wraps net.Graph with helpers for the common layers. It panics on errors, caught by Build.
type builder struct {
	g *net.Graph
}

func (b *builder) layer(name string, kind net.LayerKind, params net.Parameters, parents ...*net.Node) *net.Node {
	return must.M1(b.g.Add(name, kind, params, parents...))
}

func (b *builder) input(name string, dims ...int64) *net.Node {
	return b.layer(name, net.KindInput, &net.DataParameters{Shape: []net.BlobShape{{Dim: dims}}})
}

func (b *builder) conv(name string, x *net.Node, numOutput, kernel, stride, pad int) *net.Node {
	return b.layer(name, net.KindConvolution, &net.ConvolutionParameters{
		NumOutput: numOutput,
		Kernel:    net.KernelSpec{KernelSize: []int{kernel}, Stride: []int{stride}, Pad: []int{pad}},
	}, x)
}

func (b *builder) dilatedConv(name string, x *net.Node, numOutput, kernel, dilation int) *net.Node {
	// Padding is set to keep the spatial dimensions.
	pad := dilation * (kernel - 1) / 2
	return b.layer(name, net.KindConvolution, &net.ConvolutionParameters{
		NumOutput: numOutput,
		Kernel:    net.KernelSpec{KernelSize: []int{kernel}, Pad: []int{pad}, Dilation: []int{dilation}},
	}, x)
}

func (b *builder) pool(name string, x *net.Node, method net.PoolMethod, kernel, stride, pad int) *net.Node {
	return b.layer(name, net.KindPooling, &net.PoolingParameters{
		Method: method,
		Kernel: net.KernelSpec{KernelSize: []int{kernel}, Stride: []int{stride}, Pad: []int{pad}},
	}, x)
}

func (b *builder) fc(name string, x *net.Node, numOutput int) *net.Node {
	return b.layer(name, net.KindInnerProduct, &net.InnerProductParameters{NumOutput: numOutput}, x)
}

func (b *builder) relu(name string, x *net.Node) *net.Node {
	return b.layer(name, net.KindReLU, nil, x)
}
