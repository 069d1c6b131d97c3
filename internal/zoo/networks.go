// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package zoo

import (
	"fmt"

	"github.com/gomlx/netshapes/pkg/core/shapes"
	"github.com/gomlx/netshapes/pkg/net"
)

func leNet(b *builder, batchSize int) {
	data := b.input("data", int64(batchSize), 1, 28, 28)
	label := b.layer("label", net.KindInput, nil)
	label.DeclareShape(shapes.Make(batchSize, 1, 1, 1))

	x := b.conv("conv1", data, 20, 5, 1, 0)
	x = b.pool("pool1", x, net.PoolMax, 2, 2, 0)
	x = b.conv("conv2", x, 50, 5, 1, 0)
	x = b.pool("pool2", x, net.PoolMax, 2, 2, 0)
	x = b.fc("ip1", x, 500)
	x = b.relu("relu1", x)
	logits := b.fc("ip2", x, 10)
	b.layer("prob", net.KindSoftmax, nil, logits)
	b.layer("accuracy", net.KindAccuracy, nil, logits, label)
	b.layer("loss", net.KindSoftmaxWithLoss, nil, logits, label)
}

func alexNet(b *builder, batchSize int) {
	x := b.input("data", int64(batchSize), 3, 227, 227)
	convs := []struct {
		numOutput, kernel, stride, pad int
		norm, pool                     bool
	}{
		{96, 11, 4, 0, true, true},
		{256, 5, 1, 2, true, true},
		{384, 3, 1, 1, false, false},
		{384, 3, 1, 1, false, false},
		{256, 3, 1, 1, false, true},
	}
	for ii, c := range convs {
		idx := ii + 1
		x = b.conv(fmt.Sprintf("conv%d", idx), x, c.numOutput, c.kernel, c.stride, c.pad)
		x = b.relu(fmt.Sprintf("relu%d", idx), x)
		if c.norm {
			x = b.layer(fmt.Sprintf("norm%d", idx), net.KindLRN, nil, x)
		}
		if c.pool {
			x = b.pool(fmt.Sprintf("pool%d", idx), x, net.PoolMax, 3, 2, 0)
		}
	}
	for idx := 6; idx <= 7; idx++ {
		x = b.fc(fmt.Sprintf("fc%d", idx), x, 4096)
		x = b.relu(fmt.Sprintf("relu%d", idx), x)
		x = b.layer(fmt.Sprintf("drop%d", idx), net.KindDropout, nil, x)
	}
	x = b.fc("fc8", x, 1000)
	b.layer("prob", net.KindSoftmax, nil, x)
}

// inception adds a GoogLeNet inception module and returns its output: the concatenation of a 1x1 branch,
// a 3x3 branch, a 5x5 branch and a pooling branch.
func (b *builder) inception(name string, x *net.Node, out1x1, reduce3x3, out3x3, reduce5x5, out5x5, poolProj int) *net.Node {
	branch1 := b.relu(name+"/relu_1x1", b.conv(name+"/1x1", x, out1x1, 1, 1, 0))

	branch3 := b.relu(name+"/relu_3x3_reduce", b.conv(name+"/3x3_reduce", x, reduce3x3, 1, 1, 0))
	branch3 = b.relu(name+"/relu_3x3", b.conv(name+"/3x3", branch3, out3x3, 3, 1, 1))

	branch5 := b.relu(name+"/relu_5x5_reduce", b.conv(name+"/5x5_reduce", x, reduce5x5, 1, 1, 0))
	branch5 = b.relu(name+"/relu_5x5", b.conv(name+"/5x5", branch5, out5x5, 5, 1, 2))

	branchPool := b.pool(name+"/pool", x, net.PoolMax, 3, 1, 1)
	branchPool = b.relu(name+"/relu_pool_proj", b.conv(name+"/pool_proj", branchPool, poolProj, 1, 1, 0))

	return b.layer(name+"/output", net.KindConcat, &net.ConcatParameters{Axis: shapes.ChannelsAxis},
		branch1, branch3, branch5, branchPool)
}

func googLeNetStem(b *builder, batchSize int) {
	x := b.input("data", int64(batchSize), 3, 224, 224)
	x = b.relu("conv1/relu_7x7", b.conv("conv1/7x7_s2", x, 64, 7, 2, 3))
	x = b.pool("pool1/3x3_s2", x, net.PoolMax, 3, 2, 0)
	x = b.layer("pool1/norm1", net.KindLRN, nil, x)
	x = b.relu("conv2/relu_3x3_reduce", b.conv("conv2/3x3_reduce", x, 64, 1, 1, 0))
	x = b.relu("conv2/relu_3x3", b.conv("conv2/3x3", x, 192, 3, 1, 1))
	x = b.layer("conv2/norm2", net.KindLRN, nil, x)
	x = b.pool("pool2/3x3_s2", x, net.PoolMax, 3, 2, 0)
	x = b.inception("inception_3a", x, 64, 96, 128, 16, 32, 32)
	x = b.inception("inception_3b", x, 128, 128, 192, 32, 96, 64)
	x = b.pool("pool3/7x7_s1", x, net.PoolAverage, 28, 1, 0)
	x = b.layer("pool3/drop", net.KindDropout, nil, x)
	x = b.fc("classifier", x, 1000)
	b.layer("prob", net.KindSoftmax, nil, x)
}

// dilatedContext is a context aggregation module: dilated 3x3 convolutions with exponentially
// increasing dilation that keep the spatial dimensions.
func dilatedContext(b *builder, batchSize int) {
	const classes = 21
	x := b.input("data", int64(batchSize), classes, 64, 64)
	x = b.relu("ctx_relu1", b.dilatedConv("ctx_conv1", x, 2*classes, 3, 1))
	for ii, dilation := range []int{2, 4, 8, 16} {
		idx := ii + 2
		x = b.relu(fmt.Sprintf("ctx_relu%d", idx), b.dilatedConv(fmt.Sprintf("ctx_conv%d", idx), x, 2*classes, 3, dilation))
	}
	x = b.conv("ctx_final", x, classes, 1, 1, 0)
	b.layer("prob", net.KindSoftmax, nil, x)
}

func memoryMLP(b *builder, batchSize int) {
	data := b.layer("data", net.KindMemoryData, &net.MemoryDataParameters{
		BatchSize: batchSize, Channels: 1, Height: 28, Width: 28,
	})
	target := b.layer("target", net.KindMemoryData, &net.MemoryDataParameters{
		BatchSize: batchSize, Channels: 10, Height: 1, Width: 1,
	})
	x := b.relu("relu1", b.fc("ip1", data, 256))
	x = b.layer("sigmoid2", net.KindSigmoid, nil, b.fc("ip2", x, 10))
	b.layer("loss", net.KindEuclideanLoss, nil, x, target)
}
