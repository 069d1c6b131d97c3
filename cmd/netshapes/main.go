// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// netshapes builds one of the reference networks, infers the output shape of every layer and prints them
// in a table.
//
// Usage:
//
//	netshapes -net=GoogLeNetStem -batch=32
//	netshapes -list
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/netshapes/internal/zoo"
	"github.com/gomlx/netshapes/pkg/net"
	"github.com/gomlx/netshapes/pkg/shapeinference"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagNet   = flag.String("net", "LeNet", "Name of the network to build. See -list for the available networks.")
	flagList  = flag.Bool("list", false, "List the available networks and exit.")
	flagBatch = flag.Int("batch", 0, "Batch size of the network inputs. If <= 0 the network's default is used.")
	flagStrict = flag.Bool("strict", false, "Fail on concatenations whose inputs differ on axes other than the "+
		"concatenation axis.")
	flagParallel = flag.Int("parallel", 0, "Number of nodes to evaluate concurrently. 0 or 1 evaluates sequentially.")
	flagDType    = flag.String("dtype", "Float32", "Data type of the tensors, used to report the memory of each output.")
	flagPlain    = flag.Bool("plain", false, "Disable colors in the output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if *flagList {
		fmt.Println(strings.Join(zoo.Names(), "\n"))
		return
	}
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'netshapes -help'.", flag.Args())
		os.Exit(1)
	}
	dtype := must.M1(dtypes.DTypeString(*flagDType))

	g, err := zoo.Build(*flagNet, *flagBatch)
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
	inferrer := shapeinference.New(
		shapeinference.WithStrictConcat(*flagStrict),
		shapeinference.WithParallelism(*flagParallel))
	err = inferrer.InferGraphParallel(context.Background(), g)
	report(g, dtype, err)
	if err != nil {
		klog.Errorf("Shape inference of %q failed: %v", *flagNet, err)
		os.Exit(1)
	}
}

// report prints the table of layers and the summary. If inference failed, the failed node is highlighted.
func report(g *net.Graph, dtype dtypes.DType, inferErr error) {
	var failed *net.Node
	var nodeErr *shapeinference.NodeError
	if errors.As(inferErr, &nodeErr) {
		failed = nodeErr.Node
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Network %s", *flagNet)))
	table := newPlainTableWithReds(true, lipgloss.Right, lipgloss.Left, lipgloss.Left, lipgloss.Left,
		lipgloss.Left, lipgloss.Right, lipgloss.Right)
	table.Table.Headers("#", "Node", "Kind", "Rule", "Parents", "Shape", "Elements", "Bytes")

	// Layers are listed in the order they were evaluated.
	order := must.M1(g.TopologicalOrder())
	var numElements, totalMemory uint64
	for ii, node := range order {
		parents := make([]string, node.NumParents())
		for jj := range parents {
			parents[jj] = node.Parent(jj).Name()
		}
		row := []string{
			fmt.Sprintf("%d", ii),
			node.Name(),
			node.Kind().String(),
			shapeinference.RuleFor(node.Kind()).String(),
			strings.Join(parents, ", "),
		}
		shape, found := node.OutputShape()
		switch {
		case found:
			size := uint64(shape.Size())
			memory := size * uint64(dtype.Memory())
			numElements += size
			totalMemory += memory
			row = append(row, shape.String(), humanize.Comma(int64(size)), humanize.Bytes(memory))
		case node == failed:
			row = append(row, "failed", "-", "-")
		default:
			row = append(row, "-", "-", "-")
		}
		table.Row(node == failed, row...)
	}
	fmt.Println(table.Table.Render())

	fmt.Println(titleStyle.Render("Summary"))
	summary := newPlainTable(false, lipgloss.Right, lipgloss.Left)
	summary.Row("network", *flagNet)
	summary.Row("# layers", humanize.Comma(int64(g.NumNodes())))
	summary.Row("# outputs", fmt.Sprintf("%d", len(g.Outputs())))
	summary.Row("dtype", dtype.String())
	summary.Row("# elements", humanize.Comma(int64(numElements)))
	summary.Row("# bytes", humanize.Bytes(totalMemory))
	if inferErr != nil {
		summary.Row("error", inferErr.Error())
	}
	fmt.Println(summary.Render())
}
