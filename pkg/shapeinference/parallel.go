// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeinference

import (
	"context"

	"github.com/gomlx/netshapes/pkg/net"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// InferGraphParallel evaluates all the nodes of the graph like InferGraph, but independent branches of the
// graph are evaluated concurrently, with at most WithParallelism nodes at a time.
//
// Each node waits for all its parents before applying its rule. On the first failure ctx is cancelled,
// nodes not yet started are skipped and that failure is returned.
func (inf *Inferrer) InferGraphParallel(ctx context.Context, g *net.Graph) error {
	if inf.parallelism <= 1 {
		return inf.InferGraph(g)
	}
	order, err := g.TopologicalOrder()
	if err != nil {
		return err
	}

	// done[node] is closed once node has its output shape. It is never closed for failed nodes.
	done := make(map[*net.Node]chan struct{}, len(order))
	for _, node := range order {
		done[node] = make(chan struct{})
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(inf.parallelism)
	for _, node := range order {
		if egCtx.Err() != nil {
			break
		}
		// Nodes are started in topological order, so the parents a node waits on have
		// all been started before it: waiting can't deadlock on the limit.
		eg.Go(func() error {
			for _, parent := range node.Parents() {
				select {
				case <-done[parent]:
				case <-egCtx.Done():
					return egCtx.Err()
				}
			}
			if err := egCtx.Err(); err != nil {
				return err
			}
			if _, err := inf.Infer(node); err != nil {
				return err
			}
			if klog.V(2).Enabled() {
				klog.Infof("shapeinference: parallel evaluation of %s finished", node)
			}
			close(done[node])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	// A cancellation of ctx before any node failed.
	return ctx.Err()
}
