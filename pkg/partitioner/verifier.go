package partitioner

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/concurrent"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"go.uber.org/zap"
)

// MinCutVerifier cross checks a minimum cut with max flows. fix any vertex v0, every cut separates v0 from some v,
// so the global minimum cut weight is min over v != v0 of maxflow(v0, v).
type MinCutVerifier struct {
	numWorkers int
	logger     *zap.Logger
}

type maxFlowResult struct {
	sink datastructure.Index
	flow int64
}

func NewMinCutVerifier(numWorkers int, logger *zap.Logger) *MinCutVerifier {
	if numWorkers < 1 {
		numWorkers = pkg.DEFAULT_VERIFIER_WORKERS
	}
	return &MinCutVerifier{numWorkers: numWorkers, logger: logger}
}

// GlobalMinCutWeight n-1 independent max flow computations, fanned out on a worker pool.
// each job runs Dinic on its own copy of the flow network.
func (v *MinCutVerifier) GlobalMinCutWeight(ctx context.Context, graph *datastructure.WeightedGraph) (int64, error) {
	if graph.NumberOfVertices() < 2 {
		return 0, fmt.Errorf("%w: %d vertices", ErrMalformedGraph, graph.NumberOfVertices())
	}

	network := datastructure.NewPartitionGraphFromWeighted(graph)
	vertices := make([]datastructure.Index, 0, graph.NumberOfVertices())
	graph.ForEachVertices(func(u datastructure.Index) {
		vertices = append(vertices, u)
	})
	source := vertices[0]
	sinks := vertices[1:]

	wp := concurrent.NewWorkerPool[datastructure.Index, maxFlowResult](v.numWorkers, len(sinks))
	wp.Start(ctx, func(ctx context.Context, sink datastructure.Index) maxFlowResult {
		dmf := NewDinicMaxFlow(network.Clone())
		return maxFlowResult{sink: sink, flow: dmf.ComputeMaxFlow(source, sink)}
	})

	go func() {
		defer wp.Close()
		for _, sink := range sinks {
			if err := wp.AddJob(ctx, sink); err != nil {
				return
			}
		}
	}()
	go wp.Wait()

	best := pkg.MAX_FLOW
	computed := 0
	for res := range wp.CollectResults() {
		computed++
		if res.flow < best {
			best = res.flow
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if computed != len(sinks) {
		return 0, fmt.Errorf("%w: %d of %d max flows computed", ErrVerificationFailed, computed, len(sinks))
	}

	v.logger.Sugar().Debugf("verified %d max flows from vertex %d, minimum %d", computed, source, best)
	return best, nil
}

// Verify compare the weight of minCut with the max flow bound of graph.
func (v *MinCutVerifier) Verify(ctx context.Context, graph *datastructure.WeightedGraph, minCut *MinCut) error {
	weight, err := v.GlobalMinCutWeight(ctx, graph)
	if err != nil {
		return err
	}
	if weight != minCut.GetWeight() {
		return fmt.Errorf("%w: minimum cut weight %d, max flow bound %d", ErrVerificationFailed,
			minCut.GetWeight(), weight)
	}
	return nil
}
