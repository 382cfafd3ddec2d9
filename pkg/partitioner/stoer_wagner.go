package partitioner

import (
	"container/list"
	"errors"
	"fmt"
	"strconv"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrMalformedGraph     = errors.New("minimum cut needs at least 2 vertices")
	ErrEmptyPhaseHistory  = errors.New("no minimum cut phase was executed")
	ErrInconsistentCut    = errors.New("crossing edge weight differs from the cut of the phase")
	ErrVerificationFailed = errors.New("max flow verification failed")
)

type driverState uint8

const (
	RUNNING driverState = iota
	DONE
)

// StoerWagner global minimum cut of a weighted undirected graph.
// [A Simple Min-Cut Algorithm, Stoer & Wagner] https://dl.acm.org/doi/10.1145/263867.263872
type StoerWagner struct {
	original *datastructure.WeightedGraph // never mutated
	graph    *datastructure.WeightedGraph // contracted in place, one vertex less after every phase
	ids      *util.IDMap                  // labels of original vertices, nil means the vertex id is the label
	phases   []MinimumCutPhase
	state    driverState
	minCut   *MinCut
	logger   *zap.Logger
}

func NewStoerWagner(graph *datastructure.WeightedGraph, ids *util.IDMap, logger *zap.Logger) (*StoerWagner, error) {
	if graph.NumberOfVertices() < 2 {
		return nil, fmt.Errorf("%w: %d vertices", ErrMalformedGraph, graph.NumberOfVertices())
	}
	return &StoerWagner{
		original: graph,
		graph:    graph.Clone(),
		ids:      ids,
		phases:   make([]MinimumCutPhase, 0, graph.NumberOfVertices()-1),
		state:    RUNNING,
		logger:   logger,
	}, nil
}

func NewStoerWagnerFromEdges(edges []datastructure.Edge, logger *zap.Logger) (*StoerWagner, error) {
	graph, ids := datastructure.BuildWeightedGraph(edges)
	return NewStoerWagner(graph, ids, logger)
}

// runPhases run minimum cut phases until a single vertex is left. every phase contracts t into s.
func (sw *StoerWagner) runPhases() error {
	for sw.state == RUNNING {
		if sw.graph.NumberOfVertices() <= 1 {
			sw.state = DONE
			break
		}

		phase, err := minimumCutPhase(sw.graph)
		if err != nil {
			return err
		}
		sw.phases = append(sw.phases, phase)

		if err := sw.contract(phase); err != nil {
			return fmt.Errorf("contract phase %d %s: %w", len(sw.phases)-1, phase, err)
		}
		if ce := sw.logger.Check(zap.DebugLevel, "minimum cut phase"); ce != nil {
			ce.Write(zap.Int("phase", len(sw.phases)-1), zap.Uint32("s", uint32(phase.s)),
				zap.Uint32("t", uint32(phase.t)), zap.Int64("w", phase.w),
				zap.Int("remaining", sw.graph.NumberOfVertices()))
		}
	}
	return nil
}

// contract merge t into s. edges of t are added to the edges of s, edge {s,t} disappears.
func (sw *StoerWagner) contract(phase MinimumCutPhase) error {
	neighbors, err := sw.graph.Neighbors(phase.t)
	if err != nil {
		return err
	}
	for n, w := range neighbors {
		if n == phase.s {
			continue
		}
		sw.graph.UpdateEdge(phase.s, n, w)
	}
	return sw.graph.Remove(phase.t)
}

// ComputeMinCut run all phases and rebuild the partition of the lightest cut of the phase.
func (sw *StoerWagner) ComputeMinCut() (*MinCut, error) {
	if sw.minCut != nil {
		return sw.minCut, nil
	}

	if err := sw.runPhases(); err != nil {
		return nil, err
	}

	winner, err := selectMinimumPhase(sw.phases)
	if err != nil {
		return nil, err
	}

	flags := reconstructPartition(sw.phases, winner, sw.original.MaxVertexID())
	minCut := sw.makeMinCut(flags, winner)

	if minCut.GetWeight() != sw.phases[winner].w {
		return nil, fmt.Errorf("%w: phase %d has weight %d, crossing edges weigh %d", ErrInconsistentCut,
			winner, sw.phases[winner].w, minCut.GetWeight())
	}

	one, two := minCut.GetPartitionSizes()
	sw.logger.Sugar().Debugf("minimum cut weight %d found at phase %d of %d, partition sizes %d and %d",
		minCut.GetWeight(), winner, len(sw.phases), one, two)

	sw.minCut = minCut
	return minCut, nil
}

func (sw *StoerWagner) makeMinCut(flags []bool, winner int) *MinCut {
	minCut := NewMinCut(flags, winner)

	sw.original.ForEachVertices(func(u datastructure.Index) {
		if minCut.GetFlag(u) {
			minCut.partitionOne = append(minCut.partitionOne, sw.label(u))
		} else {
			minCut.partitionTwo = append(minCut.partitionTwo, sw.label(u))
		}
	})

	sw.original.ForEachEdge(func(u, v datastructure.Index, weight int64) {
		if minCut.GetFlag(u) == minCut.GetFlag(v) {
			return
		}
		minCut.weight += weight
		from, to := sw.label(u), sw.label(v)
		if to < from {
			from, to = to, from
		}
		minCut.cutEdges = append(minCut.cutEdges, datastructure.NewEdge(from, to, uint32(weight)))
	})

	minCut.sortLabels()
	return minCut
}

func (sw *StoerWagner) label(u datastructure.Index) string {
	if sw.ids == nil {
		return strconv.Itoa(int(u))
	}
	return sw.ids.GetStr(int(u))
}

// GetPhases phases executed so far, in execution order.
func (sw *StoerWagner) GetPhases() []MinimumCutPhase {
	return sw.phases
}

func (sw *StoerWagner) IsDone() bool {
	return sw.state == DONE
}

/*
reconstructPartition. the vertices merged into t before the winning phase are exactly the vertices
connected to t by the (s,t) pairs of the earlier phases, every contraction keeps the label of s.
replay those pairs into an empty graph and collect everything reachable from t with bfs.

returns flags indexed by original vertex id, true for the side of t.
*/
func reconstructPartition(phases []MinimumCutPhase, winner int, numberOfVertices int) []bool {
	rebuilt := datastructure.NewWeightedGraph(winner + 1)
	for _, phase := range phases[:winner] {
		rebuilt.AddEdge(phase.s, phase.t, phase.w)
	}
	source := phases[winner].t
	rebuilt.AddVertex(source)

	flags := make([]bool, numberOfVertices)
	flags[source] = true

	queue := list.New()
	queue.PushBack(source)
	for queue.Len() > 0 {
		u := queue.Remove(queue.Front()).(datastructure.Index)
		// u is always in rebuilt
		neighbors, _ := rebuilt.Neighbors(u)
		for v := range neighbors {
			if flags[v] {
				continue
			}
			flags[v] = true
			queue.PushBack(v)
		}
	}
	return flags
}
