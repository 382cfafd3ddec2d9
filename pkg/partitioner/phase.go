package partitioner

import (
	"fmt"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
)

// MinimumCutPhase result of one maximum adjacency ordering.
// t is the last ordered vertex, s the one before it, w the weight of the cut that isolates t.
type MinimumCutPhase struct {
	s datastructure.Index
	t datastructure.Index
	w int64
}

func NewMinimumCutPhase(s, t datastructure.Index, w int64) MinimumCutPhase {
	return MinimumCutPhase{s: s, t: t, w: w}
}

func (p MinimumCutPhase) GetS() datastructure.Index {
	return p.s
}

func (p MinimumCutPhase) GetT() datastructure.Index {
	return p.t
}

func (p MinimumCutPhase) GetWeight() int64 {
	return p.w
}

func (p MinimumCutPhase) String() string {
	return fmt.Sprintf("(s=%d, t=%d, w=%d)", p.s, p.t, p.w)
}

/*
minimumCutPhase. order the live vertices of graph by maximum adjacency: start with every vertex at priority 0,
repeatedly extract the vertex most tightly connected to the already ordered set and add the weight of its
edges to the priority of its neighbors still in the queue.

A Simple Min-Cut Algorithm, Stoer & Wagner.
the cut of the phase ({t}, V - {t}) has weight w(t), the priority t had when it was extracted.
equal priorities are extracted smallest vertex id first.
*/
func minimumCutPhase(graph *datastructure.WeightedGraph) (MinimumCutPhase, error) {
	if graph.NumberOfVertices() < 2 {
		return MinimumCutPhase{}, fmt.Errorf("%w: %d vertices", ErrMalformedGraph, graph.NumberOfVertices())
	}

	pq := datastructure.NewMaxHeap[datastructure.Index]()
	graph.ForEachVertices(func(u datastructure.Index) {
		pq.Insert(datastructure.NewPriorityQueueNode(0, u))
	})

	var (
		s, t datastructure.Index
		w    int64
	)
	for pq.Size() > 0 {
		node, err := pq.ExtractMax()
		if err != nil {
			return MinimumCutPhase{}, err
		}
		s, t, w = t, node.GetItem(), node.GetRank()

		neighbors, err := graph.Neighbors(t)
		if err != nil {
			return MinimumCutPhase{}, err
		}
		for v, weight := range neighbors {
			if !pq.Contains(v) {
				continue
			}
			if err := pq.IncreaseKey(v, weight); err != nil {
				return MinimumCutPhase{}, err
			}
		}
	}

	return NewMinimumCutPhase(s, t, w), nil
}

// selectMinimumPhase index of the first phase with the lightest cut of the phase.
func selectMinimumPhase(phases []MinimumCutPhase) (int, error) {
	if len(phases) == 0 {
		return -1, ErrEmptyPhaseHistory
	}
	best := 0
	for i := 1; i < len(phases); i++ {
		if phases[i].w < phases[best].w {
			best = i
		}
	}
	return best, nil
}
