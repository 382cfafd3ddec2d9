package partitioner

import (
	"sort"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
)

type MinCut struct {
	flags        []bool               // true if the vertex is on the side of t of the winning phase (partition one), else partition two
	phaseIndex   int                  // index of the winning phase
	weight       int64                // total weight of the crossing edges
	partitionOne []string             // labels, sorted
	partitionTwo []string             // labels, sorted
	cutEdges     []datastructure.Edge // crossing edges of the original graph, sorted
}

func NewMinCut(flags []bool, phaseIndex int) *MinCut {
	return &MinCut{
		flags:        flags,
		phaseIndex:   phaseIndex,
		partitionOne: make([]string, 0),
		partitionTwo: make([]string, 0),
		cutEdges:     make([]datastructure.Edge, 0),
	}
}

func (mc *MinCut) GetFlag(u datastructure.Index) bool {
	return int(u) < len(mc.flags) && mc.flags[u]
}

func (mc *MinCut) GetWeight() int64 {
	return mc.weight
}

func (mc *MinCut) GetPhaseIndex() int {
	return mc.phaseIndex
}

func (mc *MinCut) GetPartitionSizes() (int, int) {
	return len(mc.partitionOne), len(mc.partitionTwo)
}

// GetProduct product of both partition sizes.
func (mc *MinCut) GetProduct() int {
	return len(mc.partitionOne) * len(mc.partitionTwo)
}

func (mc *MinCut) GetPartitionOne() []string {
	return mc.partitionOne
}

func (mc *MinCut) GetPartitionTwo() []string {
	return mc.partitionTwo
}

func (mc *MinCut) GetCutEdges() []datastructure.Edge {
	return mc.cutEdges
}

func (mc *MinCut) GetNumberOfMinCutEdges() int {
	return len(mc.cutEdges)
}

func (mc *MinCut) sortLabels() {
	sort.Strings(mc.partitionOne)
	sort.Strings(mc.partitionTwo)
	sort.Slice(mc.cutEdges, func(i, j int) bool {
		if mc.cutEdges[i].From != mc.cutEdges[j].From {
			return mc.cutEdges[i].From < mc.cutEdges[j].From
		}
		return mc.cutEdges[i].To < mc.cutEdges[j].To
	})
}
