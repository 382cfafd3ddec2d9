package partitioner

import (
	"fmt"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/util"
	"go.uber.org/zap"
)

type MultilevelPartitioner struct {
	u            []int                     // max cell size for each level, level 0 has the smallest cells.
	l            int                       // number of levels
	overlayNodes [][][]datastructure.Index // vertices of each cell in each level
	graph        *datastructure.WeightedGraph
	ids          *util.IDMap
	logger       *zap.Logger
}

func NewMultilevelPartitioner(u []int, graph *datastructure.WeightedGraph, ids *util.IDMap,
	logger *zap.Logger) (*MultilevelPartitioner, error) {
	if len(u) == 0 {
		return nil, fmt.Errorf("at least one cell level is required")
	}
	for level := 1; level < len(u); level++ {
		if u[level] < u[level-1] {
			return nil, fmt.Errorf("cell size of level %d (%d) is smaller than level %d (%d)", level, u[level], level-1, u[level-1])
		}
	}
	return &MultilevelPartitioner{
		u:            u,
		l:            len(u),
		overlayNodes: make([][][]datastructure.Index, len(u)),
		graph:        graph,
		ids:          ids,
		logger:       logger,
	}, nil
}

/*
RunMultilevelPartitioning. run L-level partitioning with U0 <= ... <= UL-1 maximum cell sizes in top-down
fashion: the top level cells are obtained by recursive bisection of the whole graph with UL-1, cells in lower
levels by recursive bisection of the individual cells of the level immediately above. every cell of level i
is fully contained in one cell of level i+1.
*/
func (mp *MultilevelPartitioner) RunMultilevelPartitioning() error {
	top := mp.l - 1
	mp.logger.Sugar().Infof("partitioning level %d with max cell size %d", top, mp.u[top])

	rb, err := NewRecursiveBisection(mp.graph, mp.ids, mp.u[top], mp.logger)
	if err != nil {
		return err
	}
	if err := rb.PartitionAll(); err != nil {
		return err
	}
	mp.overlayNodes[top] = mp.groupEachPartition(rb.GetFinalPartition())
	mp.logger.Sugar().Infof("level %d done, total cells: %d", top, len(mp.overlayNodes[top]))

	// next partition each cell in previous level
	for level := mp.l - 2; level >= 0; level-- {
		mp.logger.Sugar().Infof("partitioning level %d with max cell size %d", level, mp.u[level])
		for cellId, cell := range mp.overlayNodes[level+1] {
			rb, err := NewRecursiveBisection(mp.graph, mp.ids, mp.u[level], mp.logger)
			if err != nil {
				return err
			}
			if err := rb.Partition(cell); err != nil {
				return fmt.Errorf("level %d, cell %d: %w", level, cellId, err)
			}

			partitions := mp.groupEachPartition(rb.GetFinalPartition())
			mp.logger.Sugar().Debugf("level %d, cellId %d done, total cells: %d", level, cellId, len(partitions))
			mp.overlayNodes[level] = append(mp.overlayNodes[level], partitions...)
		}
		mp.logger.Sugar().Infof("level %d total cells: %d", level, len(mp.overlayNodes[level]))
	}
	return nil
}

func (mp *MultilevelPartitioner) groupEachPartition(partition []int) [][]datastructure.Index {
	cells := make([][]datastructure.Index, 0)
	for nodeId, cellId := range partition {
		if cellId == pkg.INVALID_PARTITION_ID {
			continue
		}

		for len(cells) <= cellId {
			cells = append(cells, make([]datastructure.Index, 0))
		}
		cells[cellId] = append(cells[cellId], datastructure.Index(nodeId))
	}
	return cells
}

func (mp *MultilevelPartitioner) GetNumberOfLevels() int {
	return mp.l
}

// GetCells vertex ids of every cell of level.
func (mp *MultilevelPartitioner) GetCells(level int) [][]datastructure.Index {
	return mp.overlayNodes[level]
}

// GetCellNumbers per vertex, the cell id of every level bitpacked into one integer.
// level 0 occupies the rightmost bits, level l-1 the leftmost.
func (mp *MultilevelPartitioner) GetCellNumbers() []uint64 {
	pvOffset := make([]int, mp.l+1)
	for i := 0; i < mp.l; i++ {
		pvOffset[i+1] = pvOffset[i] + bitsFor(len(mp.overlayNodes[i]))
	}

	cellNumbers := make([]uint64, mp.graph.MaxVertexID())
	for l := 0; l < mp.l; l++ {
		for cellId, vertexIds := range mp.overlayNodes[l] {
			for _, vertexId := range vertexIds {
				cellNumbers[vertexId] |= uint64(cellId) << uint64(pvOffset[l])
			}
		}
	}
	return cellNumbers
}

// bitsFor number of bits needed to represent ids 0..n-1.
func bitsFor(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}
