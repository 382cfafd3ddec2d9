package partitioner

import (
	"container/list"
	"fmt"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/util"
	"go.uber.org/zap"
)

// RecursiveBisection split the graph with global minimum cuts until every cell has at most maximumCellSize vertices.
type RecursiveBisection struct {
	originalGraph   *datastructure.WeightedGraph
	ids             *util.IDMap
	maximumCellSize int
	finalPartition  []int // map from vertex id to partition id
	partitionCount  int
	totalCutWeight  int64
	logger          *zap.Logger
}

func NewRecursiveBisection(graph *datastructure.WeightedGraph, ids *util.IDMap, maximumCellSize int,
	logger *zap.Logger) (*RecursiveBisection, error) {
	if maximumCellSize < 1 {
		return nil, fmt.Errorf("maximum cell size must be positive, got %d", maximumCellSize)
	}
	finalPartition := make([]int, graph.MaxVertexID())
	for i := range finalPartition {
		finalPartition[i] = pkg.INVALID_PARTITION_ID
	}
	return &RecursiveBisection{
		originalGraph:   graph,
		ids:             ids,
		maximumCellSize: maximumCellSize,
		finalPartition:  finalPartition,
		logger:          logger,
	}, nil
}

// PartitionAll partition every vertex of the graph.
func (rb *RecursiveBisection) PartitionAll() error {
	cell := make([]datastructure.Index, 0, rb.originalGraph.NumberOfVertices())
	rb.originalGraph.ForEachVertices(func(u datastructure.Index) {
		cell = append(cell, u)
	})
	return rb.Partition(cell)
}

// Partition partition the vertices of cell, vertices outside cell keep INVALID_PARTITION_ID.
func (rb *RecursiveBisection) Partition(cell []datastructure.Index) error {
	queue := list.New()
	queue.PushBack(cell)

	for queue.Len() > 0 {
		curCell := queue.Remove(queue.Front()).([]datastructure.Index)
		if len(curCell) == 0 {
			continue
		}

		if len(curCell) <= rb.maximumCellSize {
			rb.assignFinalPartition(curCell)
			continue
		}

		partOne, partTwo, err := rb.applyBisection(curCell)
		if err != nil {
			return err
		}
		queue.PushBack(partOne)
		queue.PushBack(partTwo)
	}

	rb.logger.Sugar().Infof("recursive bisection done, %d cells, total cut weight %d", rb.partitionCount, rb.totalCutWeight)
	return nil
}

// applyBisection minimum cut of the subgraph induced by cell, mapped back to original vertex ids.
func (rb *RecursiveBisection) applyBisection(cell []datastructure.Index) ([]datastructure.Index, []datastructure.Index, error) {
	sub := rb.originalGraph.InducedSubgraph(cell)
	sw, err := NewStoerWagner(sub, nil, rb.logger)
	if err != nil {
		return nil, nil, err
	}
	cut, err := sw.ComputeMinCut()
	if err != nil {
		return nil, nil, err
	}
	rb.totalCutWeight += cut.GetWeight()

	partOne := make([]datastructure.Index, 0)
	partTwo := make([]datastructure.Index, 0)
	for i, u := range cell {
		if cut.GetFlag(datastructure.Index(i)) {
			partOne = append(partOne, u)
		} else {
			partTwo = append(partTwo, u)
		}
	}
	return partOne, partTwo, nil
}

func (rb *RecursiveBisection) assignFinalPartition(cell []datastructure.Index) {
	rb.logger.Sugar().Debugf("created partition %d with %d vertices", rb.partitionCount, len(cell))
	for _, u := range cell {
		rb.finalPartition[u] = rb.partitionCount
	}
	rb.partitionCount++
}

func (rb *RecursiveBisection) GetFinalPartition() []int {
	return rb.finalPartition
}

func (rb *RecursiveBisection) GetNumberOfPartitions() int {
	return rb.partitionCount
}

// GetTotalCutWeight sum of the weights of every bisection cut, the weight of edges between different cells.
func (rb *RecursiveBisection) GetTotalCutWeight() int64 {
	return rb.totalCutWeight
}

// GetCells labels of every cell, indexed by partition id.
func (rb *RecursiveBisection) GetCells() [][]string {
	cells := make([][]string, rb.partitionCount)
	for u, cellId := range rb.finalPartition {
		if cellId == pkg.INVALID_PARTITION_ID {
			continue
		}
		cells[cellId] = append(cells[cellId], rb.label(datastructure.Index(u)))
	}
	return cells
}

func (rb *RecursiveBisection) label(u datastructure.Index) string {
	if rb.ids == nil {
		return fmt.Sprintf("%d", u)
	}
	return rb.ids.GetStr(int(u))
}
