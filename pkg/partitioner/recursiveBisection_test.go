package partitioner

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecursiveBisectionTwoClusters(t *testing.T) {
	g, ids := datastructure.BuildWeightedGraph(twoClusters())

	rb, err := NewRecursiveBisection(g, ids, 3, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, rb.PartitionAll())

	assert.Equal(t, 2, rb.GetNumberOfPartitions())
	assert.Equal(t, int64(1), rb.GetTotalCutWeight())

	cells := rb.GetCells()
	assert.ElementsMatch(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, cells)

	var buf bytes.Buffer
	require.NoError(t, rb.WriteCellAssignment(&buf))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 6)
}

func TestRecursiveBisectionSingletons(t *testing.T) {
	g, ids := datastructure.BuildWeightedGraph(twoClusters())

	rb, err := NewRecursiveBisection(g, ids, 1, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, rb.PartitionAll())

	assert.Equal(t, 6, rb.GetNumberOfPartitions())
	// every edge ends up between two cells
	assert.Equal(t, g.TotalWeight(), rb.GetTotalCutWeight())
	for _, cellId := range rb.GetFinalPartition() {
		assert.NotEqual(t, pkg.INVALID_PARTITION_ID, cellId)
	}
}

func TestRecursiveBisectionCellOnly(t *testing.T) {
	g, ids := datastructure.BuildWeightedGraph(twoClusters())

	rb, err := NewRecursiveBisection(g, ids, 2, zap.NewNop())
	require.NoError(t, err)

	a, _ := ids.Lookup("a")
	b, _ := ids.Lookup("b")
	c, _ := ids.Lookup("c")
	require.NoError(t, rb.Partition([]datastructure.Index{datastructure.Index(a), datastructure.Index(b), datastructure.Index(c)}))

	assert.Equal(t, 2, rb.GetNumberOfPartitions())
	d, _ := ids.Lookup("d")
	assert.Equal(t, pkg.INVALID_PARTITION_ID, rb.GetFinalPartition()[d])
}

func TestNewRecursiveBisectionInvalidSize(t *testing.T) {
	g, ids := datastructure.BuildWeightedGraph(twoClusters())
	_, err := NewRecursiveBisection(g, ids, 0, zap.NewNop())
	assert.Error(t, err)
}

func TestMultilevelPartitioner(t *testing.T) {
	g, ids := datastructure.BuildWeightedGraph(twoClusters())

	mp, err := NewMultilevelPartitioner([]int{1, 3}, g, ids, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, mp.RunMultilevelPartitioning())

	assert.Equal(t, 2, mp.GetNumberOfLevels())
	assert.Len(t, mp.GetCells(1), 2)
	assert.Len(t, mp.GetCells(0), 6)

	// level 0 needs 3 bits for 6 cells, the level 1 cell id sits above them
	cellNumbers := mp.GetCellNumbers()
	for topCell, cell := range mp.GetCells(1) {
		for _, u := range cell {
			assert.Equal(t, uint64(topCell), cellNumbers[u]>>3)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, mp.WriteMLP(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+2+1+6)
	assert.Equal(t, []string{"2", "6", "2", "6"}, lines[:4])
}

func TestNewMultilevelPartitionerInvalid(t *testing.T) {
	g, ids := datastructure.BuildWeightedGraph(twoClusters())

	_, err := NewMultilevelPartitioner(nil, g, ids, zap.NewNop())
	assert.Error(t, err)
	_, err = NewMultilevelPartitioner([]int{4, 2}, g, ids, zap.NewNop())
	assert.Error(t, err)
}

func TestSaveMinCutToFile(t *testing.T) {
	sw, err := NewStoerWagnerFromEdges(twoClusters(), zap.NewNop())
	require.NoError(t, err)
	cut, err := sw.ComputeMinCut()
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "cut.json")
	require.NoError(t, SaveMinCutToFile(filename, cut))

	buf, err := os.ReadFile(filename)
	require.NoError(t, err)

	var got minCutJSON
	require.NoError(t, json.Unmarshal(buf, &got))
	assert.Equal(t, int64(1), got.Weight)
	assert.Equal(t, [2]int{3, 3}, got.Sizes)
	assert.Equal(t, 9, got.Product)
	assert.Equal(t, []datastructure.Edge{datastructure.NewEdge("c", "d", 1)}, got.CutEdges)
}

func TestBitsFor(t *testing.T) {
	assert.Equal(t, 0, bitsFor(1))
	assert.Equal(t, 1, bitsFor(2))
	assert.Equal(t, 3, bitsFor(6))
	assert.Equal(t, 3, bitsFor(8))
	assert.Equal(t, 4, bitsFor(9))
}
