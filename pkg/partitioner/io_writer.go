package partitioner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"go.uber.org/multierr"
)

type minCutJSON struct {
	Weight       int64                `json:"weight"`
	Sizes        [2]int               `json:"sizes"`
	Product      int                  `json:"product"`
	PartitionOne []string             `json:"partition_one"`
	PartitionTwo []string             `json:"partition_two"`
	CutEdges     []datastructure.Edge `json:"cut_edges"`
}

func WriteMinCutJSON(w io.Writer, minCut *MinCut) error {
	one, two := minCut.GetPartitionSizes()
	out := minCutJSON{
		Weight:       minCut.GetWeight(),
		Sizes:        [2]int{one, two},
		Product:      minCut.GetProduct(),
		PartitionOne: minCut.GetPartitionOne(),
		PartitionTwo: minCut.GetPartitionTwo(),
		CutEdges:     minCut.GetCutEdges(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func SaveMinCutToFile(filename string, minCut *MinCut) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return WriteMinCutJSON(f, minCut)
}

// WriteCellAssignment one "label cellId" line per vertex, cells in partition id order.
func (rb *RecursiveBisection) WriteCellAssignment(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for cellId, cell := range rb.GetCells() {
		for _, label := range cell {
			if _, err := fmt.Fprintf(bw, "%s %d\n", label, cellId); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func (rb *RecursiveBisection) SaveCellAssignmentToFile(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return rb.WriteCellAssignment(f)
}

/*
WriteMLP multilevel partition file:

	number of levels
	number of cells of each level, one per line
	number of vertices
	cell number of each vertex (see GetCellNumbers), one per line
*/
func (mp *MultilevelPartitioner) WriteMLP(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n", mp.l); err != nil {
		return err
	}
	for i := 0; i < mp.l; i++ {
		if _, err := fmt.Fprintf(bw, "%d\n", len(mp.overlayNodes[i])); err != nil {
			return err
		}
	}

	cellNumbers := mp.GetCellNumbers()
	if _, err := fmt.Fprintf(bw, "%d\n", mp.graph.NumberOfVertices()); err != nil {
		return err
	}
	var werr error
	mp.graph.ForEachVertices(func(u datastructure.Index) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "%d\n", cellNumbers[u])
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}

func (mp *MultilevelPartitioner) SaveMLPToFile(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return mp.WriteMLP(f)
}
