package graphparser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
)

/*
ParseAdjacency. one vertex per line followed by its neighbors, every listed pair is an edge of weight 1:

	jqt: rhn xhk nvd
	rsh: frs pzl lsr

blank lines are skipped.
*/
func ParseAdjacency(r io.Reader) ([]datastructure.Edge, error) {
	edges := make([]datastructure.Edge, 0)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		source, destinations, ok := strings.Cut(line, ":")
		source = strings.TrimSpace(source)
		if !ok || source == "" || strings.ContainsAny(source, " \t") {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNum, line)
		}

		neighbors := strings.Fields(destinations)
		if len(neighbors) == 0 {
			return nil, fmt.Errorf("%w: line %d: %q has no neighbors", ErrMalformedLine, lineNum, line)
		}
		for _, destination := range neighbors {
			edges = append(edges, datastructure.NewEdge(source, destination, 1))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

/*
ParseEdgeList. one edge per line, weight defaults to 1:

	a b 3
	b c

lines starting with # are comments.
*/
func ParseEdgeList(r io.Reader) ([]datastructure.Edge, error) {
	edges := make([]datastructure.Edge, 0)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNum, line)
		}

		weight := uint64(1)
		if len(parts) == 3 {
			var err error
			weight, err = strconv.ParseUint(parts[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q: %v", ErrMalformedLine, lineNum, parts[2], err)
			}
		}
		edges = append(edges, datastructure.NewEdge(parts[0], parts[1], uint32(weight)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// WriteEdgeList write edges in the format read by ParseEdgeList.
func WriteEdgeList(w io.Writer, edges []datastructure.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}
