package graphparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrMalformedLine  = errors.New("malformed graph line")
	ErrUnknownFormat  = errors.New("unknown graph format")
	ErrCompressedOsm  = errors.New("openstreetmap pbf input can not be bzip2 compressed")
	ErrNoEdgesInGraph = errors.New("graph file has no edges")
)

// DetectFormat guess the graph format from the file name.
func DetectFormat(filename string) string {
	name := strings.TrimSuffix(filename, ".bz2")
	switch {
	case strings.HasSuffix(name, ".pbf"):
		return pkg.FORMAT_OSM
	case strings.HasSuffix(name, ".edges"), strings.HasSuffix(name, ".edgelist"):
		return pkg.FORMAT_EDGE_LIST
	default:
		return pkg.FORMAT_ADJACENCY
	}
}

// ReadGraphFile read the edges of filename. files ending with .bz2 are decompressed on the fly.
// an empty format is detected from the file name.
func ReadGraphFile(ctx context.Context, filename, format string, logger *zap.Logger) (edges []datastructure.Edge, err error) {
	if format == "" {
		format = DetectFormat(filename)
	}
	compressed := strings.HasSuffix(filename, ".bz2")

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	var r io.Reader = f
	if compressed {
		if format == pkg.FORMAT_OSM {
			return nil, ErrCompressedOsm
		}
		bz, berr := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if berr != nil {
			return nil, berr
		}
		defer multierr.AppendInvoke(&err, multierr.Close(bz))
		r = bz
	}

	switch format {
	case pkg.FORMAT_ADJACENCY:
		edges, err = ParseAdjacency(r)
	case pkg.FORMAT_EDGE_LIST:
		edges, err = ParseEdgeList(r)
	case pkg.FORMAT_OSM:
		edges, err = NewOSMParser(logger).Parse(ctx, f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("read %s: %w", filename, ErrNoEdgesInGraph)
	}

	logger.Sugar().Infof("read %d edges from %s (%s)", len(edges), filename, format)
	return edges, nil
}

// SaveEdgeListToFile write edges as an edge list, bzip2 compressed if filename ends with .bz2.
func SaveEdgeListToFile(filename string, edges []datastructure.Edge) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if !strings.HasSuffix(filename, ".bz2") {
		return WriteEdgeList(f, edges)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteEdgeList(bz, edges); err != nil {
		return multierr.Append(err, bz.Close())
	}
	return bz.Close()
}
