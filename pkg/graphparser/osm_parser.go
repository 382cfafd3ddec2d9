package graphparser

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type NodeType int

const (
	END_NODE NodeType = iota
	BETWEEN_NODE
	JUNCTION_NODE
)

var (
	// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
	acceptedHighway = map[string]struct{}{
		"motorway":         {},
		"motorway_link":    {},
		"trunk":            {},
		"trunk_link":       {},
		"primary":          {},
		"primary_link":     {},
		"secondary":        {},
		"secondary_link":   {},
		"residential":      {},
		"residential_link": {},
		"service":          {},
		"tertiary":         {},
		"tertiary_link":    {},
		"road":             {},
		"unclassified":     {},
		"living_street":    {},
		"motorroad":        {},
	}
)

// OsmParser road network of an openstreetmap pbf file. chains of way nodes between junctions are
// contracted, every road segment between two junction/end nodes becomes one edge of weight 1.
type OsmParser struct {
	wayNodeMap map[osm.NodeID]NodeType
	logger     *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		wayNodeMap: make(map[osm.NodeID]NodeType),
		logger:     logger,
	}
}

func acceptOsmWay(way *osm.Way) bool {
	if len(way.Nodes) < 2 {
		return false
	}
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		_, ok := acceptedHighway[highway]
		return ok
	}
	return junction != ""
}

func (p *OsmParser) scanWays(ctx context.Context, r io.Reader, handle func(way *osm.Way)) (err error) {
	scanner := osmpbf.New(ctx, r, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	defer func() {
		if cerr := scanner.Close(); err == nil {
			err = cerr
		}
	}()

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !acceptOsmWay(way) {
			continue
		}
		handle(way)
	}
	return scanner.Err()
}

// Parse read r twice: first pass classifies way nodes, second pass emits the road segments.
// parallel segments between the same pair of junctions are merged by summing weights.
func (p *OsmParser) Parse(ctx context.Context, r io.ReadSeeker) ([]datastructure.Edge, error) {
	countWays := 0
	err := p.scanWays(ctx, r, func(way *osm.Way) {
		countWays++
		if countWays%50000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays)
		}
		for i, node := range way.Nodes {
			if _, ok := p.wayNodeMap[node.ID]; !ok {
				if i == 0 || i == len(way.Nodes)-1 {
					p.wayNodeMap[node.ID] = END_NODE
				} else {
					p.wayNodeMap[node.ID] = BETWEEN_NODE
				}
			} else {
				p.wayNodeMap[node.ID] = JUNCTION_NODE
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scan openstreetmap ways: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	type pair struct {
		u, v osm.NodeID
	}
	edgeIndex := make(map[pair]int)
	edges := make([]datastructure.Edge, 0)

	addSegment := func(u, v osm.NodeID) {
		if u == v {
			return
		}
		if v < u {
			u, v = v, u
		}
		key := pair{u, v}
		if idx, ok := edgeIndex[key]; ok {
			edges[idx].Weight++
			return
		}
		edgeIndex[key] = len(edges)
		edges = append(edges, datastructure.NewEdge(nodeLabel(u), nodeLabel(v), 1))
	}

	err = p.scanWays(ctx, r, func(way *osm.Way) {
		start := way.Nodes[0].ID
		for i := 1; i < len(way.Nodes); i++ {
			id := way.Nodes[i].ID
			if i != len(way.Nodes)-1 && p.wayNodeMap[id] == BETWEEN_NODE {
				continue
			}
			addSegment(start, id)
			start = id
		}
	})
	if err != nil {
		return nil, fmt.Errorf("process openstreetmap ways: %w", err)
	}

	p.logger.Sugar().Infof("openstreetmap road graph: %d ways, %d segments", countWays, len(edges))
	return edges, nil
}

func nodeLabel(id osm.NodeID) string {
	return strconv.FormatInt(int64(id), 10)
}
