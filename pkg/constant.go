package pkg

const (
	INVALID_PARTITION_ID = -1
	INVALID_LEVEL        = -1
	MAX_FLOW             = int64(1) << 62

	// default number of workers used by the max-flow verifier
	DEFAULT_VERIFIER_WORKERS = 4
)

// input graph formats understood by graphparser.ReadGraphFile
const (
	FORMAT_ADJACENCY = "adjacency"
	FORMAT_EDGE_LIST = "edgelist"
	FORMAT_OSM       = "osm"
)
