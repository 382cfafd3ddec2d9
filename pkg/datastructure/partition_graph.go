package datastructure

// MaxFlowEdge one arc of the flow network. every undirected edge {u,v} with weight w becomes
// the arc pair (u,v,w) and (v,u,w), the paired arc of edge id is id^1.
type MaxFlowEdge struct {
	id       int
	u        Index
	v        Index
	capacity int64
	flow     int64
}

func NewMaxFlowEdge(id int, u, v Index, capacity int64) *MaxFlowEdge {
	return &MaxFlowEdge{
		id:       id,
		u:        u,
		v:        v,
		capacity: capacity,
		flow:     0,
	}
}

func (e *MaxFlowEdge) GetID() int {
	return e.id
}

func (e *MaxFlowEdge) GetCapacity() int64 {
	return e.capacity
}

func (e *MaxFlowEdge) GetFlow() int64 {
	return e.flow
}

func (e *MaxFlowEdge) GetResidual() int64 {
	return e.capacity - e.flow
}

func (e *MaxFlowEdge) GetFrom() Index {
	return e.u
}

func (e *MaxFlowEdge) GetTo() Index {
	return e.v
}

func (e *MaxFlowEdge) AddFlow(f int64) {
	e.flow += f
}

// PartitionGraph flow network used to cross check minimum cuts with s-t max flows.
type PartitionGraph struct {
	adjacencyList [][]int
	edgeList      []*MaxFlowEdge
	level         []int
	last          []int
}

func NewPartitionGraph(numberOfVertices int) *PartitionGraph {
	adjacencyList := make([][]int, numberOfVertices)
	for i := range adjacencyList {
		adjacencyList[i] = make([]int, 0)
	}
	return &PartitionGraph{
		adjacencyList: adjacencyList,
		edgeList:      make([]*MaxFlowEdge, 0),
		level:         make([]int, numberOfVertices),
		last:          make([]int, numberOfVertices),
	}
}

// NewPartitionGraphFromWeighted build the flow network of g. vertex ids are kept, removed ids become isolated vertices.
func NewPartitionGraphFromWeighted(g *WeightedGraph) *PartitionGraph {
	pg := NewPartitionGraph(g.MaxVertexID())
	g.ForEachEdge(func(u, v Index, weight int64) {
		pg.AddEdge(u, v, weight)
	})
	return pg
}

func (g *PartitionGraph) NumberOfVertices() int {
	return len(g.adjacencyList)
}

func (g *PartitionGraph) NumberOfEdges() int {
	return len(g.edgeList) / 2
}

func (g *PartitionGraph) ResetGraph() {
	for _, edge := range g.edgeList {
		edge.flow = 0
	}
	for i := range g.level {
		g.level[i] = 0
		g.last[i] = 0
	}
}

func (g *PartitionGraph) GetVertexLevel(u Index) int {
	return g.level[u]
}

func (g *PartitionGraph) SetVertexLevel(u Index, level int) {
	g.level[u] = level
}

func (g *PartitionGraph) GetLastEdgeIndex(u Index) int {
	return g.last[u]
}

func (g *PartitionGraph) SetLastEdgeIndex(u Index, idx int) {
	g.last[u] = idx
}

func (g *PartitionGraph) IncrementLastEdgeIndex(u Index) {
	g.last[u]++
}

func (g *PartitionGraph) GetVertexEdgesSize(u Index) int {
	return len(g.adjacencyList[u])
}

func (g *PartitionGraph) GetEdgeOfVertex(u Index, idx int) *MaxFlowEdge {
	edgeIndex := g.adjacencyList[u][idx]
	return g.edgeList[edgeIndex]
}

func (g *PartitionGraph) GetReversedEdgeOfVertex(u Index, idx int) *MaxFlowEdge {
	edgeIndex := g.adjacencyList[u][idx] ^ 1
	return g.edgeList[edgeIndex]
}

func (g *PartitionGraph) ForEachVertexEdges(u Index, handle func(e *MaxFlowEdge)) {
	for _, edgeIdx := range g.adjacencyList[u] {
		handle(g.edgeList[edgeIdx])
	}
}

func (g *PartitionGraph) AddEdge(u, v Index, capacity int64) {
	if u == v {
		return
	}

	// undirected graph
	edge := NewMaxFlowEdge(len(g.edgeList), u, v, capacity)
	g.edgeList = append(g.edgeList, edge)
	g.adjacencyList[u] = append(g.adjacencyList[u], len(g.edgeList)-1)

	reverseEdge := NewMaxFlowEdge(len(g.edgeList), v, u, capacity)
	g.edgeList = append(g.edgeList, reverseEdge)
	g.adjacencyList[v] = append(g.adjacencyList[v], len(g.edgeList)-1)
}

func (pg *PartitionGraph) Clone() *PartitionGraph {
	newPg := NewPartitionGraph(pg.NumberOfVertices())

	copy(newPg.level, pg.level)
	copy(newPg.last, pg.last)

	for i, adj := range pg.adjacencyList {
		newAdj := make([]int, len(adj))
		copy(newAdj, adj)
		newPg.adjacencyList[i] = newAdj
	}
	for _, e := range pg.edgeList {
		newPg.edgeList = append(newPg.edgeList, NewMaxFlowEdge(e.id, e.u, e.v, e.capacity))
	}

	return newPg
}
