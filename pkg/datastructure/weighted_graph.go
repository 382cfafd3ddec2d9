package datastructure

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/util"
)

type Index uint32

var ErrMissingVertex = errors.New("vertex not in graph")

// Edge is an undirected edge between two labelled vertices, the unit produced by graph parsers.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight uint32 `json:"weight"`
}

func NewEdge(from, to string, weight uint32) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// WeightedGraph undirected weighted graph over dense vertex ids.
// adjacency[u][v] == adjacency[v][u] for every live pair, at most one entry per pair.
type WeightedGraph struct {
	adjacency        []map[Index]int64
	alive            []bool
	numberOfVertices int
}

func NewWeightedGraph(capacity int) *WeightedGraph {
	return &WeightedGraph{
		adjacency: make([]map[Index]int64, 0, capacity),
		alive:     make([]bool, 0, capacity),
	}
}

// BuildWeightedGraph interns edge labels in first-appearance order and builds the graph.
// a pair listed twice keeps the last weight.
func BuildWeightedGraph(edges []Edge) (*WeightedGraph, *util.IDMap) {
	ids := util.NewIdMap()
	g := NewWeightedGraph(len(edges))
	for _, e := range edges {
		u := Index(ids.GetID(e.From))
		v := Index(ids.GetID(e.To))
		g.AddEdge(u, v, int64(e.Weight))
	}
	return g, ids
}

func (g *WeightedGraph) AddVertex(u Index) {
	for len(g.alive) <= int(u) {
		g.alive = append(g.alive, false)
		g.adjacency = append(g.adjacency, nil)
	}
	if g.alive[u] {
		return
	}
	g.alive[u] = true
	g.adjacency[u] = make(map[Index]int64)
	g.numberOfVertices++
}

func (g *WeightedGraph) HasVertex(u Index) bool {
	return int(u) < len(g.alive) && g.alive[u]
}

// AddEdge set weight of edge {u,v}, overwriting any previous weight.
func (g *WeightedGraph) AddEdge(u, v Index, weight int64) {
	g.AddVertex(u)
	g.AddVertex(v)
	if u == v {
		return
	}

	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
}

// UpdateEdge add delta to the weight of edge {u,v}, creating the edge when absent.
func (g *WeightedGraph) UpdateEdge(u, v Index, delta int64) {
	g.AddVertex(u)
	g.AddVertex(v)
	if u == v {
		return
	}

	g.adjacency[u][v] += delta
	g.adjacency[v][u] += delta
}

// Remove delete vertex u and all of its incident edges.
func (g *WeightedGraph) Remove(u Index) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("remove %d: %w", u, ErrMissingVertex)
	}
	for v := range g.adjacency[u] {
		delete(g.adjacency[v], u)
	}
	g.adjacency[u] = nil
	g.alive[u] = false
	g.numberOfVertices--
	return nil
}

// Neighbors return the neighbor -> weight map of u. the map is owned by the graph, callers must not modify it.
func (g *WeightedGraph) Neighbors(u Index) (map[Index]int64, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("neighbors of %d: %w", u, ErrMissingVertex)
	}
	return g.adjacency[u], nil
}

func (g *WeightedGraph) Weight(u, v Index) (int64, bool) {
	if !g.HasVertex(u) {
		return 0, false
	}
	w, ok := g.adjacency[u][v]
	return w, ok
}

func (g *WeightedGraph) NumberOfVertices() int {
	return g.numberOfVertices
}

// MaxVertexID one past the largest vertex id ever inserted.
func (g *WeightedGraph) MaxVertexID() int {
	return len(g.alive)
}

func (g *WeightedGraph) NumberOfEdges() int {
	count := 0
	g.ForEachEdge(func(u, v Index, weight int64) {
		count++
	})
	return count
}

// ForEachVertices visit live vertices in ascending id order.
func (g *WeightedGraph) ForEachVertices(handle func(u Index)) {
	for u, alive := range g.alive {
		if alive {
			handle(Index(u))
		}
	}
}

// ForEachEdge visit every undirected edge once, with u < v.
func (g *WeightedGraph) ForEachEdge(handle func(u, v Index, weight int64)) {
	g.ForEachVertices(func(u Index) {
		for v, w := range g.adjacency[u] {
			if u < v {
				handle(u, v, w)
			}
		}
	})
}

func (g *WeightedGraph) TotalWeight() int64 {
	var total int64
	g.ForEachEdge(func(u, v Index, weight int64) {
		total += weight
	})
	return total
}

func (g *WeightedGraph) Clone() *WeightedGraph {
	newG := NewWeightedGraph(len(g.alive))
	newG.alive = append(newG.alive, g.alive...)
	newG.numberOfVertices = g.numberOfVertices
	for _, adj := range g.adjacency {
		if adj == nil {
			newG.adjacency = append(newG.adjacency, nil)
			continue
		}
		newAdj := make(map[Index]int64, len(adj))
		for v, w := range adj {
			newAdj[v] = w
		}
		newG.adjacency = append(newG.adjacency, newAdj)
	}
	return newG
}

// InducedSubgraph build the subgraph on vertices, renumbered 0..len(vertices)-1 in the given order.
func (g *WeightedGraph) InducedSubgraph(vertices []Index) *WeightedGraph {
	local := make(map[Index]Index, len(vertices))
	sub := NewWeightedGraph(len(vertices))
	for i, u := range vertices {
		local[u] = Index(i)
		sub.AddVertex(Index(i))
	}
	for _, u := range vertices {
		if !g.HasVertex(u) {
			continue
		}
		for v, w := range g.adjacency[u] {
			lv, ok := local[v]
			if ok && u < v {
				sub.AddEdge(local[u], lv, w)
			}
		}
	}
	return sub
}
