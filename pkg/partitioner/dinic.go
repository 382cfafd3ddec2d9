package partitioner

import (
	"container/list"

	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/datastructure"
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/util"
)

// DinicMaxFlow s-t maximum flow on an undirected weighted network.
// by the max-flow min-cut theorem the flow value equals the lightest cut separating s and t.
type DinicMaxFlow struct {
	graph *datastructure.PartitionGraph
}

func NewDinicMaxFlow(graph *datastructure.PartitionGraph) *DinicMaxFlow {
	return &DinicMaxFlow{graph: graph}
}

// bfsLevelGraph assign bfs levels over arcs with positive residual, report whether t is reachable from s.
func (dmf *DinicMaxFlow) bfsLevelGraph(s, t datastructure.Index) bool {
	for u := 0; u < dmf.graph.NumberOfVertices(); u++ {
		dmf.graph.SetVertexLevel(datastructure.Index(u), pkg.INVALID_LEVEL)
	}

	levelQueue := list.New()
	levelQueue.PushBack(s)
	dmf.graph.SetVertexLevel(s, 0)

	for levelQueue.Len() > 0 {
		u := levelQueue.Remove(levelQueue.Front()).(datastructure.Index)
		if u == t {
			break
		}
		level := dmf.graph.GetVertexLevel(u) + 1

		dmf.graph.ForEachVertexEdges(u, func(edge *datastructure.MaxFlowEdge) {
			v := edge.GetTo()
			if edge.GetResidual() > 0 && dmf.graph.GetVertexLevel(v) == pkg.INVALID_LEVEL {
				dmf.graph.SetVertexLevel(v, level)
				levelQueue.PushBack(v)
			}
		})
	}
	return dmf.graph.GetVertexLevel(t) != pkg.INVALID_LEVEL
}

// dfsAugmentPath push flow from u towards t along the level graph, at most maxFlow.
func (dmf *DinicMaxFlow) dfsAugmentPath(u, t datastructure.Index, maxFlow int64) int64 {
	if u == t || maxFlow == 0 {
		return maxFlow
	}

	for ; dmf.graph.GetLastEdgeIndex(u) < dmf.graph.GetVertexEdgesSize(u); dmf.graph.IncrementLastEdgeIndex(u) {
		j := dmf.graph.GetLastEdgeIndex(u)
		edge := dmf.graph.GetEdgeOfVertex(u, j)
		v := edge.GetTo()
		residual := edge.GetResidual()
		if residual <= 0 || dmf.graph.GetVertexLevel(v) != dmf.graph.GetVertexLevel(u)+1 {
			continue
		}

		if flow := dmf.dfsAugmentPath(v, t, util.Min(residual, maxFlow)); flow > 0 {
			edge.AddFlow(flow)
			dmf.graph.GetReversedEdgeOfVertex(u, j).AddFlow(-flow)
			return flow
		}
	}
	// dead end, prune u from this level graph
	dmf.graph.SetVertexLevel(u, pkg.INVALID_LEVEL)

	return 0
}

func (dmf *DinicMaxFlow) resetCurrentEdges() {
	for i := 0; i < dmf.graph.NumberOfVertices(); i++ {
		dmf.graph.SetLastEdgeIndex(datastructure.Index(i), 0)
	}
}

// ComputeMaxFlow value of the maximum s-t flow. flows from a previous run are cleared first.
func (dmf *DinicMaxFlow) ComputeMaxFlow(s, t datastructure.Index) int64 {
	dmf.graph.ResetGraph()
	if s == t {
		return 0
	}

	var maxFlow int64
	for dmf.bfsLevelGraph(s, t) {
		dmf.resetCurrentEdges()
		for {
			flow := dmf.dfsAugmentPath(s, t, pkg.MAX_FLOW)
			if flow == 0 {
				break
			}
			maxFlow += flow
		}
	}
	return maxFlow
}

// SourceSide vertices reachable from s in the residual network after ComputeMaxFlow, the s side of a minimum s-t cut.
func (dmf *DinicMaxFlow) SourceSide(s datastructure.Index) []bool {
	visited := make([]bool, dmf.graph.NumberOfVertices())
	visited[s] = true
	queue := list.New()
	queue.PushBack(s)
	for queue.Len() > 0 {
		u := queue.Remove(queue.Front()).(datastructure.Index)
		dmf.graph.ForEachVertexEdges(u, func(edge *datastructure.MaxFlowEdge) {
			v := edge.GetTo()
			if edge.GetResidual() > 0 && !visited[v] {
				visited[v] = true
				queue.PushBack(v)
			}
		})
	}
	return visited
}
