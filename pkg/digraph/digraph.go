package digraph

import "slices"

// Graph is a directed graph over comparable node values.
//
// Node membership and adjacency are stored separately: every node in the
// graph has an adjacency entry (possibly empty), and every neighbor in an
// adjacency list is itself a node of the graph. Parallel edges are
// deduplicated; there is no edge or node removal.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph[N comparable] struct {
	order    []N                 // node insertion order
	nodes    map[N]struct{}      // node membership
	outgoing map[N][]N           // node -> neighbors, insertion order
	edges    map[edge[N]]struct{} // edge membership, for deduplication
}

// edge identifies a directed edge for membership checks.
type edge[N comparable] struct {
	from, to N
}

// New creates an empty directed graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		nodes:    make(map[N]struct{}),
		outgoing: make(map[N][]N),
		edges:    make(map[edge[N]]struct{}),
	}
}

// AddNode inserts n into the graph. Adding a node that is already present
// is a no-op, so the call is always safe and never fails.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.order = append(g.order, n)
	g.outgoing[n] = nil
}

// AddEdge inserts the directed edge u -> v. Missing endpoints are added
// first, so callers never need to pre-register nodes. Re-adding an existing
// edge is a no-op; the graph never stores parallel edges.
func (g *Graph[N]) AddEdge(u, v N) {
	g.AddNode(u)
	g.AddNode(v)
	e := edge[N]{from: u, to: v}
	if _, ok := g.edges[e]; ok {
		return
	}
	g.edges[e] = struct{}{}
	g.outgoing[u] = append(g.outgoing[u], v)
}

// HasNode reports whether n is a node of the graph.
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether the directed edge u -> v is present.
func (g *Graph[N]) HasEdge(u, v N) bool {
	_, ok := g.edges[edge[N]{from: u, to: v}]
	return ok
}

// Neighbors returns the out-neighbors of n in insertion order.
// The result is a copy; mutating it does not affect the graph.
// An absent node yields an empty slice, not an error.
func (g *Graph[N]) Neighbors(n N) []N {
	return slices.Clone(g.outgoing[n])
}

// Nodes returns all nodes in insertion order. The result is a copy.
// Callers should rely on set membership only, not on the exact order.
func (g *Graph[N]) Nodes() []N {
	return slices.Clone(g.order)
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[N]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph[N]) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of outgoing edges from n.
// Returns 0 if n is not a node of the graph.
func (g *Graph[N]) OutDegree(n N) int { return len(g.outgoing[n]) }

// neighbors returns the internal adjacency slice for n. Callers inside the
// package must not mutate the result.
func (g *Graph[N]) neighbors(n N) []N { return g.outgoing[n] }
