package dag

import (
	"errors"
	"fmt"

	"github.com/depflow/depflow/pkg/digraph"
	"github.com/depflow/depflow/pkg/observability"
)

// ErrCycle is the sentinel matched by errors.Is for edges refused by
// [DAG.AddEdge]. The concrete error is always a [*CycleError] carrying the
// offending endpoints.
var ErrCycle = errors.New("edge would close a cycle")

// CycleError reports an edge insertion that was refused because the target
// node already reaches the source node. The graph is left unmodified when
// this error is returned.
type CycleError[N comparable] struct {
	From N // source of the refused edge
	To   N // target of the refused edge
}

// Error implements the error interface.
func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("dag: adding edge %v -> %v would close a cycle", e.From, e.To)
}

// Unwrap returns [ErrCycle] so callers can match with errors.Is without
// knowing the node type.
func (e *CycleError[N]) Unwrap() error { return ErrCycle }

// DAG is a directed acyclic graph over comparable node values. It composes
// a [digraph.Graph] rather than extending it: reads pass straight through,
// while [DAG.AddEdge] runs a reachability check before mutating anything.
//
// The zero value is not usable - use [New] to create a DAG.
// DAG is not safe for concurrent use without external synchronization.
type DAG[N comparable] struct {
	g *digraph.Graph[N]
}

// New creates an empty DAG.
func New[N comparable]() *DAG[N] {
	return &DAG[N]{g: digraph.New[N]()}
}

// AddNode inserts n into the graph. Adding an existing node is a no-op.
func (d *DAG[N]) AddNode(n N) {
	if d.g.HasNode(n) {
		return
	}
	d.g.AddNode(n)
	observability.Graph().OnNodeAdded(n)
}

// AddEdge inserts the directed edge u -> v if doing so keeps the graph
// acyclic. The check runs strictly before any mutation: when a path from v
// back to u already exists (including u == v), AddEdge returns a
// [*CycleError] and the graph is unchanged - no endpoint is inserted either.
//
// On success the edge is stored with base-graph semantics: missing
// endpoints are auto-inserted and re-adding an existing edge is a no-op.
func (d *DAG[N]) AddEdge(u, v N) error {
	if digraph.HasPath(d.g, v, u) {
		observability.Graph().OnEdgeRejected(u, v)
		return &CycleError[N]{From: u, To: v}
	}
	hadU, hadV := d.g.HasNode(u), d.g.HasNode(v)
	hadEdge := d.g.HasEdge(u, v)
	d.g.AddEdge(u, v)
	if !hadU {
		observability.Graph().OnNodeAdded(u)
	}
	if !hadV {
		observability.Graph().OnNodeAdded(v)
	}
	if !hadEdge {
		observability.Graph().OnEdgeAdded(u, v)
	}
	return nil
}

// Successors returns the out-neighbors of n as a sequence.
// The result is a copy in insertion order; empty if n is absent.
func (d *DAG[N]) Successors(n N) []N { return d.g.Neighbors(n) }

// Neighbors returns the out-neighbors of n. Equivalent to
// [DAG.Successors]; both names are kept so the DAG can stand in for the
// base graph in neighbor-oriented code.
func (d *DAG[N]) Neighbors(n N) []N { return d.g.Neighbors(n) }

// Nodes returns all nodes in insertion order. The result is a copy.
func (d *DAG[N]) Nodes() []N { return d.g.Nodes() }

// HasNode reports whether n is a node of the graph.
func (d *DAG[N]) HasNode(n N) bool { return d.g.HasNode(n) }

// HasEdge reports whether the directed edge u -> v is present.
func (d *DAG[N]) HasEdge(u, v N) bool { return d.g.HasEdge(u, v) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG[N]) NodeCount() int { return d.g.NodeCount() }

// EdgeCount returns the number of distinct edges in the graph.
func (d *DAG[N]) EdgeCount() int { return d.g.EdgeCount() }

// HasPath reports whether a directed path leads from start to end.
// Every node reaches itself.
func (d *DAG[N]) HasPath(start, end N) bool {
	return digraph.HasPath(d.g, start, end)
}

// TopoSort returns a topological ordering of the graph. Because every
// insertion is cycle-checked, the result always contains every node.
func (d *DAG[N]) TopoSort() []N { return digraph.TopoSort(d.g) }

// DFS returns a depth-first walker from start. See [digraph.DFS].
func (d *DAG[N]) DFS(start N) *digraph.Walker[N] { return digraph.DFS(d.g, start) }

// BFS returns a breadth-first walker from start. See [digraph.BFS].
func (d *DAG[N]) BFS(start N) *digraph.Walker[N] { return digraph.BFS(d.g, start) }

// Sources returns the nodes with no incoming edges, in insertion order.
// These are the entry points of the ordering.
func (d *DAG[N]) Sources() []N {
	incoming := make(map[N]int, d.g.NodeCount())
	for _, n := range d.g.Nodes() {
		for _, nbr := range d.g.Neighbors(n) {
			incoming[nbr]++
		}
	}
	var sources []N
	for _, n := range d.g.Nodes() {
		if incoming[n] == 0 {
			sources = append(sources, n)
		}
	}
	return sources
}

// Sinks returns the nodes with no outgoing edges, in insertion order.
func (d *DAG[N]) Sinks() []N {
	var sinks []N
	for _, n := range d.g.Nodes() {
		if d.g.OutDegree(n) == 0 {
			sinks = append(sinks, n)
		}
	}
	return sinks
}
