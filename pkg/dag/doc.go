// Package dag provides a directed graph that enforces acyclicity on every
// edge insertion.
//
// # Overview
//
// A [DAG] wraps a digraph store and intercepts edge insertion with a
// reachability pre-check: the edge u -> v is accepted only if no path
// already leads from v back to u. Accepted edges delegate to the underlying
// store, so endpoints are auto-inserted and duplicates deduplicated exactly
// as in the base graph. Rejected edges leave the graph untouched and return
// a [*CycleError] identifying the offending pair.
//
// # Basic Usage
//
//	d := dag.New[string]()
//	_ = d.AddEdge("shirt", "tie")
//	_ = d.AddEdge("tie", "jacket")
//
//	err := d.AddEdge("jacket", "shirt") // closes a cycle
//	if errors.Is(err, dag.ErrCycle) {
//	    // jacket -> shirt was refused; the graph is unchanged
//	}
//
// Sorting and traversal are available directly on the DAG via
// [DAG.TopoSort], [DAG.DFS], and [DAG.BFS]. Because every insertion is
// guarded, [DAG.TopoSort] always covers the full node set.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. The reachability check and
// the subsequent insertion are not atomic with respect to other goroutines;
// callers must synchronize externally.
package dag
