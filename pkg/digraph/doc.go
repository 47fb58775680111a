// Package digraph provides a generic in-memory directed graph with
// topological sorting and depth-first / breadth-first traversal.
//
// # Overview
//
// Depflow models "what must come before what" relationships: build steps,
// task dependencies, dressing order. This package is the storage layer that
// the rest of the module builds on. A [Graph] owns a node set and an
// adjacency list; free functions compute orderings and traversals by reading
// that adjacency data.
//
// Nodes are plain comparable values chosen by the caller (strings, ints,
// small structs). The graph has no identity notion beyond equality.
//
// # Basic Usage
//
// Create a graph with [New], then add nodes and edges. Both operations are
// idempotent and never fail; [Graph.AddEdge] inserts missing endpoints
// automatically:
//
//	g := digraph.New[string]()
//	g.AddEdge("shirt", "tie")
//	g.AddEdge("shirt", "pants")
//	g.AddEdge("pants", "belt")
//
//	order := digraph.TopoSort(g) // shirt before tie, pants and belt
//
// Traversals are pull-based cursors created by [DFS] and [BFS]:
//
//	for w := digraph.DFS(g, "shirt"); ; {
//		n, ok := w.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(n)
//	}
//
// # Ordering Guarantees
//
// Neighbor lists and the node sequence preserve insertion order, so repeated
// runs over the same construction sequence produce identical output. Callers
// should still treat the ordering among unrelated nodes as unspecified; only
// the edge-respecting partial order of [TopoSort] and the layer order of
// [BFS] are contractual.
//
// # Cycles
//
// The base graph accepts cycles. [TopoSort] then returns a partial result
// that omits every node inside or downstream of a cycle; compare the result
// length with [Graph.NodeCount] to detect this, or use [Acyclic]. Traversals
// terminate on cyclic graphs because each node is visited at most once.
// The dag package layers strict cycle prevention on top of this one.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Reads and writes touch
// the same adjacency map without internal locking, so callers embedding a
// graph in a concurrent system must guard it externally.
package digraph
