package digraph

// TopoSort computes a topological ordering of g using Kahn's algorithm:
// nodes with in-degree zero are dequeued in FIFO order, and each dequeue
// decrements the in-degree of the node's neighbors, enqueueing those that
// reach zero.
//
// On an acyclic graph the result contains every node exactly once, with u
// before v for every edge u -> v. On a cyclic graph the nodes inside a
// cycle, and any node only reachable through one, never reach in-degree
// zero and are silently omitted; callers can detect this by comparing
// len(result) with [Graph.NodeCount], or use [Acyclic].
//
// Ties among in-degree-zero nodes are broken by node insertion order.
// Only the edge-respecting partial order is contractual.
//
// Runs in O(N+E) time.
func TopoSort[N comparable](g *Graph[N]) []N {
	inDegree := make(map[N]int, g.NodeCount())
	for _, n := range g.order {
		inDegree[n] = 0
	}
	for _, n := range g.order {
		for _, nbr := range g.neighbors(n) {
			inDegree[nbr]++
		}
	}

	queue := make([]N, 0, g.NodeCount())
	for _, n := range g.order {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	result := make([]N, 0, g.NodeCount())
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)
		for _, nbr := range g.neighbors(current) {
			inDegree[nbr]--
			if inDegree[nbr] == 0 {
				queue = append(queue, nbr)
			}
		}
	}

	return result
}

// Acyclic reports whether g contains no directed cycle.
//
// Cycle detection runs in O(N+E) time using depth-first search with
// white/gray/black coloring: a gray node reached again closes a cycle.
func Acyclic[N comparable](g *Graph[N]) bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[N]int, g.NodeCount())
	var hasCycle bool

	var dfs func(n N)
	dfs = func(n N) {
		color[n] = gray
		for _, nbr := range g.neighbors(n) {
			switch color[nbr] {
			case white:
				dfs(nbr)
			case gray:
				hasCycle = true
				return
			}
		}
		color[n] = black
	}

	for _, n := range g.order {
		if color[n] == white {
			dfs(n)
			if hasCycle {
				return false
			}
		}
	}
	return true
}
