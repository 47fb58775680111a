package digraph

// HasPath reports whether a directed path exists from start to end.
// Every node reaches itself, so HasPath(g, n, n) is true even for nodes
// absent from the graph.
//
// The search explores outward from start in breadth-first order and stops
// as soon as end is discovered. This is an existence check only; it makes
// no shortest-path claim.
func HasPath[N comparable](g *Graph[N], start, end N) bool {
	if start == end {
		return true
	}

	visited := map[N]bool{start: true}
	queue := []N{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nbr := range g.neighbors(current) {
			if nbr == end {
				return true
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return false
}
