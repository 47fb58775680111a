package digraph

// Walker is a single-pass cursor over a graph traversal. Nodes are produced
// on demand by [Walker.Next]; no work happens between pulls, and a walker
// may be abandoned at any point without cleanup. Walkers are not
// restartable - create a new one with [DFS] or [BFS] to traverse again.
//
// A walker reads the graph it was created from; mutating that graph while
// a walk is in progress has unspecified results.
type Walker[N comparable] struct {
	g        *Graph[N]
	visited  map[N]bool
	frontier []N
	breadth  bool
	skipNext bool // BFS: the pending dequeue is the start node, expand but do not yield
}

// DFS returns a walker producing nodes in depth-first order from start.
// The start node is yielded first, then each reachable node exactly once at
// its first visit. Neighbors are expanded left to right, matching the order
// a recursive traversal would produce. If start is not a node of the graph
// the walk is empty.
func DFS[N comparable](g *Graph[N], start N) *Walker[N] {
	w := &Walker[N]{g: g, visited: make(map[N]bool)}
	if g.HasNode(start) {
		w.frontier = append(w.frontier, start)
	}
	return w
}

// BFS returns a walker producing nodes in breadth-first order from start.
// The start node itself is marked visited but excluded from the output: the
// walk begins with start's neighbors and proceeds layer by layer, each node
// exactly once in first-discovered order. If start is not a node of the
// graph the walk is empty.
func BFS[N comparable](g *Graph[N], start N) *Walker[N] {
	w := &Walker[N]{g: g, visited: make(map[N]bool), breadth: true}
	if g.HasNode(start) {
		w.visited[start] = true
		w.frontier = append(w.frontier, start)
		w.skipNext = true
	}
	return w
}

// Next advances the walk and returns the next node. The second result is
// false when the traversal is exhausted; afterwards every call returns
// false.
func (w *Walker[N]) Next() (N, bool) {
	if w.breadth {
		return w.nextBreadth()
	}
	return w.nextDepth()
}

// nextDepth pops the stack until an unvisited node is found, then pushes
// that node's neighbors in reverse so the leftmost neighbor is popped first.
func (w *Walker[N]) nextDepth() (N, bool) {
	for len(w.frontier) > 0 {
		current := w.frontier[len(w.frontier)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]
		if w.visited[current] {
			continue
		}
		w.visited[current] = true
		neighbors := w.g.neighbors(current)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !w.visited[neighbors[i]] {
				w.frontier = append(w.frontier, neighbors[i])
			}
		}
		return current, true
	}
	var zero N
	return zero, false
}

// nextBreadth dequeues FIFO, enqueueing unvisited neighbors as each node is
// processed. The first dequeue is the start node, which is expanded without
// being yielded.
func (w *Walker[N]) nextBreadth() (N, bool) {
	for len(w.frontier) > 0 {
		current := w.frontier[0]
		w.frontier = w.frontier[1:]
		for _, nbr := range w.g.neighbors(current) {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				w.frontier = append(w.frontier, nbr)
			}
		}
		if w.skipNext {
			w.skipNext = false
			continue
		}
		return current, true
	}
	var zero N
	return zero, false
}

// Order drains the walker and returns the remaining nodes as a slice.
// Calling Order on a fresh walker yields the full traversal; on a partly
// consumed walker it yields only what is left.
func (w *Walker[N]) Order() []N {
	var order []N
	for {
		n, ok := w.Next()
		if !ok {
			return order
		}
		order = append(order, n)
	}
}
