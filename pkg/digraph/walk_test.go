package digraph

import (
	"slices"
	"testing"
)

// diamond builds a -> b, a -> c, b -> d, c -> d: two paths reach d.
func diamond() *Graph[string] {
	g := New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")
	return g
}

func TestDFS(t *testing.T) {
	t.Run("DiamondVisitsOnce", func(t *testing.T) {
		order := DFS(diamond(), "a").Order()

		if got := len(order); got != 4 {
			t.Fatalf("len(order) = %d, want 4", got)
		}
		if order[0] != "a" {
			t.Errorf("order[0] = %s, want a (start yielded first)", order[0])
		}
		counts := make(map[string]int)
		for _, n := range order {
			counts[n]++
		}
		if counts["d"] != 1 {
			t.Errorf("d visited %d times, want 1 despite two incoming paths", counts["d"])
		}
	})

	t.Run("LeftToRightNeighborOrder", func(t *testing.T) {
		// With neighbors pushed in reverse, the traversal matches what a
		// recursive DFS would produce over insertion-ordered adjacency.
		order := DFS(diamond(), "a").Order()
		want := []string{"a", "b", "d", "c"}
		if !slices.Equal(order, want) {
			t.Errorf("order = %v, want %v", order, want)
		}
	})

	t.Run("AbsentStart", func(t *testing.T) {
		if order := DFS(diamond(), "ghost").Order(); len(order) != 0 {
			t.Errorf("order = %v, want empty for absent start", order)
		}
	})

	t.Run("CycleTerminates", func(t *testing.T) {
		g := New[string]()
		g.AddEdge("a", "b")
		g.AddEdge("b", "a")

		order := DFS(g, "a").Order()
		want := []string{"a", "b"}
		if !slices.Equal(order, want) {
			t.Errorf("order = %v, want %v", order, want)
		}
	})

	t.Run("UnreachableExcluded", func(t *testing.T) {
		g := diamond()
		g.AddEdge("x", "y")

		order := DFS(g, "a").Order()
		if slices.Contains(order, "x") || slices.Contains(order, "y") {
			t.Errorf("order = %v, contains nodes unreachable from a", order)
		}
	})
}

func TestBFS(t *testing.T) {
	t.Run("ExcludesStart", func(t *testing.T) {
		order := BFS(diamond(), "a").Order()

		if slices.Contains(order, "a") {
			t.Errorf("order = %v, must not contain the start node", order)
		}
		if got := len(order); got != 3 {
			t.Fatalf("len(order) = %d, want 3", got)
		}
	})

	t.Run("LayerOrder", func(t *testing.T) {
		order := BFS(diamond(), "a").Order()

		// b and c are one hop from a, d is two; d must come last.
		if order[len(order)-1] != "d" {
			t.Errorf("order = %v, want d in the final layer", order)
		}
		counts := make(map[string]int)
		for _, n := range order {
			counts[n]++
		}
		for n, c := range counts {
			if c != 1 {
				t.Errorf("%s visited %d times, want 1", n, c)
			}
		}
	})

	t.Run("AbsentStart", func(t *testing.T) {
		if order := BFS(diamond(), "ghost").Order(); len(order) != 0 {
			t.Errorf("order = %v, want empty for absent start", order)
		}
	})

	t.Run("CycleTerminates", func(t *testing.T) {
		g := New[string]()
		g.AddEdge("a", "b")
		g.AddEdge("b", "a")

		order := BFS(g, "a").Order()
		want := []string{"b"}
		if !slices.Equal(order, want) {
			t.Errorf("order = %v, want %v", order, want)
		}
	})

	t.Run("StartWithNoNeighbors", func(t *testing.T) {
		g := New[string]()
		g.AddNode("lonely")

		if order := BFS(g, "lonely").Order(); len(order) != 0 {
			t.Errorf("order = %v, want empty", order)
		}
	})
}

func TestWalkerSinglePass(t *testing.T) {
	w := DFS(diamond(), "a")

	first, ok := w.Next()
	if !ok || first != "a" {
		t.Fatalf("Next = %v, %v, want a, true", first, ok)
	}

	rest := w.Order()
	if got := len(rest); got != 3 {
		t.Fatalf("len(rest) = %d, want 3 after consuming one node", got)
	}

	if n, ok := w.Next(); ok {
		t.Errorf("Next after exhaustion = %v, true, want ok=false", n)
	}
	if n, ok := w.Next(); ok {
		t.Errorf("second Next after exhaustion = %v, true, want ok=false", n)
	}
}
