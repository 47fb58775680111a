package dag

import (
	"errors"
	"slices"
	"testing"
)

// wardrobe builds the dressing-order graph used throughout the tests:
// eight garments and ten "must come before" constraints.
func wardrobe(t *testing.T) *DAG[string] {
	t.Helper()
	d := New[string]()
	for _, n := range []string{"shirt", "pants", "socks", "vest", "tie", "belt", "shoes", "jacket"} {
		d.AddNode(n)
	}
	edges := [][2]string{
		{"shirt", "tie"}, {"shirt", "pants"}, {"shirt", "vest"}, {"shirt", "jacket"},
		{"tie", "jacket"}, {"pants", "belt"}, {"pants", "shoes"},
		{"socks", "shoes"}, {"vest", "jacket"}, {"belt", "jacket"},
	}
	for _, e := range edges {
		if err := d.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s) = %v, want nil", e[0], e[1], err)
		}
	}
	return d
}

func sameMembers(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func TestAddEdgeRejectsCycle(t *testing.T) {
	d := New[string]()
	if err := d.AddEdge("shirt", "tie"); err != nil {
		t.Fatalf("AddEdge(shirt, tie) = %v, want nil", err)
	}
	if err := d.AddEdge("tie", "jacket"); err != nil {
		t.Fatalf("AddEdge(tie, jacket) = %v, want nil", err)
	}

	err := d.AddEdge("jacket", "shirt")
	if err == nil {
		t.Fatal("AddEdge(jacket, shirt) = nil, want cycle error")
	}
	if !errors.Is(err, ErrCycle) {
		t.Errorf("errors.Is(err, ErrCycle) = false for %v", err)
	}

	var cycleErr *CycleError[string]
	if !errors.As(err, &cycleErr) {
		t.Fatalf("errors.As(*CycleError) = false for %v", err)
	}
	if cycleErr.From != "jacket" || cycleErr.To != "shirt" {
		t.Errorf("CycleError = (%s, %s), want (jacket, shirt)", cycleErr.From, cycleErr.To)
	}

	if slices.Contains(d.Neighbors("jacket"), "shirt") {
		t.Error("Neighbors(jacket) contains shirt after rejected insert")
	}
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	d := New[string]()

	err := d.AddEdge("a", "a")
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("AddEdge(a, a) = %v, want cycle error", err)
	}
	if d.HasNode("a") {
		t.Error("rejected insert must not add endpoints")
	}
}

func TestAddEdgeRejectionLeavesGraphUnmodified(t *testing.T) {
	d := New[string]()
	if err := d.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge(a, b) = %v, want nil", err)
	}
	nodesBefore, edgesBefore := d.NodeCount(), d.EdgeCount()

	if err := d.AddEdge("b", "a"); !errors.Is(err, ErrCycle) {
		t.Fatalf("AddEdge(b, a) = %v, want cycle error", err)
	}

	if d.NodeCount() != nodesBefore || d.EdgeCount() != edgesBefore {
		t.Errorf("counts = (%d, %d) after rejection, want (%d, %d)",
			d.NodeCount(), d.EdgeCount(), nodesBefore, edgesBefore)
	}
	if d.HasEdge("b", "a") {
		t.Error("HasEdge(b, a) = true after rejection")
	}
}

func TestAddEdgeAutoInsertsEndpoints(t *testing.T) {
	d := New[string]()
	if err := d.AddEdge("u", "v"); err != nil {
		t.Fatalf("AddEdge(u, v) = %v, want nil", err)
	}

	if !d.HasNode("u") || !d.HasNode("v") {
		t.Error("endpoints not auto-inserted")
	}
	if err := d.AddEdge("u", "v"); err != nil {
		t.Errorf("re-adding edge = %v, want nil no-op", err)
	}
	if got := d.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
}

func TestWardrobe(t *testing.T) {
	d := wardrobe(t)

	t.Run("Successors", func(t *testing.T) {
		got := d.Successors("shirt")
		want := []string{"tie", "pants", "vest", "jacket"}
		if !sameMembers(got, want) {
			t.Errorf("Successors(shirt) = %v, want members %v", got, want)
		}
		if len(d.Successors("shoes")) != 0 {
			t.Errorf("Successors(shoes) = %v, want empty", d.Successors("shoes"))
		}
	})

	t.Run("TopoSortComplete", func(t *testing.T) {
		order := d.TopoSort()
		if got := len(order); got != d.NodeCount() {
			t.Fatalf("len(TopoSort) = %d, want %d", got, d.NodeCount())
		}

		pos := make(map[string]int, len(order))
		for i, n := range order {
			pos[n] = i
		}
		precedence := [][2]string{
			{"shirt", "tie"}, {"shirt", "pants"}, {"shirt", "vest"}, {"shirt", "jacket"},
			{"pants", "belt"}, {"belt", "jacket"},
		}
		for _, p := range precedence {
			if pos[p[0]] >= pos[p[1]] {
				t.Errorf("%s at %d not before %s at %d", p[0], pos[p[0]], p[1], pos[p[1]])
			}
		}
	})

	t.Run("CycleRejectedAfterBuild", func(t *testing.T) {
		if err := d.AddEdge("jacket", "shirt"); !errors.Is(err, ErrCycle) {
			t.Fatalf("AddEdge(jacket, shirt) = %v, want cycle error", err)
		}
		if slices.Contains(d.Neighbors("jacket"), "shirt") {
			t.Error("Neighbors(jacket) contains shirt after rejected insert")
		}
	})

	t.Run("SourcesAndSinks", func(t *testing.T) {
		if got := d.Sources(); !sameMembers(got, []string{"shirt", "socks"}) {
			t.Errorf("Sources = %v, want shirt and socks", got)
		}
		if got := d.Sinks(); !sameMembers(got, []string{"shoes", "jacket"}) {
			t.Errorf("Sinks = %v, want shoes and jacket", got)
		}
	})

	t.Run("Traversal", func(t *testing.T) {
		dfsOrder := d.DFS("shirt").Order()
		if dfsOrder[0] != "shirt" {
			t.Errorf("DFS order starts with %s, want shirt", dfsOrder[0])
		}
		counts := make(map[string]int)
		for _, n := range dfsOrder {
			counts[n]++
		}
		if counts["jacket"] != 1 {
			t.Errorf("jacket visited %d times, want 1", counts["jacket"])
		}

		bfsOrder := d.BFS("shirt").Order()
		if slices.Contains(bfsOrder, "shirt") {
			t.Errorf("BFS order %v must not contain the start node", bfsOrder)
		}
	})

	t.Run("HasPath", func(t *testing.T) {
		if !d.HasPath("shirt", "jacket") {
			t.Error("HasPath(shirt, jacket) = false, want true")
		}
		if d.HasPath("jacket", "shirt") {
			t.Error("HasPath(jacket, shirt) = true, want false")
		}
	})
}

func TestAddNodeIdempotent(t *testing.T) {
	d := New[string]()
	d.AddNode("a")
	d.AddNode("a")

	if got := d.NodeCount(); got != 1 {
		t.Errorf("NodeCount = %d, want 1", got)
	}
	if got := d.Nodes(); !sameMembers(got, []string{"a"}) {
		t.Errorf("Nodes = %v, want [a]", got)
	}
}

func TestGenericDAG(t *testing.T) {
	type step struct {
		id int
	}

	d := New[step]()
	if err := d.AddEdge(step{1}, step{2}); err != nil {
		t.Fatalf("AddEdge = %v, want nil", err)
	}

	err := d.AddEdge(step{2}, step{1})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("reverse edge = %v, want cycle error", err)
	}
	var cycleErr *CycleError[step]
	if !errors.As(err, &cycleErr) {
		t.Fatalf("errors.As(*CycleError[step]) = false for %v", err)
	}
	if cycleErr.From != (step{2}) || cycleErr.To != (step{1}) {
		t.Errorf("CycleError = (%v, %v), want ({2}, {1})", cycleErr.From, cycleErr.To)
	}
}
