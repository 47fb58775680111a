// Package manifest loads graph definitions from TOML files and builds
// cycle-checked DAGs from them.
//
// A manifest names a graph and lists its edges, plus any isolated nodes
// that no edge touches:
//
//	[graph]
//	name = "wardrobe"
//	nodes = ["scarf"]
//
//	[[edges]]
//	from = "shirt"
//	to = "tie"
//
// Edge endpoints are inserted automatically, so the nodes list is only
// needed for nodes without edges. Edges are applied in file order; the
// first edge that would close a cycle fails the build with the offending
// pair in the error.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/depflow/depflow/pkg/dag"
)

// ErrEmptyNodeName is returned by [Manifest.Build] when a node or edge
// endpoint is the empty string. All nodes must have non-empty names.
var ErrEmptyNodeName = errors.New("manifest: node name must not be empty")

// Edge is one directed constraint in a manifest: From must come before To.
type Edge struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Info holds the graph-level fields of a manifest.
type Info struct {
	Name  string   `toml:"name"`
	Nodes []string `toml:"nodes"` // isolated nodes; edge endpoints need not be listed
}

// Manifest is a decoded graph definition. Decode one with [Load] or
// [Parse], then materialize it with [Manifest.Build].
type Manifest struct {
	Graph Info   `toml:"graph"`
	Edges []Edge `toml:"edges"`
}

// Name returns the graph name, or "graph" if the manifest does not set one.
func (m *Manifest) Name() string {
	if m.Graph.Name == "" {
		return "graph"
	}
	return m.Graph.Name
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a TOML manifest from r.
func Parse(r io.Reader) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	return &m, nil
}

// Build constructs a cycle-checked DAG from the manifest. Nodes are added
// first, then edges in file order. Returns ErrEmptyNodeName for blank
// names, or the underlying [dag.CycleError] (wrapped with the graph name)
// for the first edge that would close a cycle.
func (m *Manifest) Build() (*dag.DAG[string], error) {
	for _, n := range m.Graph.Nodes {
		if n == "" {
			return nil, ErrEmptyNodeName
		}
	}
	for _, e := range m.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %q -> %q", ErrEmptyNodeName, e.From, e.To)
		}
	}

	d := dag.New[string]()
	for _, n := range m.Graph.Nodes {
		d.AddNode(n)
	}
	for _, e := range m.Edges {
		if err := d.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", m.Name(), err)
		}
	}
	return d, nil
}
