// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about graph mutations; by default every hook
// is a no-op.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for graph events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the graph packages dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    // ... run application
//	}
//
// The dag package calls hooks as mutations happen:
//
//	observability.Graph().OnEdgeAdded(from, to)
package observability

import "sync"

// GraphHooks receives events from graph mutations. Node values are passed
// as any because graphs are generic over their node type.
type GraphHooks interface {
	// OnNodeAdded records a node newly inserted into a graph.
	OnNodeAdded(node any)

	// OnEdgeAdded records an edge newly inserted into a graph.
	OnEdgeAdded(from, to any)

	// OnEdgeRejected records an edge insertion refused because it would
	// have closed a cycle.
	OnEdgeRejected(from, to any)
}

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnNodeAdded(any)         {}
func (NoopGraphHooks) OnEdgeAdded(any, any)    {}
func (NoopGraphHooks) OnEdgeRejected(any, any) {}

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any graph
// operations.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
}
