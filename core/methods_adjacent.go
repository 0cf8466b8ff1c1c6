// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree, ArcWeight).
// Determinism:
//   - Neighbors() returns arcs in insertion order.
// Concurrency:
//   - Read lock on mu; returned slices never share backing arrays with the graph.

package core

import "fmt"

// Neighbors returns the arcs incident to node id, in insertion order.
//
// Behavior highlights:
//   - Undirected edges appear on both endpoints with identical weight.
//   - Parallel edges appear once per inserted edge.
//   - A self-loop appears once.
//   - The returned slice is a copy and safe to retain or mutate.
//
// Errors:
//   - ErrNodeNotFound if id is out of range.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	out := make([]Arc, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Degree returns the number of arcs incident to id.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return 0, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return len(g.adjacency[id]), nil
}

// ArcWeight returns the smallest weight among the edges joining u and v.
// ok is false when no such edge exists or either ID is unknown.
//
// Complexity: O(deg(u)).
func (g *Graph) ArcWeight(u, v int) (weight int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(u) || !g.hasNodeLocked(v) {
		return 0, false
	}

	var a Arc
	for _, a = range g.adjacency[u] {
		if a.To != v {
			continue
		}
		if !ok || a.Weight < weight {
			weight, ok = a.Weight, true
		}
	}

	return weight, ok
}
