// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge, AddEdgeByName, Edges, EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Each AddEdge appends exactly one arc to each endpoint (one arc for a self-loop).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge inserts an undirected edge u—v with the given weight.
//
// Steps:
//  1. Validate weight >= 0 (ErrNegativeWeight).
//  2. Lock mu; validate both endpoints exist (ErrNodeNotFound).
//  3. Reject u == v on a graph built WithoutLoops (ErrLoopNotAllowed).
//  4. Record the Edge and append (v,w) to u and (u,w) to v.
//
// Validation completes before any mutation, so a failed call leaves the graph unmodified.
// Parallel edges are always accepted and kept as independent arcs.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	// 1) Input validation
	if weight < 0 {
		return fmt.Errorf("%w: %d–%d weight=%d", ErrNegativeWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints must exist
	if !g.hasNodeLocked(u) {
		return fmt.Errorf("%w: id %d", ErrNodeNotFound, u)
	}
	if !g.hasNodeLocked(v) {
		return fmt.Errorf("%w: id %d", ErrNodeNotFound, v)
	}

	// 3) Loop constraint
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, g.nodes[u].Name)
	}

	// 4) Store and link adjacency (mirror for the other endpoint)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})
	g.adjacency[u] = append(g.adjacency[u], Arc{To: v, Weight: weight})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], Arc{To: u, Weight: weight})
	}

	return nil
}

// AddEdgeByName resolves both endpoint names and delegates to AddEdge.
// Unknown names return ErrNodeNotFound without touching the graph.
func (g *Graph) AddEdgeByName(a, b string, weight int64) error {
	u, err := g.IDForName(a)
	if err != nil {
		return err
	}
	v, err := g.IDForName(b)
	if err != nil {
		return err
	}

	return g.AddEdge(u, v, weight)
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of inserted edges (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
