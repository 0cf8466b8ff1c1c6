// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory road network used by the
// route finder: named nodes with dense integer IDs and undirected, weighted,
// non-negative edges.
//
// The Graph G = (V,E) is append-only:
//
//   - Nodes get IDs 0..V-1 in AddNode call order; names are unique.
//   - Every AddEdge(u, v, w) stores one Edge and two Arcs, (v,w) on u and (u,w) on v.
//   - Parallel edges are independent; nothing is deduplicated or min-collapsed.
//   - Self-loops are accepted unless the graph was built WithoutLoops().
//   - No removal operations exist.
//
// Determinism:
//
//   - Nodes() returns nodes in ID order.
//   - Edges() returns edges in insertion order.
//   - Neighbors(id) returns arcs in insertion order. Shortest-path algorithms
//     relax arcs in this order, so it fixes the order of tied predecessors.
//
// Core Methods:
//
//	AddNode(name string) (int, error)          // O(1) amortized
//	AddEdge(u, v int, weight int64) error      // O(1) amortized
//	AddEdgeByName(a, b string, w int64) error  // O(1) amortized
//	IDForName(name string) (int, error)        // O(1)
//	Node(id int) (Node, error)                 // O(1)
//	Neighbors(id int) ([]Arc, error)           // O(deg(id)) copy
//	NodeCount() int, EdgeCount() int           // O(1)
//
// Errors:
//
//	ErrEmptyName       – zero-length node name
//	ErrDuplicateName   – name already registered
//	ErrNodeNotFound    – unknown ID or name
//	ErrNegativeWeight  – weight < 0 on AddEdge
//	ErrLoopNotAllowed  – self-loop on a graph built WithoutLoops()
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes, names, edges and adjacency. Reads may run
//	concurrently with each other; once construction is finished the graph is
//	effectively immutable and any number of queries can share it.
package core
