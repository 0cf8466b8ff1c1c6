// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest distances on a core.Graph and
// records, for every reached node, the full set of predecessors that lie on
// some minimum-distance path from the source.
//
// Overview:
//
//   - Classic Dijkstra over a min-heap keyed by tentative distance.
//   - Lazy deletion: improved distances push a fresh heap entry; entries whose
//     distance exceeds the recorded one are discarded when popped.
//   - A strictly better candidate replaces the predecessor set of v with {u}.
//   - A tying candidate appends u to the predecessor set of v (no heap push).
//
// The predecessor sets together form a DAG rooted at the source (modulo mutual
// ties across zero-weight edges, see package paths) from which every minimal
// path can be enumerated.
//
// Determinism:
//
//   - Arcs are relaxed in core.Graph insertion order, so the order of
//     predecessors inside each set is reproducible for a given graph.
//
// Unreachable nodes:
//
//   - No numeric infinity is exposed. Result.Distance(v) reports ok=false and
//     Result.Predecessors(v) is empty for nodes the source cannot reach.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for distances, predecessor sets and heap entries.
//
// Errors (sentinel):
//
//   - ErrNilGraph:         nil *core.Graph.
//   - ErrSourceNotFound:   source ID not in the graph.
//   - ErrDistanceOverflow: a node is reachable only at a distance beyond math.MaxInt64.
//   - ErrBadMaxDistance:   (panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold:  (panic) WithInfEdgeThreshold with a value <= 0.
//
// Thread safety:
//
//   - Each call owns its own state; concurrent calls on one graph are safe.
package dijkstra
