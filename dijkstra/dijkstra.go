// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm with
// all-predecessor tracking on core.Graph.
//
// Notes on implementation choices:
//
//   - Weights are validated non-negative by core.Graph.AddEdge, so no pre-scan is needed.
//   - When InfEdgeThreshold is set, any arc with weight >= it is an impassable "wall".
//   - We never record a node whose distance would exceed MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties never push: the distance is unchanged, only the predecessor set grows.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/cityroute/core"
)

// Dijkstra computes shortest distances from source to every node of g and the
// predecessor sets of all minimal paths.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrSourceNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: id %d: %w", ErrSourceNotFound, source, core.ErrNodeNotFound)
	}

	// 4) Query-scoped state sized to the current node count.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			source:  source,
			dist:    make([]int64, V),
			reached: make([]bool, V),
			preds:   make([][]int, V),
		},
		pq: make(nodePQ, 0, V),
	}

	// 5) Seed the frontier and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 6) A node left unreached only because its distance overflowed is an error.
	for _, o := range r.overflowed {
		if !r.res.reached[o.to] {
			return nil, fmt.Errorf("%w: %d + %d at arc %d–%d",
				ErrDistanceOverflow, r.res.dist[o.from], o.weight, o.from, o.to)
		}
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Thresholds.
	res     *Result     // Distances, reached flags and predecessor sets being built.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.

	overflowed []overflowArc // arcs whose candidate distance did not fit in int64
}

// overflowArc records an arc skipped because dist[from] + weight overflowed.
type overflowArc struct {
	from, to int
	weight   int64
}

// init marks the source reached at distance 0 and pushes it onto the heap.
func (r *runner) init() {
	src := r.res.source
	r.res.dist[src] = 0
	r.res.reached[src] = true

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process repeatedly pops the minimum-distance entry, discards stale entries,
// and relaxes the arcs of the popped node. It ends when the heap is empty.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item = heap.Pop(&r.pq).(*nodeItem)

		// 2) Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.res.dist[item.id] {
			continue
		}

		// 3) Entries above MaxDistance are never pushed, but keep the cap explicit.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Relax all arcs of u.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc of u and either improves, ties or ignores the
// neighbor's current distance.
//
//   - candidate <  dist[v]: dist[v] = candidate, preds[v] = {u}, push (candidate, v).
//   - candidate == dist[v]: append u to preds[v] unless already present.
//   - otherwise:            no update.
//
// The source never receives predecessors, and a zero-weight self-loop never
// makes u its own predecessor.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	res := r.res
	du := res.dist[u]
	var a core.Arc
	var v int
	var candidate int64
	for _, a = range arcs {
		v = a.To

		// Nodes added after the run started are outside this query.
		if v >= len(res.dist) {
			continue
		}

		// Impassable arcs.
		if r.options.InfEdgeThreshold > 0 && a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Guard du + w against int64 overflow. The candidate cannot improve v;
		// it only matters if v ends the run unreached.
		if a.Weight > math.MaxInt64-du {
			if !res.reached[v] {
				r.overflowed = append(r.overflowed, overflowArc{from: u, to: v, weight: a.Weight})
			}
			continue
		}
		candidate = du + a.Weight

		if candidate > r.options.MaxDistance {
			continue
		}

		switch {
		case !res.reached[v] || candidate < res.dist[v]:
			// Strictly better path: replace the predecessor set.
			res.dist[v] = candidate
			res.reached[v] = true
			res.preds[v] = []int{u}
			heap.Push(&r.pq, &nodeItem{id: v, dist: candidate})
		case candidate == res.dist[v]:
			// Tying path: record u as an additional predecessor.
			if v == res.source || v == u || slices.Contains(res.preds[v], u) {
				continue
			}
			res.preds[v] = append(res.preds[v], u)
		}
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int   // node ID
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
