// SPDX-License-Identifier: MIT
// Package dijkstra defines sentinel errors, configuration options and the
// Result returned by Dijkstra.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrDistanceOverflow indicates that a tentative distance would not fit in int64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose shortest distance would exceed this value are
//
//	left unreached. Must be >= 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – arcs with weight >= this threshold are impassable.
//
//	Zero disables the check. Default is 0 (no obstacles): every arc is relaxed.
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which arcs are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which arcs are
// skipped entirely. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options that impose no distance cap and no impassable arcs.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: 0,
	}
}

// Result holds the frozen outcome of one Dijkstra run.
//
// dist[v] is meaningful only when reached[v] is true. preds[v] lists, in
// discovery order and without duplicates, every u with dist[u] + w(u,v) == dist[v].
type Result struct {
	source  int
	dist    []int64
	reached []bool
	preds   [][]int
}

// Source returns the node the distances were computed from.
func (r *Result) Source() int { return r.source }

// Len returns the number of nodes covered by the result (V at the time of the run).
func (r *Result) Len() int { return len(r.dist) }

// Distance returns the shortest distance from the source to v.
// ok is false if v is unreachable or out of range; d is then 0.
func (r *Result) Distance(v int) (d int64, ok bool) {
	if !r.Reachable(v) {
		return 0, false
	}

	return r.dist[v], true
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.reached) && r.reached[v]
}

// Predecessors returns a copy of the predecessor set of v in discovery order.
// The source and unreachable nodes have no predecessors.
func (r *Result) Predecessors(v int) []int {
	if v < 0 || v >= len(r.preds) || len(r.preds[v]) == 0 {
		return nil
	}
	out := make([]int, len(r.preds[v]))
	copy(out, r.preds[v])

	return out
}
