// SPDX-License-Identifier: MIT
package route

import (
	"errors"

	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/paths"
)

// Sentinel errors returned by Finder.
var (
	// ErrNilGraph indicates NewFinder was given a nil graph.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrUnknownNode indicates the source or destination does not exist.
	ErrUnknownNode = errors.New("route: unknown node")

	// ErrInvalidRate indicates a non-positive, NaN or infinite average speed.
	ErrInvalidRate = errors.New("route: average speed must be a positive finite number")
)

// Result is the answer to one query.
type Result struct {
	Source      int
	Destination int

	// Reachable is false when no path exists; Distance, Paths and Hours are then zero.
	Reachable bool

	// Distance is the minimum total weight from Source to Destination.
	Distance int64

	// Paths holds every minimal path, in enumeration order.
	Paths []paths.Path

	// Speed is the average speed the estimate was computed with.
	Speed float64

	// Hours is Distance / Speed; zero when the speed was invalid.
	Hours float64
}

// Option configures a Finder.
type Option func(*Finder)

// WithEngineOptions forwards options to every Dijkstra run.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(f *Finder) {
		f.engine = append(f.engine, opts...)
	}
}
