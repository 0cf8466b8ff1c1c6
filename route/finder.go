// SPDX-License-Identifier: MIT
package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/paths"
)

// Finder answers shortest-route queries over one graph.
type Finder struct {
	g      *core.Graph
	engine []dijkstra.Option
}

// NewFinder returns a Finder over g.
func NewFinder(g *core.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	f := &Finder{g: g}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Graph returns the underlying graph.
func (f *Finder) Graph() *core.Graph { return f.g }

// FindAllShortestPaths computes the shortest distance and every minimal path
// from source to destination, plus the estimated travel time at avgSpeed.
//
// Steps:
//  1. Validate both IDs (ErrUnknownNode); nothing is computed on failure.
//  2. Run Dijkstra from source.
//  3. Unreachable destination: return the no-path Result with a nil error.
//  4. Enumerate all minimal paths.
//  5. Estimate hours; an invalid speed yields the Result and ErrInvalidRate.
func (f *Finder) FindAllShortestPaths(source, destination int, avgSpeed float64) (*Result, error) {
	// 1) Validate endpoints
	if !f.g.HasNode(source) {
		return nil, fmt.Errorf("%w: source id %d: %w", ErrUnknownNode, source, core.ErrNodeNotFound)
	}
	if !f.g.HasNode(destination) {
		return nil, fmt.Errorf("%w: destination id %d: %w", ErrUnknownNode, destination, core.ErrNodeNotFound)
	}

	// 2) Distances and predecessor sets
	res, err := dijkstra.Dijkstra(f.g, source, f.engine...)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	out := &Result{Source: source, Destination: destination, Speed: avgSpeed}

	// 3) No path exists
	dist, ok := res.Distance(destination)
	if !ok {
		return out, nil
	}
	out.Reachable = true
	out.Distance = dist

	// 4) Every minimal path
	if out.Paths, err = paths.Collect(res, source, destination); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	// 5) Travel time, reported independently of the paths
	if out.Hours, err = EstimateHours(dist, avgSpeed); err != nil {
		return out, err
	}

	return out, nil
}

// FindByName resolves city names and delegates to FindAllShortestPaths.
func (f *Finder) FindByName(source, destination string, avgSpeed float64) (*Result, error) {
	s, err := f.g.IDForName(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}
	d, err := f.g.IDForName(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}

	return f.FindAllShortestPaths(s, d, avgSpeed)
}

// EstimateHours returns distance / avgSpeed.
// avgSpeed must be positive and finite, else ErrInvalidRate.
func EstimateHours(distance int64, avgSpeed float64) (float64, error) {
	if math.IsNaN(avgSpeed) || math.IsInf(avgSpeed, 0) || avgSpeed <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidRate, avgSpeed)
	}

	return float64(distance) / avgSpeed, nil
}
