// SPDX-License-Identifier: MIT
// Package paths defines the Path type, the Predecessors source interface,
// visitation states and sentinel errors.
package paths

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/cityroute/core"
)

// Visitation states used by Count.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the recursion stack.
	Black        // Black: fully counted.
)

var (
	// ErrNilPredecessors is returned when a nil Predecessors source is passed.
	ErrNilPredecessors = errors.New("paths: predecessors are nil")

	// ErrCyclicPredecessors indicates a cycle in the predecessor relation
	// (only possible with zero-weight ties).
	ErrCyclicPredecessors = errors.New("paths: cycle in predecessor relation")

	// ErrCountOverflow indicates more minimal paths than fit in uint64.
	ErrCountOverflow = errors.New("paths: path count overflows uint64")

	// ErrBrokenPath indicates two consecutive path nodes are not joined by an edge.
	ErrBrokenPath = errors.New("paths: consecutive nodes are not adjacent")
)

// Predecessors exposes, for each node, the nodes that precede it on some
// minimal path from the source. *dijkstra.Result satisfies it.
type Predecessors interface {
	Predecessors(v int) []int
}

// Path is an ordered sequence of node IDs from source to destination inclusive.
type Path []int

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Weight sums the edge weights along p in g, taking the lightest edge where
// parallel edges exist. A single-node path weighs 0.
func (p Path) Weight(g *core.Graph) (int64, error) {
	var total int64
	for i := 1; i < len(p); i++ {
		w, ok := g.ArcWeight(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("%w: %d–%d", ErrBrokenPath, p[i-1], p[i])
		}
		if w > math.MaxInt64-total {
			return 0, fmt.Errorf("paths: weight of %v overflows int64", p)
		}
		total += w
	}

	return total, nil
}

// Names renders p through g as display names; unknown IDs render as "?".
func (p Path) Names(g *core.Graph) []string {
	out := make([]string, len(p))
	for i, id := range p {
		name, err := g.Name(id)
		if err != nil {
			name = "?"
		}
		out[i] = name
	}

	return out
}

// Format joins the display names of p with sep, e.g. "A --> B --> C".
func (p Path) Format(g *core.Graph, sep string) string {
	return strings.Join(p.Names(g), sep)
}
