// SPDX-License-Identifier: MIT
// Package paths implements backtracking enumeration and counting of minimal
// paths over a predecessor relation.
package paths

import (
	"fmt"
	"iter"
	"math/bits"
)

// pathWalker encapsulates state during one enumeration.
type pathWalker struct {
	preds   Predecessors     // predecessor relation, read-only
	source  int              // walk terminates here
	stack   []int            // destination … current node
	onStack map[int]struct{} // membership of stack, for cycle safety
	yield   func(Path) bool  // consumer; false stops the walk
}

// Enumerate returns a lazy sequence of every minimal path from source to
// destination recorded in preds. Paths are produced in depth-first order
// following the recorded predecessor order. Each yielded Path is a fresh slice
// owned by the caller.
//
// If destination has no predecessors and is not the source the sequence is
// empty; callers decide beforehand whether destination is reachable.
func Enumerate(preds Predecessors, source, destination int) (iter.Seq[Path], error) {
	if preds == nil {
		return nil, ErrNilPredecessors
	}

	return func(yield func(Path) bool) {
		w := &pathWalker{
			preds:   preds,
			source:  source,
			onStack: make(map[int]struct{}),
			yield:   yield,
		}
		w.visit(destination)
	}, nil
}

// Collect materialises every path of Enumerate.
func Collect(preds Predecessors, source, destination int) ([]Path, error) {
	seq, err := Enumerate(preds, source, destination)
	if err != nil {
		return nil, err
	}

	var out []Path
	for p := range seq {
		out = append(out, p)
	}

	return out, nil
}

// visit pushes n, emits or recurses, and pops n before returning.
// It returns false once the consumer asked to stop.
func (w *pathWalker) visit(n int) bool {
	// 1. Push
	w.stack = append(w.stack, n)
	w.onStack[n] = struct{}{}

	// 2. Base case or recursion over predecessors in recorded order
	cont := true
	if n == w.source {
		cont = w.yield(w.reversed())
	} else {
		var p int
		for _, p = range w.preds.Predecessors(n) {
			if _, cyclic := w.onStack[p]; cyclic {
				continue
			}
			if cont = w.visit(p); !cont {
				break
			}
		}
	}

	// 3. Pop (backtrack) regardless of branch
	delete(w.onStack, n)
	w.stack = w.stack[:len(w.stack)-1]

	return cont
}

// reversed copies the stack into source→destination order.
func (w *pathWalker) reversed() Path {
	out := make(Path, len(w.stack))
	for i, id := range w.stack {
		out[len(w.stack)-1-i] = id
	}

	return out
}

// Count returns how many paths Enumerate would produce, memoising per-node
// totals so shared suffixes are counted once.
//
// Errors:
//   - ErrNilPredecessors if preds is nil.
//   - ErrCyclicPredecessors if the relation reachable from destination has a cycle.
//   - ErrCountOverflow if the total exceeds math.MaxUint64.
//
// Complexity: O(V' + E') over the reachable part of the predecessor relation.
func Count(preds Predecessors, source, destination int) (uint64, error) {
	if preds == nil {
		return 0, ErrNilPredecessors
	}

	c := &pathCounter{
		preds:  preds,
		source: source,
		state:  make(map[int]int),
		memo:   make(map[int]uint64),
	}

	return c.count(destination)
}

// pathCounter holds memoised per-node path counts.
type pathCounter struct {
	preds  Predecessors
	source int
	state  map[int]int    // White/Gray/Black
	memo   map[int]uint64 // paths from source to node
}

func (c *pathCounter) count(n int) (uint64, error) {
	switch c.state[n] {
	case Black:
		return c.memo[n], nil
	case Gray:
		return 0, fmt.Errorf("%w: at node %d", ErrCyclicPredecessors, n)
	}
	if n == c.source {
		c.state[n], c.memo[n] = Black, 1

		return 1, nil
	}

	c.state[n] = Gray
	var total, sub, carry uint64
	var err error
	for _, p := range c.preds.Predecessors(n) {
		if sub, err = c.count(p); err != nil {
			return 0, err
		}
		if total, carry = bits.Add64(total, sub, 0); carry != 0 {
			return 0, ErrCountOverflow
		}
	}
	c.state[n], c.memo[n] = Black, total

	return total, nil
}
