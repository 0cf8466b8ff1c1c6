// SPDX-License-Identifier: MIT

// Package paths enumerates every minimal path recorded in a predecessor-set
// graph produced by package dijkstra.
//
// Enumeration is a depth-first backtracking walk from the destination towards
// the source over the predecessor relation:
//
//  1. push the current node onto a shared stack;
//  2. if it is the source, the reversed stack is one complete path: emit it;
//  3. otherwise recurse into every predecessor in recorded order;
//  4. pop the node before returning, whichever branch was taken.
//
// Key features:
//
//   - Enumerate(preds, source, destination): lazy iter.Seq[Path]; stop early by
//     breaking out of the range loop.
//   - Collect(preds, source, destination): every path, materialised.
//   - Count(preds, source, destination): number of paths without building them.
//   - source == destination yields exactly one single-node path.
//
// Cycle safety:
//
//	With only positive weights the predecessor relation is a DAG: every
//	predecessor is strictly closer to the source. Zero-weight edges can create
//	mutual ties (u lists v and v lists u). Enumerate skips any predecessor that
//	is already on the current stack, so it always terminates and only emits
//	simple paths. Count has no stack and reports ErrCyclicPredecessors instead.
//
// Complexity:
//
//   - Time:   O(P·L) for P paths of length L, plus dead-end exploration.
//   - Memory: O(L) for the stack; each emitted Path is a fresh allocation.
//
// Errors:
//
//   - ErrNilPredecessors     if preds is nil.
//   - ErrCyclicPredecessors  from Count when the relation has a cycle.
//   - ErrCountOverflow       from Count when the total exceeds uint64.
//   - ErrBrokenPath          from Path.Weight when consecutive nodes are not adjacent.
package paths
