// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Arc, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a node name is the empty string.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateName indicates that a node with the same name already exists.
	ErrDuplicateName = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node ID or name.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop on a graph built WithoutLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node is a named location.
//
// ID is dense (0..V-1) and assigned by AddNode; Name is unique within the Graph.
type Node struct {
	ID   int
	Name string
}

// Arc is one direction of an undirected edge as seen from its owning node.
type Arc struct {
	// To is the neighbor node ID.
	To int

	// Weight is the distance of the underlying edge.
	Weight int64
}

// Edge is an inserted undirected connection between From and To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops (edges from a node to itself) with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is the in-memory road network.
//
// mu protects every field below it. adjacency[id] holds the arcs of node id in
// insertion order; names maps a node name to its ID.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow self-loops

	nodes     []Node
	names     map[string]int
	edges     []Edge
	adjacency [][]Arc
}

// NewGraph creates an empty Graph. By default self-loops are accepted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		names:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
