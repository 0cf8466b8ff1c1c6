// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode, IDForName, Node, Name, HasNode, Nodes, NodeCount.
// Determinism:
//   - IDs are assigned sequentially in AddNode call order.
//   - Nodes() returns nodes sorted by ID asc (which is also insertion order).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode registers a new node named name and returns its ID.
//
// Steps:
//  1. Reject empty names (ErrEmptyName).
//  2. Under write lock, reject names already registered (ErrDuplicateName).
//  3. Assign ID = current node count, append the node and an empty adjacency slot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.names[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Name: name})
	g.adjacency = append(g.adjacency, nil)
	g.names[name] = id

	return id, nil
}

// IDForName resolves a node name to its ID.
// Returns ErrNodeNotFound (wrapped with the name) if no such node exists.
// Complexity: O(1).
func (g *Graph) IDForName(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return id, nil
}

// Node returns the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return Node{}, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// Name returns the display name of node id, or ErrNodeNotFound.
func (g *Graph) Name(id int) (string, error) {
	n, err := g.Node(id)
	if err != nil {
		return "", err
	}

	return n.Name, nil
}

// HasNode reports whether id names an existing node.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(id)
}

// Nodes returns a copy of all nodes in ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns V, the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// hasNodeLocked must be called with mu held (read or write).
func (g *Graph) hasNodeLocked(id int) bool {
	return id >= 0 && id < len(g.nodes)
}
