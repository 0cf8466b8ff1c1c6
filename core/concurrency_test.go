// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// are all recorded on both endpoints.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	hub, err := g.AddNode("Hub")
	require.NoError(t, err)
	ids := make([]int, num)
	for i := range ids {
		ids[i], err = g.AddNode(fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(hub, id, int64(id)))
		}(ids[i])
	}
	wg.Wait()

	nbs, err := g.Neighbors(hub)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadsDuringWrites mixes AddNode with Nodes/Neighbors reads
// to verify no races or panics occur.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("Base")
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			id, aerr := g.AddNode(fmt.Sprintf("N%d", i))
			if aerr == nil {
				_ = g.AddEdge(0, id, 1)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Nodes()
			_, _ = g.Neighbors(0)
		}()
	}
	wg.Wait()

	require.Equal(t, rounds+1, g.NodeCount())
}
