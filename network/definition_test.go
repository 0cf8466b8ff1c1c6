// SPDX-License-Identifier: MIT
package network_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/network"
)

func TestLoadFile_Testdata(t *testing.T) {
	def, err := network.LoadFile(filepath.Join("testdata", "maharashtra.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "maharashtra", def.Name)
	assert.Equal(t, 60.0, def.Speed)
	assert.Len(t, def.Cities, 6)
	assert.Len(t, def.Roads, 6)

	g, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())

	id, err := g.IDForName("Goa")
	require.NoError(t, err)
	assert.Equal(t, 5, id, "IDs follow document order")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := network.LoadFile(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", network.ErrNoCities},
		{"no cities", "cities: []\n", network.ErrNoCities},
		{"duplicate", "cities: [A, A]\n", network.ErrDuplicateCity},
		{"unknown", "cities: [A]\nroads:\n  - {from: A, to: B, distance: 1}\n", network.ErrUnknownCity},
		{"negative", "cities: [A, B]\nroads:\n  - {from: A, to: B, distance: -4}\n", network.ErrNegativeDistance},
		{"speed", "speed: -1\ncities: [A]\n", network.ErrBadSpeed},
		{"empty name", "cities: [\"\"]\n", core.ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := network.Decode(strings.NewReader("cities: [A]\nhighways: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highways")
}

func TestDecode_SelfLoopRoad(t *testing.T) {
	def, err := network.Decode(strings.NewReader("cities: [A, B]\nroads:\n  - {from: A, to: A, distance: 5}\n  - {from: A, to: B, distance: 2}\n"))
	require.NoError(t, err)

	g, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	_, err = def.Build(core.WithoutLoops())
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestEncode_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("A")
	_, _ = g.AddNode("B")
	require.NoError(t, g.AddEdge(0, 1, 7))

	def := network.FromGraph(g, "pair", 30)
	var buf bytes.Buffer
	require.NoError(t, def.Encode(&buf))

	back, err := network.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, def, back)
}
