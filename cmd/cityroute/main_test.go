// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNetwork = filepath.Join("..", "..", "network", "testdata", "maharashtra.yaml")

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseFlags([]string{"-network", "n.yaml", "-from", "A", "-to", "B", "-speed", "40", "-verbose"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, config{networkFile: "n.yaml", from: "A", to: "B", speed: 40, verbose: true}, cfg)
}

func TestParseFlags_Rejects(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":  {"-bogus"},
		"bad speed":     {"-speed", "fast"},
		"positional":    {"extra"},
		"from only":     {"-network", "n.yaml", "-from", "A"},
		"query no file": {"-from", "A", "-to", "B"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := parseFlags(args, &stderr)
			assert.Error(t, err)
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRun_OneShot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{networkFile: testNetwork, from: "Pune", to: "Mumbai"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Shortest Distance from Pune to Mumbai = 150 km")
	assert.Contains(t, out, "All shortest paths:")
	assert.Contains(t, out, "Pune --> Lonavala --> Mumbai")
	assert.Contains(t, out, "Pune --> Khopoli --> Mumbai")
	assert.Contains(t, out, "Estimated Travel Time (at 60 km/hr): 2.50 hours")
	assert.Empty(t, stderr.String(), "logging is off without -verbose")
}

func TestRun_OneShotSpeedOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{networkFile: testNetwork, from: "Pune", to: "Mumbai", speed: 75}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Estimated Travel Time (at 75 km/hr): 2.00 hours")
}

func TestRun_OneShotNoPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{networkFile: testNetwork, from: "Pune", to: "Goa"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "No path exists between Pune and Goa.")
	assert.NotContains(t, stdout.String(), "Shortest Distance")
}

func TestRun_OneShotUnknownCity(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{networkFile: testNetwork, from: "Pune", to: "Delhi"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Delhi")
	assert.Empty(t, stdout.String())
}

func TestRun_MissingNetworkFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{networkFile: "absent.yaml", from: "A", to: "B"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "absent.yaml")
}

func TestRun_VerboseLogsQuery(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{networkFile: testNetwork, from: "Pune", to: "Nashik", verbose: true}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)

	logs := stderr.String()
	assert.Contains(t, logs, "component=cityroute action=load_network")
	assert.Contains(t, logs, "cities=6 roads=6")
	assert.Contains(t, logs, "action=query query_id=")
	assert.Contains(t, logs, "from=Pune to=Nashik reachable=true distance=210 paths=1")
}
