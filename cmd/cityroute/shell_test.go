// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInteractive(t *testing.T, cfg config, input string) (int, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(cfg, strings.NewReader(input), &stdout, &stderr)

	return code, stdout.String()
}

func TestShell_TypedNetwork(t *testing.T) {
	input := strings.Join([]string{
		"4",
		"Pune Lonavala Khopoli Mumbai",
		"Pune Lonavala 65",
		"Lonavala Mumbai 85",
		"Pune Delhi 10",
		"Pune Khopoli 80",
		"Khopoli Mumbai 70",
		"done",
		"60",
		"1",
		"2", "Pune", "Mumbai",
		"3",
	}, "\n")

	code, out := runInteractive(t, config{}, input)
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Enter number of cities: ")
	assert.Contains(t, out, "Type 'done' to finish entering roads.")
	assert.Equal(t, 1, strings.Count(out, "Invalid city names, try again."))
	assert.Contains(t, out, "Enter average travel speed (km/hr): ")
	assert.Contains(t, out, "CITY ROUTE FINDER MENU")
	assert.Contains(t, out, "List of Cities:")
	assert.Contains(t, out, "4. Mumbai")
	assert.Contains(t, out, "Shortest Distance from Pune to Mumbai = 150 km")
	assert.Contains(t, out, "Pune --> Lonavala --> Mumbai")
	assert.Contains(t, out, "Pune --> Khopoli --> Mumbai")
	assert.Contains(t, out, "Estimated Travel Time (at 60 km/hr): 2.50 hours")
	assert.Contains(t, out, "Exiting City Route Finder. Thank you!")
}

func TestShell_LoadedNetworkSkipsPrompts(t *testing.T) {
	code, out := runInteractive(t, config{networkFile: testNetwork}, "2 Pune Goa\n3\n")
	require.Equal(t, 0, code)

	assert.NotContains(t, out, "Enter number of cities")
	assert.NotContains(t, out, "Enter average travel speed")
	assert.Contains(t, out, "No path exists between Pune and Goa.")
}

func TestShell_InvalidChoiceAndCity(t *testing.T) {
	code, out := runInteractive(t, config{networkFile: testNetwork}, "7\n2 Pune Delhi\n3\n")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Invalid choice! Please try again.")
	assert.Contains(t, out, "Invalid city name entered!")
}

func TestShell_EndOfInputExitsCleanly(t *testing.T) {
	code, out := runInteractive(t, config{networkFile: testNetwork}, "1\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "1. Pune")
}

func TestShell_BadCityCount(t *testing.T) {
	code, out := runInteractive(t, config{}, "zero\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "number of cities must be a positive integer")
}

func TestShell_PromptsRecover(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"A A B",
		"A B far",
		"A B 10",
		"A A 5",
		"done",
		"quick", "0",
		"2", "A", "B",
		"3",
	}, "\n")

	code, out := runInteractive(t, config{}, input)
	require.Equal(t, 0, code)

	assert.Contains(t, out, `City "A" already entered, try again.`)
	assert.Contains(t, out, "Invalid distance, try again.")
	assert.NotContains(t, out, "Invalid road", "a self-loop road is accepted")
	assert.Contains(t, out, "Invalid speed, try again: ")
	assert.Contains(t, out, "Shortest Distance from A to B = 10 km")
	assert.Contains(t, out, "A --> B")
	assert.Contains(t, out, "Estimated Travel Time unavailable (at 0 km/hr)")
}
