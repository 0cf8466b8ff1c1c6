// SPDX-License-Identifier: MIT
package network_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/network"
)

func TestParseRoadFields(t *testing.T) {
	r, err := network.ParseRoadFields([]string{"Pune", "Mumbai", "150"})
	require.NoError(t, err)
	assert.Equal(t, network.Road{From: "Pune", To: "Mumbai", Distance: 150}, r)

	r, err = network.ParseRoadFields([]string{"Pune", "Pune", "0"})
	require.NoError(t, err)
	assert.Equal(t, network.Road{From: "Pune", To: "Pune"}, r)
}

func TestParseRoadFields_Malformed(t *testing.T) {
	for _, line := range []string{"", "Pune", "Pune Mumbai", "Pune Mumbai far", "a b 1 2"} {
		_, err := network.ParseRoadFields(strings.Fields(line))
		assert.ErrorIs(t, err, network.ErrMalformedRoad, "line %q", line)
	}

	_, err := network.ParseRoadFields([]string{"Pune", "Mumbai", "-3"})
	assert.ErrorIs(t, err, network.ErrNegativeDistance)
}
