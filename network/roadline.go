// SPDX-License-Identifier: MIT
package network

import (
	"fmt"
	"strconv"
)

// RoadTerminator ends a sequence of typed roads.
const RoadTerminator = "done"

// ParseRoadFields parses the three fields city1, city2, distance of a typed road.
func ParseRoadFields(fields []string) (Road, error) {
	if len(fields) != 3 {
		return Road{}, fmt.Errorf("%w: want \"city1 city2 distance\", got %d fields", ErrMalformedRoad, len(fields))
	}

	dist, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Road{}, fmt.Errorf("%w: distance: %w", ErrMalformedRoad, err)
	}
	if dist < 0 {
		return Road{}, fmt.Errorf("%w: %s–%s = %d", ErrNegativeDistance, fields[0], fields[1], dist)
	}

	return Road{From: fields[0], To: fields[1], Distance: dist}, nil
}
