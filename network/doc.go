// SPDX-License-Identifier: MIT

// Package network reads and writes road network definitions and turns them
// into a core.Graph.
//
// Two input forms are supported. A YAML document (Decode, LoadFile):
//
//	name: maharashtra
//	speed: 60
//	cities: [Pune, Lonavala, Mumbai]
//	roads:
//	  - {from: Pune, to: Lonavala, distance: 65}
//	  - {from: Lonavala, to: Mumbai, distance: 85}
//
// and roads typed at the interactive prompt as "city1 city2 distance",
// terminated by "done" (ParseRoadFields, RoadTerminator).
//
// Cities are registered in document order, so node IDs follow that order, and
// roads are added in document order, which fixes tie-break order downstream.
//
// Errors:
//
//   - ErrNoCities          definition lists no cities.
//   - ErrDuplicateCity     a city name appears twice.
//   - ErrUnknownCity       a road references an undeclared city.
//   - ErrNegativeDistance  a road distance is below zero.
//   - ErrBadSpeed          speed is present but not positive.
//   - ErrMalformedRoad     a typed road is not "city1 city2 distance".
package network
