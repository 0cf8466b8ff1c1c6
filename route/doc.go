// SPDX-License-Identifier: MIT

// Package route answers "every shortest route from X to Y" queries over a
// core.Graph road network.
//
// A Finder composes the engine (package dijkstra) with the enumerator (package
// paths) for one (source, destination) request and derives a travel-time
// estimate from an average speed:
//
//	f, _ := route.NewFinder(g)
//	res, err := f.FindByName("Pune", "Nashik", 60)
//	switch {
//	case errors.Is(err, route.ErrUnknownNode):   // bad city name, nothing computed
//	case errors.Is(err, route.ErrInvalidRate):   // res is valid, res.Hours is not
//	case err != nil:                             // engine failure
//	case !res.Reachable:                         // no path exists
//	default:                                     // res.Distance, res.Paths, res.Hours
//	}
//
// Result variants:
//
//   - Reachable: Distance and every minimal path (Paths, source→destination).
//   - Not reachable: a valid result, never an error and never an empty-paths success.
//
// Errors:
//
//   - ErrNilGraph     NewFinder(nil).
//   - ErrUnknownNode  unknown source/destination ID or name.
//   - ErrInvalidRate  avgSpeed is not a positive finite number; returned together
//     with a fully populated Result.
//
// Concurrency:
//
//	A Finder keeps no per-query state. Concurrent queries against one Finder
//	are safe as long as the graph is no longer being modified.
package route
