// Package cityroute finds every shortest road route between two cities of an
// undirected, non-negatively weighted road network, together with the
// estimated travel time at a given average speed.
//
// 🚀 What is cityroute?
//
//	A small, thread-safe library plus a command-line shell:
//		• Graph primitives: named cities, weighted roads, parallel roads kept
//		• Shortest paths: Dijkstra recording every tied predecessor
//		• Path enumeration: every minimal path, lazily, as an iter.Seq
//		• Route queries: distance, paths and hours in one call
//		• Network files: YAML definitions and "city1 city2 distance" lines
//
// Packages:
//
//	core/          — Graph, Node, Arc, Edge; thread-safe construction and lookup
//	dijkstra/      — single-source distances and all-predecessor sets
//	paths/         — enumeration and counting of minimal paths
//	route/         — Finder: the end-to-end query
//	network/       — YAML network definitions and road-line parsing
//	cmd/cityroute/ — interactive menu and one-shot query shell
//
// Quick ASCII example:
//
//	       Lonavala
//	   65 /        \ 85
//	  Pune          Mumbai
//	   80 \        / 70
//	       Khopoli
//
//	Pune → Mumbai: 150 km along two paths; 2.50 hours at 60 km/hr.
//
//	go install github.com/katalvlaran/cityroute/cmd/cityroute@latest
package cityroute
