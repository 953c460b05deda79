// Package annealtsp finds short round trips through planar cities with
// simulated annealing.
//
// 🚀 What is annealtsp?
//
//	A small, deterministic-by-seed solver for the Euclidean TSP:
//		• Geometry: Euclidean distance and closed-tour cost (paulmach/orb)
//		• Start tours: fair Fisher–Yates shuffle or R-tree nearest neighbour
//		• Moves: random 2-opt segment reversal on a fresh copy
//		• Engine: Metropolis acceptance under a geometric cooling schedule
//
// ✨ Why choose annealtsp?
//
//   - Reproducible – every random draw comes from an injected source
//   - Observable – an OnStep hook sees each iteration
//   - Pure Go – the SQLite run store needs no cgo
//
// Layout:
//
//	tsp/            — points, tours, cost, neighbour move and the annealer
//	tspfile/        — "<id> <x> <y>" reader (TSPLIB-compatible) and result report
//	runstore/       — recorded runs in memory or SQLite
//	cmd/tspanneal/  — command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	the unit square visited A→B→C→D costs 4; any crossing order costs more.
//
//	go install github.com/katalvlaran/annealtsp/cmd/tspanneal@latest
package annealtsp
