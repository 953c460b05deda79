// Package tspfile reads point sets for the annealer and writes its results.
//
// Input format (one city per record line):
//
//	<id> <x> <y>
//
// A line is a record iff its first non-blank byte is an ASCII digit, so TSPLIB
// headers (NAME:, DIMENSION:, NODE_COORD_SECTION, EOF, ...) are skipped.
// External ids are 1-based; Read stores id−1 in tsp.Point.ID.
//
// Output:
//
//	Best tour cost: <cost>
//	Optimal tour sequence: <id> <id> ...
//
// where ids are external (1-based) in visiting order.
package tspfile
