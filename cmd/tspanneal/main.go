// Command tspanneal reads a city file, anneals a short round trip through all
// cities and prints the best tour found.
//
// Usage:
//
//	tspanneal -file berlin52.tsp [-iterations 100000] [-temp 10000] [-cooling 0.9995]
//	          [-min-temp 0] [-init random|nearest] [-polish] [-seed 0] [-db runs.db] [-summary] [-v]
//	tspanneal -db runs.db -history 10
//
// Without -file the program prompts for a filename on stdin.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
