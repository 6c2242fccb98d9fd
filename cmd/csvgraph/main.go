// Command csvgraph imports a delimited-text graph file into an in-memory
// graph and prints what was built.
//
// Usage:
//
//	csvgraph import edges.csv
//	csvgraph import --format matrix --node-id --edge-weights --weighted --loops m.csv
//	csvgraph import --config import.yaml - < data.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
