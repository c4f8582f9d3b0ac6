package main

import (
	"fmt"

	"authortally/internal/services"
)

// Demo entry point: feeds a fixed example list through normalization and
// aggregation and prints the result. The HTTP server lives in cmd/server.
func main() {
	names := []any{"Doe J.", "Smith J.", "Johnson A.", "Williams A.", "Brown B.", "Smith J."}

	keys := services.CleanAuthorNames(names)
	fmt.Println(keys)

	fmt.Println("Count\tName")
	for _, row := range services.CountAuthors(keys) {
		fmt.Printf("%d\t%s\n", row.Count, row.Name)
	}
}
