package main

import (
	"fmt"
	"os"

	"github.com/pkoval/skelgen"
)

func main() {
	if err := skelgen.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
