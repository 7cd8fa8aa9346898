package main

import (
	"fmt"
	"os"
)

func main() {
	root, c := newRootCmd()
	err := root.Execute()
	if closeErr := c.close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to close logs: %v\n", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
