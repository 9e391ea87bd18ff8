package main

import (
	"os"

	"github.com/go-go-golems/design-pattern-menu/pkg/output"
)

func main() {
	if err := Execute(); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
