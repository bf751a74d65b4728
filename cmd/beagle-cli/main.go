package main

import (
	"fmt"
	"os"

	"github.com/yndnr/beagle-go/internal/cli/command"
)

func main() {
	app := command.App()

	// Authentication failures carry their exit code and are handled
	// inside Run; anything else is reported without a failing status.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
