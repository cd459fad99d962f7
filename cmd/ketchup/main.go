package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/ketchup/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, "ketchup:", err)
		os.Exit(1)
	}
}
