// cubealg - command-line toolkit for 3x3 cube notation and algorithm catalogues.
package main

import (
	"github.com/SeamusWaldron/cubealg/internal/cli"
)

func main() {
	cli.Execute()
}
