// Package cubealg provides a Go library for 3x3 cube move notation, state
// simulation and algorithm catalogues.
//
// # Features
//
//   - Notation parsing for face, wide, slice and rotation moves
//   - Cube state simulation with solved and layer checks
//   - Catalogue algorithms that reference other algorithms
//   - Cancellation of moves across step boundaries
//   - Problem-state derivation for OLL and PLL cases
//
// # Quick Start
//
// Expand a catalogue algorithm and look at the state it solves:
//
//	engine, err := cubealg.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	x, err := engine.Expand("oll-45")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Moves:", x.Notation())
//
//	p, err := engine.Derive("oll-45", cubealg.RotNone)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Orientation:", p.Orientation)
//
// # Standalone Cube Simulation
//
// The Cube type can be used without a catalogue:
//
//	cube := cubealg.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubealg.R, cubealg.U, cubealg.RPrime, cubealg.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("r U M' x2")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Catalogues
//
// Without options the engine uses the built-in catalogue. Use
// WithCatalogueFile or WithCatalogueYAML to load another one:
//
//	engine, err := cubealg.New(
//	    cubealg.WithCatalogueFile("algs.yaml"),
//	    cubealg.WithMaxDepth(4),
//	)
package cubealg
