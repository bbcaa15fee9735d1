package cubealg

import "github.com/SeamusWaldron/cubealg/pkg/types"

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubealg.R, cubealg.U, cubealg.RPrime, cubealg.UPrime)
var (
	// Right face moves
	R      = Move{Base: types.BaseR, Turn: CW}     // Right clockwise
	RPrime = Move{Base: types.BaseR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Base: types.BaseR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Base: types.BaseL, Turn: CW}     // Left clockwise
	LPrime = Move{Base: types.BaseL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Base: types.BaseL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Base: types.BaseU, Turn: CW}     // Up clockwise
	UPrime = Move{Base: types.BaseU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Base: types.BaseU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Base: types.BaseD, Turn: CW}     // Down clockwise
	DPrime = Move{Base: types.BaseD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Base: types.BaseD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Base: types.BaseF, Turn: CW}     // Front clockwise
	FPrime = Move{Base: types.BaseF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Base: types.BaseF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Base: types.BaseB, Turn: CW}     // Back clockwise
	BPrime = Move{Base: types.BaseB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Base: types.BaseB, Turn: Double} // Back 180

	// Rotations
	X = Move{Base: types.BaseX, Turn: CW}
	Y = Move{Base: types.BaseY, Turn: CW}
	Z = Move{Base: types.BaseZ, Turn: CW}
)

// Sexy move: R U R' U' - one of the most common triggers
var SexyMove = []Move{R, U, RPrime, UPrime}

// Sledgehammer: R' F R F'
var Sledgehammer = []Move{RPrime, F, R, FPrime}

// Sune: R U R' U R U2 R'
var Sune = []Move{R, U, RPrime, U, R, U2, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
