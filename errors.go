package cubealg

import (
	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

// Sentinel errors for the cubealg package. Match them with errors.Is.
var (
	// Parsing errors
	ErrNoMoves = notation.ErrNoMoves

	// Expansion errors
	ErrUnknownAlgorithm = algorithm.ErrUnknownAlgorithm
	ErrMaxDepth         = algorithm.ErrMaxDepth

	// Catalogue errors
	ErrDuplicateID = catalogue.ErrDuplicateID
	ErrInvalidStep = catalogue.ErrInvalidStep
	ErrMissingRef  = catalogue.ErrMissingRef
)
