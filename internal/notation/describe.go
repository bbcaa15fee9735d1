package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Reference frame: facing the front face, top face up.
//
// Mapping (clockwise, counter-clockwise):
//
//	R  -> "R up", "R down"          L -> "L down", "L up"
//	U  -> "U left", "U right"       D -> "D right", "D left"
//	F  -> "F clockwise", ...        B -> "B anticlockwise", ...
//	M  -> "M down", "M up"          E -> "E right", "E left"
//	x  -> "rotate cube up", ...     y -> "rotate cube left", ...
//
// Wide turns read like their face turn with "(2 layers)" appended.
var descriptions = map[types.Base][2]string{
	types.BaseR: {"R up", "R down"},
	types.BaseL: {"L down", "L up"},
	types.BaseU: {"U left", "U right"},
	types.BaseD: {"D right", "D left"},
	types.BaseF: {"F clockwise", "F anticlockwise"},
	types.BaseB: {"B anticlockwise", "B clockwise"},

	types.BaseM: {"M down", "M up"},
	types.BaseE: {"E right", "E left"},
	types.BaseS: {"S clockwise", "S anticlockwise"},

	types.BaseX: {"rotate cube up", "rotate cube down"},
	types.BaseY: {"rotate cube left", "rotate cube right"},
	types.BaseZ: {"rotate cube clockwise", "rotate cube anticlockwise"},
}

var wideToFace = map[types.Base]types.Base{
	types.BaseRw: types.BaseR,
	types.BaseLw: types.BaseL,
	types.BaseUw: types.BaseU,
	types.BaseDw: types.BaseD,
	types.BaseFw: types.BaseF,
	types.BaseBw: types.BaseB,
}

// Describe returns a plain-language description of a move, as seen from the
// front. Half turns use the clockwise wording with "x 2".
func Describe(m types.Move) string {
	base := m.Base
	wide := false
	if face, ok := wideToFace[base]; ok {
		base = face
		wide = true
	}

	d, ok := descriptions[base]
	if !ok {
		return m.Notation()
	}

	var s string
	switch m.Turn {
	case types.TurnCW:
		s = d[0]
	case types.TurnCCW:
		s = d[1]
	case types.Turn180:
		s = d[0] + " x 2"
	default:
		return m.Notation()
	}

	if wide {
		s = strings.ToLower(s[:1]) + s[1:] + " (2 layers)"
	}
	return s
}

// DescribeSequence formats moves as a comma-separated description string.
func DescribeSequence(moves []types.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
