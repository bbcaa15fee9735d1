package cli

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubealg/internal/cancellation"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/pattern"
)

// renderNet draws c as an unfolded net with U on top, then L F R B, then D.
func renderNet(c cube.Cube, plain bool) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", 6)

	row := func(face cube.Face, r int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(sticker(c.Facelets[face][r*3+col], plain))
		}
	}

	for r := 0; r < 3; r++ {
		sb.WriteString(pad)
		row(cube.U, r)
		sb.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			row(face, r)
		}
		sb.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		sb.WriteString(pad)
		row(cube.D, r)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderTopView draws the top face as seen from above, framed by the side
// strips: back on top, left and right beside, front below.
func renderTopView(p *pattern.DerivedPattern, plain bool) string {
	var sb strings.Builder
	top := p.State.Facelets[cube.U]
	s := p.Sides

	sb.WriteString("  ")
	for _, c := range s.Back {
		sb.WriteString(sticker(c, plain))
	}
	sb.WriteString("\n")
	for r := 0; r < 3; r++ {
		sb.WriteString(sticker(s.Left[r], plain))
		for col := 0; col < 3; col++ {
			sb.WriteString(sticker(top[r*3+col], plain))
		}
		sb.WriteString(sticker(s.Right[r], plain))
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for _, c := range s.Front {
		sb.WriteString(sticker(c, plain))
	}
	sb.WriteString("\n")
	return sb.String()
}

// orientationGlyphs marks where the top color of each position points.
var orientationGlyphs = map[pattern.Orientation]string{
	pattern.Correct:     "●",
	pattern.FacingFront: "v",
	pattern.FacingRight: ">",
	pattern.FacingBack:  "^",
	pattern.FacingLeft:  "<",
	pattern.Unknown:     "?",
}

// renderOrientation draws the orientation vector as a 3x3 grid.
func renderOrientation(o [9]pattern.Orientation) string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(orientationGlyphs[o[r*3+col]])
			if col < 2 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderAnnotated writes an annotated sequence one step per line.
// Cancelled moves are struck through and results highlighted; when current
// is not negative that entry is drawn in reverse video.
func renderAnnotated(ms []cancellation.MoveWithMeta, current int) string {
	var sb strings.Builder
	step := -1
	for i, m := range ms {
		if m.StepIndex != step {
			if step >= 0 {
				sb.WriteString("\n")
			}
			step = m.StepIndex
			label := fmt.Sprintf("%2d ", step+1)
			if m.FromRef() {
				ref := "[" + m.RefID + "]"
				if m.Inverted {
					ref += "'"
				}
				label += refStyle.Render(ref) + " "
			}
			sb.WriteString(stepStyle.Render(label))
		}

		text := m.Move.Notation()
		switch {
		case i == current:
			text = currentStyle.Render(text)
		case m.Cancelled:
			text = cancelledStyle.Render(text)
		case m.IsResult:
			text = resultStyle.Render(text)
		default:
			text = moveStyle.Render(text)
		}
		sb.WriteString(text + " ")
	}
	if step >= 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}
