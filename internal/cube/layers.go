package cube

// Layer checks relative to the current centers.
// Side faces are read with U at the top, so rows 1 and 2 (positions 3-8)
// belong to the first two layers.

// IsTopOriented checks that every U sticker matches the U center.
func (c Cube) IsTopOriented() bool {
	center := c.Facelets[U][4]
	for i := 0; i < 9; i++ {
		if c.Facelets[U][i] != center {
			return false
		}
	}
	return true
}

// IsF2LSolved checks that the bottom two layers are solved: the whole D face
// and the lower two rows of every side face match their centers.
func (c Cube) IsF2LSolved() bool {
	center := c.Facelets[D][4]
	for i := 0; i < 9; i++ {
		if c.Facelets[D][i] != center {
			return false
		}
	}

	for _, face := range []Face{F, R, B, L} {
		center := c.Facelets[face][4]
		for i := 3; i < 9; i++ {
			if c.Facelets[face][i] != center {
				return false
			}
		}
	}

	return true
}
