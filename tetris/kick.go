package tetris

// Wall kicks per the guideline rotation system: for every directed
// transition between rotation states there is a fixed ordered list of
// five offsets to try, one table for the I piece and a shared one for
// J, L, T, S and Z. Offsets use the stack's coordinates: positive dy
// is up. Tables are indexed [from][to]; transitions that rotation can
// never produce (0<->2, 1<->3) stay empty.
type kick struct {
	dx, dy int
}

var kicksJLSTZ = [4][4][]kick{
	0: {
		1: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		3: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	1: {
		0: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		2: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	2: {
		1: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		3: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	3: {
		2: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		0: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
}

var kicksI = [4][4][]kick{
	0: {
		1: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		3: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	1: {
		0: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		2: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	2: {
		1: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		3: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
	3: {
		2: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		0: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
}

func kickTable(s Shape, from, to int) []kick {
	switch s {
	case O:
		// the O shape doesn't rotate.
		return nil
	case I:
		return kicksI[from][to]
	default:
		return kicksJLSTZ[from][to]
	}
}

// tryRotate computes the grid for the target rotation and tries each
// kick offset in table order against the current position. The first
// offset that fits wins, so the zero offset always beats a real kick.
// It returns nil when no offset fits, and the tetromino itself when the
// transition has no kick list at all (the O piece).
func tryRotate(stack [][]Shape, t *Tetromino, target int) *Tetromino {
	target = ((target % 4) + 4) % 4
	kicks := kickTable(t.Shape, t.Rotation, target)
	if len(kicks) == 0 {
		return t
	}
	grid := rotatedGrid(t.Shape, target)
	for _, k := range kicks {
		if isValidPosition(stack, grid, t.X+k.dx, t.Y+k.dy) {
			return &Tetromino{
				Shape:    t.Shape,
				Grid:     grid,
				X:        t.X + k.dx,
				Y:        t.Y + k.dy,
				Rotation: target,
			}
		}
	}
	return nil
}
