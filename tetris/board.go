package tetris

const (
	boardWidth  = 10
	boardHeight = 20
	bufferRows  = 4

	// stackHeight includes the hidden rows above the visible board
	// where pieces spawn and rotate before entering view.
	stackHeight = boardHeight + bufferRows
)

// Exported board dimensions for renderers.
const (
	BoardWidth  = boardWidth
	BoardHeight = boardHeight
)

// emptyStack returns an all-empty buffered stack. Rows are indexed
// bottom-up: row 0 is the lowest row, rows 20-23 are the hidden buffer.
func emptyStack() [][]Shape {
	stack := make([][]Shape, stackHeight)
	for i := range stack {
		stack[i] = make([]Shape, boardWidth)
	}
	return stack
}

// isValidPosition reports whether every filled cell of grid placed with
// its top-left at x,y is inside the buffered stack and lands on an
// empty cell. This is the single collision check used for spawning,
// movement, rotation, ghost probing and hard drops.
//
//	.	0 1 2 3 4 5 6 7 8 9			0 1 2
//	21	. . . O . . . . . .		0	X O X
//	20	. . O O O . . . . .		1	O O O
//	19	. . . . . . . . . .		2	X X X
func isValidPosition(stack [][]Shape, grid [][]bool, x, y int) bool {
	for ir, row := range grid {
		for ic, cell := range row {
			if !cell {
				continue
			}
			// rows count down from the top-left of the grid
			yPos := y - ir
			xPos := x + ic
			if xPos < 0 || xPos >= boardWidth || yPos < 0 || yPos >= stackHeight {
				return false
			}
			if stack[yPos][xPos] != 0 {
				return false
			}
		}
	}
	return true
}

// place returns a new stack with the tetromino's filled cells written
// as its shape value. The input stack is not touched.
func place(stack [][]Shape, t *Tetromino) [][]Shape {
	next := make([][]Shape, len(stack))
	for i := range stack {
		next[i] = make([]Shape, boardWidth)
		copy(next[i], stack[i])
	}
	for ir, row := range t.Grid {
		for ic, cell := range row {
			if !cell {
				continue
			}
			yPos := t.Y - ir
			xPos := t.X + ic
			if yPos >= 0 && yPos < stackHeight && xPos >= 0 && xPos < boardWidth {
				next[yPos][xPos] = t.Shape
			}
		}
	}
	return next
}

// clearLines removes every complete visible row and pads the stack back
// to full height with empty rows at the top. It returns the cleared row
// indices in ascending (bottom-up) order, or nil together with the
// original stack when nothing cleared. Buffer rows never clear: line
// completion is a property of the visible board.
func clearLines(stack [][]Shape) ([][]Shape, []int) {
	var cleared []int
	next := make([][]Shape, 0, stackHeight)
	for y, row := range stack {
		if y < boardHeight && rowComplete(row) {
			cleared = append(cleared, y)
			continue
		}
		kept := make([]Shape, boardWidth)
		copy(kept, row)
		next = append(next, kept)
	}
	if len(cleared) == 0 {
		return stack, nil
	}
	for len(next) < stackHeight {
		next = append(next, make([]Shape, boardWidth))
	}
	return next, cleared
}

func rowComplete(row []Shape) bool {
	for _, cell := range row {
		if cell == 0 {
			return false
		}
	}
	return true
}

// ghostY probes downward from the tetromino's row one step at a time
// and returns the last row where it still fits.
func ghostY(stack [][]Shape, t *Tetromino) int {
	y := t.Y
	for isValidPosition(stack, t.Grid, t.X, y-1) {
		y--
	}
	return y
}
