package tetris

// Shape identifies a tetromino type. The zero value is an empty stack
// cell; the seven piece values double as the color index used by
// renderers.
type Shape uint8

const (
	I Shape = iota + 1
	O
	T
	S
	Z
	J
	L
)

var shapeNames = map[Shape]string{I: "I", O: "O", T: "T", S: "S", Z: "Z", J: "J", L: "L"}

func (s Shape) String() string { return shapeNames[s] }

// Shapes lists every piece type in catalog order.
var Shapes = [7]Shape{I, O, T, S, Z, J, L}

// Tetromino is the active piece. X,Y is the position of the top-left
// cell of Grid on the stack; since rows count up from the bottom, grid
// row ir sits on stack row Y-ir. Grid is always the base grid for
// Shape rotated clockwise Rotation times.
type Tetromino struct {
	Shape    Shape
	Grid     [][]bool
	X        int
	Y        int
	Rotation int
	GhostY   int
}

/*
Base grids in spawn orientation. The bounding box stays fixed while the
cells rotate inside it, which is what the wall-kick tables assume.

.	I			O		J			L

0	X X X X		O O		O X X		X X O
1	O O O O		O O		O O O		O O O
2	X X X X				X X X		X X X
3	X X X X

.	S			Z			T

0	X O O		O O X		X O X
1	O O X		X O O		O O O
2	X X X		X X X		X X X
*/
var baseGrids = map[Shape][][]bool{
	I: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	O: {
		{true, true},
		{true, true},
	},
	T: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	S: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	Z: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	J: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	L: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

// baseGrid returns a fresh copy of the spawn grid for s, so no two
// tetrominos ever alias the same rows.
func baseGrid(s Shape) [][]bool {
	base := baseGrids[s]
	grid := make([][]bool, len(base))
	for i, row := range base {
		grid[i] = make([]bool, len(row))
		copy(grid[i], row)
	}
	return grid
}

// BaseGrid returns a fresh copy of the spawn-orientation grid for s.
// Renderers use it for next/held piece previews.
func BaseGrid(s Shape) [][]bool { return baseGrid(s) }

// rotateGrid returns grid rotated 90 degrees clockwise.
func rotateGrid(grid [][]bool) [][]bool {
	length := len(grid)
	rotated := make([][]bool, length)
	for i := range rotated {
		rotated[i] = make([]bool, length)
	}
	for ir, row := range grid {
		for ic, cell := range row {
			rotated[ic][length-ir-1] = cell
		}
	}
	return rotated
}

// rotatedGrid returns the base grid for s rotated clockwise the given
// number of quarter turns.
func rotatedGrid(s Shape, steps int) [][]bool {
	grid := baseGrid(s)
	steps = ((steps % 4) + 4) % 4
	for range steps {
		grid = rotateGrid(grid)
	}
	return grid
}

// spawnX centers the piece horizontally from its grid width:
// the I spawns at x=3, the O at x=4 and the rest at x=3.
func spawnX(s Shape) int {
	return (boardWidth - len(baseGrids[s][0])) / 2
}

// spawnY is the fixed spawn row inside the hidden buffer.
const spawnY = 21

func newTetromino(s Shape) *Tetromino {
	return &Tetromino{
		Shape: s,
		Grid:  baseGrid(s),
		X:     spawnX(s),
		Y:     spawnY,
	}
}

func (t *Tetromino) copy() *Tetromino {
	if t == nil {
		return nil
	}
	grid := make([][]bool, len(t.Grid))
	for i := range t.Grid {
		grid[i] = make([]bool, len(t.Grid[i]))
		copy(grid[i], t.Grid[i])
	}
	c := *t
	c.Grid = grid
	return &c
}
