package tetris

import (
	"reflect"
	"testing"
)

func TestIsValidPosition(t *testing.T) {
	//	.	0 1 2 3 4 5 6 7 8 9			0 1 2
	//	21	. . . O . . . . . .		0	X O X
	//	20	. . O O O . . . . .		1	O O O
	tests := []struct {
		name      string
		x, y      int
		fillCells [][]int // row, col
		want      bool
	}{
		{
			name: "centered spawn on empty stack",
			x:    3, y: 21,
			want: true,
		},
		{
			name: "off the left edge",
			x:    -1, y: 21,
			want: false,
		},
		{
			name: "off the right edge",
			x:    8, y: 21,
			want: false,
		},
		{
			name: "below the bottom row",
			x:    3, y: 0,
			want: false,
		},
		{
			name: "above the buffer",
			x:    3, y: 24,
			want: false,
		},
		{
			name: "resting on the bottom row",
			x:    3, y: 1,
			want: true,
		},
		{
			name:      "overlapping a filled cell",
			x:         3, y: 21,
			fillCells: [][]int{{20, 4}},
			want:      false,
		},
		{
			name:      "filled cell outside the piece",
			x:         3, y: 21,
			fillCells: [][]int{{20, 7}},
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stack := emptyStack()
			for _, cell := range tt.fillCells {
				stack[cell[0]][cell[1]] = J
			}
			got := isValidPosition(stack, baseGrid(T), tt.x, tt.y)
			if got != tt.want {
				t.Errorf("wanted %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsValidPositionEmptyGrid(t *testing.T) {
	// a shape with no filled cells is trivially valid anywhere
	if !isValidPosition(emptyStack(), [][]bool{{false}}, -5, 40) {
		t.Error("expected an empty shape to be valid")
	}
}

func TestPlace(t *testing.T) {
	stack := emptyStack()
	tetromino := newTetromino(J)
	tetromino.Y = 1

	got := place(stack, tetromino)

	want := emptyStack()
	want[1][3] = J
	want[0][3] = J
	want[0][4] = J
	want[0][5] = J
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v, got %v", want, got)
	}
	if !reflect.DeepEqual(stack, emptyStack()) {
		t.Error("place mutated the input stack")
	}
}

func TestClearLines(t *testing.T) {
	t.Run("two separated rows clear and report bottom-up", func(t *testing.T) {
		stack := emptyStack()
		for _, y := range []int{1, 3} {
			for x := range boardWidth {
				stack[y][x] = T
			}
		}
		// partial rows around the complete ones
		stack[0][0] = J
		stack[2][2] = S
		stack[4][4] = Z

		got, cleared := clearLines(stack)
		if !reflect.DeepEqual(cleared, []int{1, 3}) {
			t.Errorf("wanted cleared rows [1 3], got %v", cleared)
		}
		want := emptyStack()
		want[0][0] = J
		want[1][2] = S
		want[2][4] = Z
		if !reflect.DeepEqual(got, want) {
			t.Errorf("wanted %v, got %v", want, got)
		}
	})

	t.Run("nothing to clear returns the same stack", func(t *testing.T) {
		stack := emptyStack()
		stack[0][0] = J
		got, cleared := clearLines(stack)
		if cleared != nil {
			t.Errorf("wanted no cleared rows, got %v", cleared)
		}
		if !reflect.DeepEqual(got, stack) {
			t.Errorf("wanted the stack unchanged, got %v", got)
		}
	})

	t.Run("input stack is not mutated", func(t *testing.T) {
		stack := emptyStack()
		for x := range boardWidth {
			stack[0][x] = L
		}
		clearLines(stack)
		for x := range boardWidth {
			if stack[0][x] != L {
				t.Fatal("clearLines mutated the input stack")
			}
		}
	})

	t.Run("a full hidden buffer row does not clear", func(t *testing.T) {
		stack := emptyStack()
		for x := range boardWidth {
			stack[boardHeight][x] = I
		}
		_, cleared := clearLines(stack)
		if cleared != nil {
			t.Errorf("wanted no cleared rows, got %v", cleared)
		}
	})
}

func TestGhostY(t *testing.T) {
	tests := []struct {
		name      string
		fillCells [][]int
		want      int
	}{
		{
			name: "empty stack drops to the floor",
			want: 1,
		},
		{
			name:      "rests on the stack",
			fillCells: [][]int{{4, 4}},
			want:      6,
		},
		{
			name:      "already resting",
			fillCells: [][]int{{19, 3}},
			want:      21,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stack := emptyStack()
			for _, cell := range tt.fillCells {
				stack[cell[0]][cell[1]] = J
			}
			got := ghostY(stack, newTetromino(T))
			if got != tt.want {
				t.Errorf("wanted ghost y %d, got %d", tt.want, got)
			}
		})
	}
}
