package terminal

import (
	"reflect"
	"testing"

	"tetris/tetris"
)

func testData(shape tetris.Shape) *templateData {
	s := tetris.NewTestState(shape)
	s.Tetromino.Y = 19
	return &templateData{State: s}
}

func TestStack(t *testing.T) {
	td := testData(tetris.J)
	want := [20][10]string{}
	for y := range want {
		for x := range want[y] {
			want[y][x] = "  "
		}
	}
	blueCell := "\x1b[7m\x1b[34m[]\x1b[0m"
	want[0][3] = blueCell
	want[1][3] = blueCell
	want[1][4] = blueCell
	want[1][5] = blueCell
	want[18][3] = "[]"
	want[19][3] = "[]"
	want[19][4] = "[]"
	want[19][5] = "[]"
	got := stack(td)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestStackNoGhost(t *testing.T) {
	td := testData(tetris.J)
	td.NoGhost = true
	got := stack(td)
	for _, y := range []int{18, 19} {
		for x := 3; x <= 5; x++ {
			if got[y][x] != "  " {
				t.Errorf("expected no ghost at %d,%d, got %q", y, x, got[y][x])
			}
		}
	}
}

func TestStackRendersSettledPieces(t *testing.T) {
	td := testData(tetris.J)
	td.State = td.State.HardDrop().LockPiece()
	got := stack(td)
	blueCell := "\x1b[7m\x1b[34m[]\x1b[0m"
	for _, c := range [][2]int{{18, 3}, {19, 3}, {19, 4}, {19, 5}} {
		if got[c[0]][c[1]] != blueCell {
			t.Errorf("expected settled cell at %d,%d, got %q", c[0], c[1], got[c[0]][c[1]])
		}
	}
}

func TestStackNilState(t *testing.T) {
	got := stack(&templateData{})
	for y := range got {
		for x := range got[y] {
			if got[y][x] != "  " {
				t.Errorf("expected empty cell at %d,%d, got %q", y, x, got[y][x])
			}
		}
	}
}

func TestSidelineNextPiece(t *testing.T) {
	tests := []struct {
		shape tetris.Shape
		want  []string
	}{
		{tetris.J, []string{"\x1b[7m\x1b[34m[]\x1b[0m      ", "\x1b[7m\x1b[34m[]\x1b[0m\x1b[7m\x1b[34m[]\x1b[0m\x1b[7m\x1b[34m[]\x1b[0m  "}},
		{tetris.O, []string{"\x1b[7m\x1b[33m[]\x1b[0m\x1b[7m\x1b[33m[]\x1b[0m    ", "\x1b[7m\x1b[33m[]\x1b[0m\x1b[7m\x1b[33m[]\x1b[0m    "}},
		{tetris.I, []string{"        ", "\x1b[7m\x1b[36m[]\x1b[0m\x1b[7m\x1b[36m[]\x1b[0m\x1b[7m\x1b[36m[]\x1b[0m\x1b[7m\x1b[36m[]\x1b[0m"}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			td := testData(tt.shape)
			got := []string{sideline(1, td), sideline(2, td)}
			want := []string{"   " + tt.want[0], "   " + tt.want[1]}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("want %v, got %v", want, got)
			}
		})
	}
}

func TestSidelineHold(t *testing.T) {
	td := testData(tetris.O)
	if got := sideline(5, td); got != "" {
		t.Errorf("expected empty hold preview, got %q", got)
	}
	td.State = td.State.Hold()
	yellowCell := "\x1b[7m\x1b[33m[]\x1b[0m"
	want := "   " + yellowCell + yellowCell + "    "
	if got := sideline(5, td); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestSidelineScore(t *testing.T) {
	td := testData(tetris.J)
	td.State.Score = 12500
	if got, want := sideline(8, td), "   score 12,500"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if got, want := sideline(9, td), "   level 1"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestSidelinePaused(t *testing.T) {
	td := testData(tetris.J)
	if got := sideline(12, td); got != "" {
		t.Errorf("expected no pause marker, got %q", got)
	}
	td.State = td.State.TogglePause()
	if got := sideline(12, td); got != "   paused" {
		t.Errorf("expected pause marker, got %q", got)
	}
}
