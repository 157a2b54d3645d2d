package terminal

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"text/template"

	"tetris/scores"
	"tetris/tetris"

	"github.com/dustin/go-humanize"
	"github.com/eiannone/keyboard"
)

const (
	// ASCII colors.
	Cyan    = "36"
	Blue    = "34"
	Orange  = "38;5;214"
	Yellow  = "33"
	Green   = "32"
	Red     = "31"
	Magenta = "35"

	resetPos = "\033[H" // Reset cursor position to 0,0
)

//go:embed "layout.tmpl"
var layout string

var colorMap = map[tetris.Shape]string{
	tetris.I: Cyan,
	tetris.J: Blue,
	tetris.L: Orange,
	tetris.O: Yellow,
	tetris.S: Green,
	tetris.Z: Red,
	tetris.T: Magenta,
}

type templateData struct {
	State   *tetris.State
	Name    string
	NoGhost bool
}

type Terminal struct {
	writer       io.Writer
	game         *tetris.Game
	template     *template.Template
	logger       *slog.Logger
	keysEventsCh <-chan keyboard.KeyEvent
	doneCh       chan bool
	lobby        atomic.Bool
	td           *templateData
	scores       *scores.Table
}

type Options struct {
	Writer  io.Writer
	Logger  *slog.Logger
	NoGhost bool
	Name    string
	Scores  *scores.Table
}

func New(o *Options) (*Terminal, error) {
	tp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("unable to load template: %w", err)
	}
	kc, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	var w io.Writer = os.Stdout
	if o.Writer != nil {
		w = o.Writer
	}
	return &Terminal{
		writer:       w,
		game:         tetris.NewGame(),
		template:     tp,
		keysEventsCh: kc,
		doneCh:       make(chan bool),
		logger:       o.Logger,
		td: &templateData{
			NoGhost: o.NoGhost,
			Name:    o.Name,
		},
		scores: o.Scores,
	}, nil
}

func (t *Terminal) Start() {
	t.renderGame()
	t.renderLobby()
	go t.listenKB()
	<-t.doneCh
	close(t.doneCh)
}

func (t *Terminal) listenTetris() {
	for {
		select {
		case u := <-t.game.UpdateCh:
			t.td.State = u
			t.renderGame()
		case <-t.game.GameOverCh:
			t.saveScore()
			t.renderLobby()
			fmt.Fprint(t.writer, "\033[11;9H|             Game Over :)             |")
			return
		}
	}
}

func (t *Terminal) saveScore() {
	if t.scores == nil || t.td.State == nil || t.td.State.Score == 0 {
		return
	}
	s := t.td.State
	t.scores.Insert(t.td.Name, s.Score, s.LinesClear, s.Level)
	if err := t.scores.Save(); err != nil {
		t.logger.Error("unable to save scores", slog.String("error", err.Error()))
	}
}

func (t *Terminal) listenKB() {
kbListener:
	for {
		event, ok := <-t.keysEventsCh
		if !ok {
			t.logger.Error("Keyboard events channel closed unexpectedly")
			break
		}
		if event.Err != nil {
			t.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			break
		}
		if event.Key == keyboard.KeyCtrlC {
			break
		}
		if t.lobby.Load() {
			switch event.Rune {
			case 'p':
				go t.listenTetris()
				t.game.Start()
			case 'q':
				break kbListener
			default:
				continue
			}
			t.lobby.Store(false)
			// clear the screen after the lobby
			fmt.Fprint(t.writer, "\033[2J\033[H")
		} else {
			switch {
			case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
				t.game.Action(tetris.MoveDown)
			case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
				t.game.Action(tetris.MoveLeft)
			case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
				t.game.Action(tetris.MoveRight)
			case event.Key == keyboard.KeyArrowUp || event.Rune == 'e':
				t.game.Action(tetris.RotateRight)
			case event.Rune == 'q':
				t.game.Action(tetris.RotateLeft)
			case event.Key == keyboard.KeySpace:
				t.game.Action(tetris.DropDown)
			case event.Rune == 'c':
				t.game.Action(tetris.HoldPiece)
			case event.Rune == 'p':
				t.game.Action(tetris.Pause)
			}
		}
	}
	t.doneCh <- true
}

func (t *Terminal) renderLobby() {
	t.lobby.Store(true)
	fmt.Fprint(t.writer, "\033[10;9H+--------------------------------------+")
	fmt.Fprint(t.writer, "\033[11;9H|      Welcome to Terminal Tetris      |")
	fmt.Fprint(t.writer, "\033[12;9H|                                      |")
	fmt.Fprint(t.writer, "\033[13;9H|          (p)lay    (q)uit            |")
	fmt.Fprint(t.writer, "\033[14;9H+--------------------------------------+")
	if t.scores != nil {
		for i, e := range t.scores.Entries {
			if i == 3 {
				break
			}
			fmt.Fprintf(t.writer, "\033[%d;9H  %d. %-12s %10s", 16+i, i+1, e.Name,
				humanize.Comma(int64(e.Score)))
		}
	}
}

func (t *Terminal) renderGame() {
	fmt.Fprint(t.writer, resetPos)
	if err := t.template.Execute(t.writer, t.td); err != nil {
		t.logger.Error("Unable to execute template", slog.String("error", err.Error()))
	}
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"stack":    stack,
		"sideline": sideline,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	layout = strings.ReplaceAll(layout, "\n", "\r\n")
	layout = strings.ReplaceAll(layout, "Terminal Tetris", "\033[1mTerminal Tetris\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(layout)
}

func cell(s tetris.Shape) string {
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", colorMap[s])
}

// stack renders the visible board top-down. The engine's rows count up
// from the bottom, so display row 0 is board row 19; the same 19-y flip
// applies to the current piece and its ghost, whose cells above the
// visible rows are simply not drawn.
func stack(t *templateData) [20][10]string {
	rendered := [20][10]string{}
	if t.State == nil {
		for y := range rendered {
			for x := range rendered[y] {
				rendered[y][x] = "  "
			}
		}
		return rendered
	}

	board := t.State.Board()
	for y := range tetris.BoardHeight {
		for x := range tetris.BoardWidth {
			out := "  "
			if v := board[y][x]; v != 0 {
				out = cell(v)
			}
			rendered[19-y][x] = out
		}
	}

	if piece := t.State.Tetromino; piece != nil {
		for iy, row := range piece.Grid {
			for ix, filled := range row {
				if !filled {
					continue
				}
				if gy := piece.GhostY - iy; !t.NoGhost && gy >= 0 && gy < tetris.BoardHeight {
					rendered[19-gy][piece.X+ix] = "[]"
				}
				if sy := piece.Y - iy; sy >= 0 && sy < tetris.BoardHeight {
					rendered[19-sy][piece.X+ix] = cell(piece.Shape)
				}
			}
		}
	}
	return rendered
}

// sideline renders the info column to the right of the board, one
// string per display row.
func sideline(i int, t *templateData) string {
	s := t.State
	if s == nil {
		return ""
	}
	switch i {
	case 0:
		return "   next"
	case 1, 2:
		return "   " + previewRow(s.NexTetromino.Grid, i-1, s.NexTetromino.Shape)
	case 4:
		return "   hold"
	case 5, 6:
		if s.Held == 0 {
			return ""
		}
		return "   " + previewRow(tetris.BaseGrid(s.Held), i-5, s.Held)
	case 8:
		return fmt.Sprintf("   score %s", humanize.Comma(int64(s.Score)))
	case 9:
		return fmt.Sprintf("   level %d", s.Level)
	case 10:
		return fmt.Sprintf("   lines %s", humanize.Comma(int64(s.LinesClear)))
	case 12:
		if s.Paused {
			return "   paused"
		}
	}
	return ""
}

func previewRow(grid [][]bool, row int, shape tetris.Shape) string {
	out := []string{"  ", "  ", "  ", "  "}
	if row < len(grid) {
		for iv, v := range grid[row] {
			if v {
				out[iv] = cell(shape)
			}
		}
	}
	return strings.Join(out, "")
}
