package tetris

import "time"

const (
	// lockDelayDuration is how long a piece may rest on the stack
	// before it locks, counted from the last reset.
	lockDelayDuration = 500 * time.Millisecond

	// maxLockResets caps how often movement and rotation may refresh
	// the lock timer before the piece locks regardless.
	maxLockResets = 15
)

// LockDelay tracks the grace period after a piece touches the stack
// below. Resets only grows, except when the piece reaches a new lowest
// row, which starts the count over.
type LockDelay struct {
	Start   time.Time
	Resets  int
	LowestY int
}

// State is one immutable snapshot of a game. Every transition method
// returns a new *State and leaves the receiver untouched; when an
// action has no effect the identical pointer comes back, which is how
// callers tell "movement blocked" from "moved".
type State struct {
	// Stack is the buffered playfield, 24 rows x 10 columns.
	// Columns are 0 > 9 left to right and represent the X axis.
	// Rows are 0 > 23 bottom to top; rows 20-23 are hidden buffer.
	Stack [][]Shape

	Tetromino    *Tetromino
	NexTetromino *Tetromino

	// Held is the shape set aside by Hold, 0 while nothing is held.
	Held    Shape
	CanHold bool

	Score      int
	LinesClear int
	Level      int

	GameOver bool
	Paused   bool

	Bag  Bag
	Lock *LockDelay

	// FallInterval is the current gravity cadence for the driver.
	FallInterval time.Duration

	// ClearedRows holds the rows removed by the most recent lock,
	// bottom-up, for animation cueing. The stack above already has
	// them removed.
	ClearedRows []int
}

// NewState starts a fresh game drawing the first two pieces from a bag
// fed by rng.
func NewState(rng Shuffler) *State {
	bag := NewBag(rng)
	current, bag := bag.Draw()
	next, bag := bag.Draw()
	s := &State{
		Stack:        emptyStack(),
		Tetromino:    newTetromino(current),
		NexTetromino: newTetromino(next),
		CanHold:      true,
		Level:        1,
		FallInterval: FallIntervalFor(1),
		Bag:          bag,
	}
	s.Tetromino.GhostY = ghostY(s.Stack, s.Tetromino)
	return s
}

// Board returns a copy of the visible board: the bottom 20 rows of the
// buffered stack, row 0 at the bottom.
func (s *State) Board() [][]Shape {
	board := make([][]Shape, boardHeight)
	for i := range board {
		board[i] = make([]Shape, boardWidth)
		copy(board[i], s.Stack[i])
	}
	return board
}

// shallow copies the snapshot. Slices and pointers stay shared; a
// transition replaces whichever of them it changes, never writing
// through them.
func (s *State) shallow() *State {
	next := *s
	return &next
}

// MoveBy moves the current piece by dx,dy. A blocked sideways move is a
// no-op; a blocked downward move is bottom contact, which starts the
// lock delay or, once it expires, locks the piece.
func (s *State) MoveBy(dx, dy int, now time.Time) *State {
	if s.Tetromino == nil || s.GameOver || s.Paused {
		return s
	}
	x, y := s.Tetromino.X+dx, s.Tetromino.Y+dy
	if !isValidPosition(s.Stack, s.Tetromino.Grid, x, y) {
		if dx != 0 || dy >= 0 {
			return s
		}
		if s.Lock == nil {
			next := s.shallow()
			next.Lock = &LockDelay{Start: now, LowestY: s.Tetromino.Y}
			return next
		}
		if s.ShouldLock(now) {
			return s.LockPiece()
		}
		return s
	}

	next := s.shallow()
	t := s.Tetromino.copy()
	t.X, t.Y = x, y
	t.GhostY = ghostY(s.Stack, t)
	next.Tetromino = t
	if s.Lock != nil {
		next.Lock = s.Lock.after(t.Y, now)
	}
	return next
}

// after returns the lock delay updated for a successful move or
// rotation: reaching a new lowest row starts the reset budget over,
// anything else spends one reset and refreshes the timer.
func (l *LockDelay) after(y int, now time.Time) *LockDelay {
	next := *l
	next.Start = now
	if y < l.LowestY {
		next.Resets = 0
		next.LowestY = y
	} else {
		next.Resets++
	}
	return &next
}

// RotateCW rotates the current piece clockwise, kicking off walls and
// the stack per the offset tables.
func (s *State) RotateCW(now time.Time) *State {
	if s.Tetromino == nil {
		return s
	}
	return s.rotate((s.Tetromino.Rotation+1)%4, now)
}

// RotateCCW rotates the current piece counter-clockwise.
func (s *State) RotateCCW(now time.Time) *State {
	if s.Tetromino == nil {
		return s
	}
	return s.rotate((s.Tetromino.Rotation+3)%4, now)
}

func (s *State) rotate(target int, now time.Time) *State {
	if s.GameOver || s.Paused {
		return s
	}
	t := tryRotate(s.Stack, s.Tetromino, target)
	if t == nil || t == s.Tetromino {
		return s
	}
	next := s.shallow()
	t.GhostY = ghostY(s.Stack, t)
	next.Tetromino = t
	if s.Lock != nil {
		// rotation never lowers the piece, so it always spends a reset
		next.Lock = s.Lock.after(s.Lock.LowestY, now)
	}
	return next
}

// HardDrop sends the piece straight to its ghost position and awards 2
// points per row traveled. The caller locks the piece right after; any
// running lock delay is discarded.
func (s *State) HardDrop() *State {
	if s.Tetromino == nil || s.GameOver || s.Paused {
		return s
	}
	distance := s.Tetromino.Y - s.Tetromino.GhostY
	if distance == 0 {
		return s
	}
	next := s.shallow()
	t := s.Tetromino.copy()
	t.Y = t.GhostY
	next.Tetromino = t
	next.Score = s.Score + hardDropPointsPerRow*distance
	next.Lock = nil
	return next
}

// ShouldLock reports whether the lock delay has run out, either by
// time or by exhausting the reset budget.
func (s *State) ShouldLock(now time.Time) bool {
	if s.Lock == nil {
		return false
	}
	return now.Sub(s.Lock.Start) >= lockDelayDuration || s.Lock.Resets >= maxLockResets
}

// LockPiece commits the current piece to the stack, clears complete
// lines, updates score, lines, level and gravity, promotes the next
// piece and draws a new one from the bag. This is the only place a
// piece is permanently written to the board. The new piece colliding at
// spawn is game over.
func (s *State) LockPiece() *State {
	if s.Tetromino == nil || s.GameOver || s.Paused {
		return s
	}
	next := s.shallow()
	stack, cleared := clearLines(place(s.Stack, s.Tetromino))
	next.Stack = stack
	next.ClearedRows = cleared
	if n := len(cleared); n > 0 {
		next.LinesClear = s.LinesClear + n
		next.Score = s.Score + Score(n, s.Level)
		next.Level = LevelForLines(next.LinesClear)
		next.FallInterval = FallIntervalFor(next.Level)
	}

	current := s.NexTetromino.copy()
	current.GhostY = ghostY(stack, current)
	next.Tetromino = current
	shape, bag := s.Bag.Draw()
	next.Bag = bag
	next.NexTetromino = newTetromino(shape)
	next.CanHold = true
	next.Lock = nil
	if !isValidPosition(stack, current.Grid, current.X, current.Y) {
		next.GameOver = true
	}
	return next
}

// Hold sets the current piece aside. The first hold promotes the next
// piece and draws a replacement from the bag; later holds swap the
// current and held shapes. Either way holding is spent until the next
// lock.
func (s *State) Hold() *State {
	if s.Tetromino == nil || s.GameOver || s.Paused || !s.CanHold {
		return s
	}
	next := s.shallow()
	next.Held = s.Tetromino.Shape
	var current *Tetromino
	if s.Held == 0 {
		current = s.NexTetromino.copy()
		shape, bag := s.Bag.Draw()
		next.Bag = bag
		next.NexTetromino = newTetromino(shape)
	} else {
		current = newTetromino(s.Held)
	}
	current.GhostY = ghostY(s.Stack, current)
	next.Tetromino = current
	next.CanHold = false
	next.Lock = nil
	if !isValidPosition(s.Stack, current.Grid, current.X, current.Y) {
		next.GameOver = true
	}
	return next
}

// TogglePause flips the pause flag. While paused every other transition
// short-circuits to a no-op.
func (s *State) TogglePause() *State {
	if s.GameOver {
		return s
	}
	next := s.shallow()
	next.Paused = !s.Paused
	return next
}
