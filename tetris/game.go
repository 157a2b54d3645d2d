// Package tetris contains the logic of the game
// based on https://tetris.wiki/Tetris_Guideline
package tetris

import (
	"math/rand"
	"sync"
	"time"
)

type Action string

const (
	MoveLeft    Action = "left"      // Moves the Tetromino one step to the left.
	MoveRight   Action = "right"     // Moves the Tetromino one step to the right.
	MoveDown    Action = "down"      // Moves the Tetromino one step down.
	DropDown    Action = "drop"      // Drops the Tetromino down the stack.
	RotateRight Action = "rotatecw"  // Rotates the Tetromino clockwise.
	RotateLeft  Action = "rotateccw" // Rotates the Tetromino counter-clockwise.
	HoldPiece   Action = "hold"      // Sets the Tetromino aside, once per lock.
	Pause       Action = "pause"     // Toggles the pause flag.
)

// lockPoll is the ticker cadence while a lock delay is pending, short
// enough that the 500ms expiry is noticed at any level.
const lockPoll = 50 * time.Millisecond

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Game drives the state machine in real time: it owns the one current
// snapshot, serializes player actions and gravity ticks through a
// single goroutine, and publishes every new snapshot on UpdateCh.
type Game struct {
	GameOverCh chan bool
	UpdateCh   chan *State

	actionCh chan Action
	doneCh   chan bool
	ticker   Ticker
	rng      Shuffler
	now      func() time.Time

	mu    sync.RWMutex
	state *State
}

func NewGame() *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewConfigurableGame(newWrappedTicker(1*time.Hour), rng, time.Now)
}

func NewConfigurableGame(ticker Ticker, rng Shuffler, now func() time.Time) *Game {
	return &Game{
		GameOverCh: make(chan bool),
		UpdateCh:   make(chan *State),
		actionCh:   make(chan Action),
		doneCh:     make(chan bool, 1),
		ticker:     ticker,
		rng:        rng,
		now:        now,
	}
}

func (g *Game) Start() {
	if s := g.Read(); s == nil || s.GameOver {
		g.setState(NewState(g.rng))
	}
	g.UpdateCh <- g.Read()
	go g.listen()
}

func (g *Game) Stop() {
	g.ticker.Stop()
	g.doneCh <- true
}

func (g *Game) Action(a Action) {
	g.actionCh <- a
}

// Read returns the current snapshot. Snapshots are immutable, so it is
// safe to keep and render concurrently.
func (g *Game) Read() *State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Game) setState(s *State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

func (g *Game) listen() {
	g.ticker.Reset(g.Read().FallInterval)
	for {
		select {
		case <-g.ticker.C():
			g.advance(g.Read().MoveBy(0, -1, g.now()))
		case a := <-g.actionCh:
			g.advance(g.apply(a))
		case <-g.doneCh:
			return
		}
		state := g.Read()
		g.UpdateCh <- state
		if state.GameOver {
			g.ticker.Stop()
			g.GameOverCh <- true
			return
		}
	}
}

func (g *Game) apply(a Action) *State {
	state := g.Read()
	now := g.now()
	switch a {
	case MoveLeft:
		return state.MoveBy(-1, 0, now)
	case MoveRight:
		return state.MoveBy(1, 0, now)
	case MoveDown:
		return state.MoveBy(0, -1, now)
	case DropDown:
		// drop down doesn't wait for the tick to finish the round
		return state.HardDrop().LockPiece()
	case RotateRight:
		return state.RotateCW(now)
	case RotateLeft:
		return state.RotateCCW(now)
	case HoldPiece:
		return state.Hold()
	case Pause:
		return state.TogglePause()
	}
	return state
}

// advance installs the new snapshot and re-arms the ticker whenever its
// cadence changed.
func (g *Game) advance(next *State) {
	prev := g.Read()
	if next == prev {
		return
	}
	g.setState(next)

	c := cadence(next)
	if c == cadence(prev) {
		return
	}
	if c == 0 {
		g.ticker.Stop()
		return
	}
	g.ticker.Reset(c)
}

// cadence returns the tick interval a snapshot calls for: stopped while
// paused, the short poll while the piece sits on the stack waiting out
// its lock delay, and the level's fall interval otherwise. A pending
// lock delay alone is not enough for the fast poll: the delay survives a
// slide off a ledge, and a free-falling piece must keep falling at the
// level's pace.
func cadence(s *State) time.Duration {
	switch {
	case s.Paused:
		return 0
	case s.Lock != nil && s.Tetromino != nil && s.Tetromino.Y == s.Tetromino.GhostY:
		return lockPoll
	default:
		return s.FallInterval
	}
}
