package tetris

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the Ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	interval    time.Duration
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
	m.interval = d
}

// Interval returns the duration of the latest Reset call.
func (m *MockTicker) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// NoShuffle is a Shuffler that leaves the bag in catalog order
// (I, O, T, S, Z, J, L), for deterministic piece sequences in tests.
type NoShuffle struct{}

func (NoShuffle) Shuffle(int, func(i, j int)) {}

// NewTestState creates a game state with the given shape as both the
// current and next tetromino and an unshuffled bag.
func NewTestState(shape Shape) *State {
	s := &State{
		Stack:        emptyStack(),
		Tetromino:    newTetromino(shape),
		NexTetromino: newTetromino(shape),
		CanHold:      true,
		Level:        1,
		FallInterval: FallIntervalFor(1),
		Bag:          NewBag(NoShuffle{}),
	}
	s.Tetromino.GhostY = ghostY(s.Stack, s.Tetromino)
	return s
}

// NewTestGame creates a game seeded with a specific state and returns
// it along with its manual ticker.
func NewTestGame(s *State) (*Game, *MockTicker) {
	ticker := NewMockTicker()
	g := NewConfigurableGame(ticker, NoShuffle{}, time.Now)
	g.state = s
	return g, ticker
}
