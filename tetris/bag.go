package tetris

// Shuffler is the randomness source for the bag. *math/rand.Rand
// satisfies it; tests inject a deterministic one instead of flipping a
// hidden global.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Bag is the 7-bag randomizer: a queue of upcoming shapes replenished
// with a freshly shuffled permutation of all seven types whenever it
// runs out. Bag has value semantics; Draw returns the shrunk bag and
// never alters the one it was called on.
type Bag struct {
	queue []Shape
	rng   Shuffler
}

func NewBag(rng Shuffler) Bag {
	b := Bag{rng: rng}
	b.queue = b.refill()
	return b
}

func (b Bag) refill() []Shape {
	queue := make([]Shape, len(Shapes))
	copy(queue, Shapes[:])
	b.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return queue
}

// Draw pops the head of the bag, replenishing it first if empty.
func (b Bag) Draw() (Shape, Bag) {
	queue := b.queue
	if len(queue) == 0 {
		queue = b.refill()
	}
	return queue[0], Bag{queue: queue[1:], rng: b.rng}
}

// Len returns the number of shapes left before the next refill.
func (b Bag) Len() int { return len(b.queue) }
