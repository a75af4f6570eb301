package blocks

import "math/rand"

// Bag deals shapes with the 7-bag randomizer: every refill holds exactly one
// of each kind in shuffled order, and kinds are served front to back.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewBag creates an empty bag that shuffles with rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{
		rng:   rng,
		kinds: make([]Kind, 0, len(AllKinds)),
	}
}

func (b *Bag) refill() {
	b.kinds = append(b.kinds[:0], AllKinds[:]...)
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}

// Peek returns the kind that Next would serve, without consuming it.
// An empty bag is refilled first.
func (b *Bag) Peek() Kind {
	if len(b.kinds) == 0 {
		b.refill()
	}
	return b.kinds[0]
}

// Next serves and removes the front kind.
func (b *Bag) Next() Kind {
	k := b.Peek()
	b.kinds = b.kinds[1:]
	return k
}

// Len returns the number of kinds left before the next refill.
func (b *Bag) Len() int {
	return len(b.kinds)
}
