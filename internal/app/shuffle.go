package app

import (
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// GlobalShuffler returns a shuffler backed by the process-wide math/rand/v2
// source, which is safe for concurrent use.
func GlobalShuffler() ports.Shuffler {
	return globalShuffler{}
}

// SeededShuffler is a reproducible shuffler safe for concurrent use.
type SeededShuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededShuffler returns a shuffler whose sequence is fixed by seed.
func NewSeededShuffler(seed uint64) *SeededShuffler {
	return &SeededShuffler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Shuffle permutes n elements using swap.
func (s *SeededShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(n, swap)
}

// ShufflerForSeed picks the seeded shuffler for a non-zero seed and the
// global one otherwise.
func ShufflerForSeed(seed uint64) ports.Shuffler {
	if seed == 0 {
		return GlobalShuffler()
	}

	return NewSeededShuffler(seed)
}
