package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// NewSeed draws a non-zero seed for NewSeededSampler from crypto/rand.
// Zero is reserved for "no seed" in configuration, so it is never returned.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.BigEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// NewSeededSampler returns a deterministic sampler for the given seed.
//
// It runs the same rejection algorithm as NewSampler over a math/rand
// stream, so a seed replays the exact sequence of results.
func NewSeededSampler(seed int64) *UniformSampler {
	rng := rand.New(rand.NewSource(seed))
	return NewSamplerWithSource(&lockedRandSource{rng: rng}, rng)
}

type lockedRandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedRandSource) Uint32() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint32(), nil
}
