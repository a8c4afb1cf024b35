// Package random provides unbiased integer sampling over inclusive ranges.
//
// The default sampler draws 32-bit values from crypto/rand and removes modulo
// bias by rejection. When the strong source fails, a draw degrades to a
// math/rand generator without rejection. That path is only approximately
// uniform and is acceptable because the values are not used for security.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"
)

// ErrInvalidRange indicates an empty or unrepresentable sampling range.
var ErrInvalidRange = errors.New("invalid range")

// span32 is 2^32, the number of distinct values of one draw.
const span32 = uint64(1) << 32

// Sampler draws uniform integers from an inclusive range.
type Sampler interface {
	IntInclusive(min, max int) (int, error)
}

// Source yields uniformly distributed 32-bit values.
//
// Implementations used by a shared sampler must be safe for concurrent use.
type Source interface {
	Uint32() (uint32, error)
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource returns a Source that decodes little-endian words from r.
func NewReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

func (s readerSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, fmt.Errorf("read random word: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// UniformSampler implements Sampler with rejection sampling over a Source.
type UniformSampler struct {
	source Source

	mu       sync.Mutex
	fallback *rand.Rand
	degraded bool
}

// NewSampler returns a sampler backed by crypto/rand.
func NewSampler() *UniformSampler {
	return NewSamplerWithSource(NewReaderSource(crand.Reader), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSamplerWithSource returns a sampler drawing from source. Draws that
// fail on source are served by fallback. A nil source uses fallback only.
func NewSamplerWithSource(source Source, fallback *rand.Rand) *UniformSampler {
	if fallback == nil {
		fallback = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &UniformSampler{source: source, fallback: fallback}
}

// IntInclusive returns a value uniformly distributed over [min, max].
//
// The range may hold at most 2^32 values; larger ranges and max < min return
// ErrInvalidRange.
func (s *UniformSampler) IntInclusive(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: max %d is below min %d", ErrInvalidRange, max, min)
	}
	size := uint64(max) - uint64(min) + 1
	if size == 0 || size > span32 {
		return 0, fmt.Errorf("%w: [%d, %d] exceeds 32-bit draws", ErrInvalidRange, min, max)
	}

	if s.source != nil {
		offset, err := below(s.source, size)
		if err == nil {
			return min + int(offset), nil
		}
		s.mu.Lock()
		s.degraded = true
		s.mu.Unlock()
	}
	return min + int(s.fallbackOffset(size)), nil
}

// Degraded reports whether any draw has been served by the fallback generator.
func (s *UniformSampler) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded || s.source == nil
}

func (s *UniformSampler) fallbackOffset(size uint64) uint64 {
	s.mu.Lock()
	f := s.fallback.Float64()
	s.mu.Unlock()

	offset := uint64(f * float64(size))
	if offset >= size {
		offset = size - 1
	}
	return offset
}

// below returns a value uniform over [0, size) for 0 < size <= 2^32.
//
// Draws at or above the largest multiple of size that fits in 32 bits are
// rejected so every residue is equally likely.
func below(src Source, size uint64) (uint64, error) {
	limit := (span32 / size) * size
	for {
		v, err := src.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return uint64(v) % size, nil
		}
	}
}
