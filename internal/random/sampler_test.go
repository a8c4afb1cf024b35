package random

import (
	"bytes"
	"errors"
	"math/rand"
	"sync"
	"testing"
)

var errSourceDown = errors.New("source down")

// scriptedSource returns a fixed series of values, then fails.
type scriptedSource struct {
	vs        []uint32
	callCount int
}

func (s *scriptedSource) Uint32() (uint32, error) {
	if s.callCount >= len(s.vs) {
		return 0, errSourceDown
	}
	v := s.vs[s.callCount]
	s.callCount++
	return v, nil
}

func TestIntInclusiveRejectsInvalidRange(t *testing.T) {
	sampler := NewSeededSampler(1)

	tests := []struct {
		name     string
		min, max int
	}{
		{name: "max below min", min: 5, max: 4},
		{name: "wider than 32 bits", min: 0, max: 1 << 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sampler.IntInclusive(tt.min, tt.max); !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("IntInclusive(%d, %d) error = %v, want %v", tt.min, tt.max, err, ErrInvalidRange)
			}
		})
	}
}

func TestIntInclusiveSingleValue(t *testing.T) {
	src := &scriptedSource{vs: []uint32{0xdeadbeef}}
	sampler := NewSamplerWithSource(src, nil)

	got, err := sampler.IntInclusive(7, 7)
	if err != nil {
		t.Fatalf("IntInclusive returned error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if src.callCount != 1 {
		t.Fatalf("expected 1 draw, got %d", src.callCount)
	}
}

func TestIntInclusiveRejectsDrawsAboveLimit(t *testing.T) {
	tests := []struct {
		name      string
		min, max  int
		vs        []uint32
		want      int
		wantCalls int
	}{
		{
			// 2^32 mod 3 == 1, so only 0xffffffff is rejected.
			name:      "size 3 rejects top value",
			min:       0,
			max:       2,
			vs:        []uint32{0xffffffff, 5},
			want:      2,
			wantCalls: 2,
		},
		{
			// 2^32 mod 6 == 4, so the top four values are rejected.
			name:      "size 6 rejects top four values",
			min:       10,
			max:       15,
			vs:        []uint32{0xfffffffc, 0xfffffffd, 0xfffffffe, 0xffffffff, 0xfffffffb},
			want:      10 + int(uint32(0xfffffffb)%6),
			wantCalls: 5,
		},
		{
			name:      "accepted on first draw",
			min:       -3,
			max:       3,
			vs:        []uint32{9},
			want:      -3 + 9%7,
			wantCalls: 1,
		},
		{
			name:      "power of two never rejects",
			min:       0,
			max:       7,
			vs:        []uint32{0xffffffff},
			want:      7,
			wantCalls: 1,
		},
		{
			name:      "full 32-bit range",
			min:       0,
			max:       1<<32 - 1,
			vs:        []uint32{0xfffffffe},
			want:      0xfffffffe,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{vs: tt.vs}
			sampler := NewSamplerWithSource(src, nil)

			got, err := sampler.IntInclusive(tt.min, tt.max)
			if err != nil {
				t.Fatalf("IntInclusive returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("IntInclusive(%d, %d) = %d, want %d", tt.min, tt.max, got, tt.want)
			}
			if src.callCount != tt.wantCalls {
				t.Fatalf("expected %d draws, got %d", tt.wantCalls, src.callCount)
			}
			if sampler.Degraded() {
				t.Fatal("expected strong sampler")
			}
		})
	}
}

func TestIntInclusiveFallsBackWhenSourceFails(t *testing.T) {
	sampler := NewSamplerWithSource(&scriptedSource{}, rand.New(rand.NewSource(3)))

	for i := 0; i < 100; i++ {
		got, err := sampler.IntInclusive(-2, 2)
		if err != nil {
			t.Fatalf("IntInclusive returned error: %v", err)
		}
		if got < -2 || got > 2 {
			t.Fatalf("fallback value %d out of range [-2, 2]", got)
		}
	}
	if !sampler.Degraded() {
		t.Fatal("expected sampler to report degraded")
	}
}

func TestNilSourceUsesFallback(t *testing.T) {
	sampler := NewSamplerWithSource(nil, rand.New(rand.NewSource(3)))
	if !sampler.Degraded() {
		t.Fatal("expected sampler without source to report degraded")
	}
	if _, err := sampler.IntInclusive(0, 10); err != nil {
		t.Fatalf("IntInclusive returned error: %v", err)
	}
}

func TestReaderSourceDecodesLittleEndian(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0xff}))

	v, err := src.Uint32()
	if err != nil {
		t.Fatalf("Uint32 returned error: %v", err)
	}
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if _, err := src.Uint32(); err == nil {
		t.Fatal("expected error on short read")
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(12345)
	b := NewSeededSampler(12345)

	for i := 0; i < 50; i++ {
		va, err := a.IntInclusive(0, 1000)
		if err != nil {
			t.Fatalf("IntInclusive returned error: %v", err)
		}
		vb, err := b.IntInclusive(0, 1000)
		if err != nil {
			t.Fatalf("IntInclusive returned error: %v", err)
		}
		if va != vb {
			t.Fatalf("draw %d differs: %d vs %d", i, va, vb)
		}
	}
}

func TestIntInclusiveIsUniform(t *testing.T) {
	const (
		buckets = 10
		draws   = 100000
	)
	sampler := NewSeededSampler(42)
	counts := make([]int, buckets)
	for i := 0; i < draws; i++ {
		v, err := sampler.IntInclusive(0, buckets-1)
		if err != nil {
			t.Fatalf("IntInclusive returned error: %v", err)
		}
		counts[v]++
	}

	expected := draws / buckets
	tolerance := expected / 10
	for v, c := range counts {
		if c < expected-tolerance || c > expected+tolerance {
			t.Errorf("value %d drawn %d times, want %d±%d", v, c, expected, tolerance)
		}
	}
}

func TestStrongSamplerStaysInRange(t *testing.T) {
	sampler := NewSampler()
	for i := 0; i < 1000; i++ {
		v, err := sampler.IntInclusive(150, 400)
		if err != nil {
			t.Fatalf("IntInclusive returned error: %v", err)
		}
		if v < 150 || v > 400 {
			t.Fatalf("value %d out of range [150, 400]", v)
		}
	}
}

func TestSamplerConcurrentUse(t *testing.T) {
	sampler := NewSeededSampler(7)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if _, err := sampler.IntInclusive(0, 99); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent IntInclusive returned error: %v", err)
	}
}

func TestNewSeedIsNonZero(t *testing.T) {
	for i := 0; i < 100; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed returned error: %v", err)
		}
		if seed == 0 {
			t.Fatal("NewSeed returned the reserved zero seed")
		}
	}
}
