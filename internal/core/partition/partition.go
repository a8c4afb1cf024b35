package partition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/netrey95-hub/skills/internal/random"
)

// ErrInvalidParts indicates a composition was requested with fewer than one part.
var ErrInvalidParts = errors.New("parts must be at least 1")

// ErrBoundsInfeasible indicates per-part bounds cannot reach the requested total.
var ErrBoundsInfeasible = errors.New("bounds cannot satisfy total")

// ErrInvalidGroup indicates an empty group or a group index outside the parts.
var ErrInvalidGroup = errors.New("group must list valid part indices")

// Free splits total into parts non-negative integers.
//
// It draws parts-1 cut points uniformly in [0, total], sorts them, and
// returns the gaps between consecutive cuts, starting at 0 and ending at
// total. Cuts are drawn with replacement, so compositions that need repeated
// cuts come up slightly less often than the rest. A single part returns
// [total] without drawing.
func Free(s random.Sampler, total, parts int) ([]int, error) {
	if parts < 1 {
		return nil, ErrInvalidParts
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: negative total %d", random.ErrInvalidRange, total)
	}
	if parts == 1 {
		return []int{total}, nil
	}

	cuts := make([]int, parts-1)
	for i := range cuts {
		cut, err := s.IntInclusive(0, total)
		if err != nil {
			return nil, fmt.Errorf("draw cut point: %w", err)
		}
		cuts[i] = cut
	}
	sort.Ints(cuts)

	result := make([]int, 0, parts)
	prev := 0
	for _, cut := range cuts {
		result = append(result, cut-prev)
		prev = cut
	}
	result = append(result, total-prev)
	return result, nil
}

// Bounded splits total into parts integers, each within [min, max].
//
// Parts are filled left to right. Each slot draws its extra above min from
// the range that still lets the remaining slots absorb the rest within their
// own bounds; the last slot takes whatever remains. The result is not exactly
// uniform over the feasible region: early slots see a slightly different
// marginal than later ones.
func Bounded(s random.Sampler, total, parts, min, max int) ([]int, error) {
	if parts < 1 {
		return nil, ErrInvalidParts
	}
	if min > max {
		return nil, fmt.Errorf("%w: min %d above max %d", ErrBoundsInfeasible, min, max)
	}
	if min < 0 {
		return nil, fmt.Errorf("%w: negative min %d", ErrBoundsInfeasible, min)
	}
	// Compared by division so that min*parts and max*parts cannot overflow.
	if total < 0 || min > total/parts {
		return nil, fmt.Errorf("%w: min %d over %d parts exceeds %d", ErrBoundsInfeasible, min, parts, total)
	}
	if max < ceilDiv(total, parts) {
		return nil, fmt.Errorf("%w: max %d over %d parts falls short of %d", ErrBoundsInfeasible, max, parts, total)
	}

	capacity := max - min
	result := make([]int, parts)
	remaining := total - min*parts

	for i := range result {
		slotsLeft := parts - i - 1
		extra := remaining
		if slotsLeft > 0 {
			lower := 0
			if capacity > 0 && remaining/capacity >= slotsLeft {
				lower = remaining - slotsLeft*capacity
			}
			upper := remaining
			if upper > capacity {
				upper = capacity
			}
			var err error
			extra, err = s.IntInclusive(lower, upper)
			if err != nil {
				return nil, fmt.Errorf("draw slot %d: %w", i, err)
			}
		}
		result[i] = min + extra
		remaining -= extra
	}
	return result, nil
}

// GroupBiased splits total across attributeCount parts so that the parts
// listed in groupIndices together receive at least groupMinimum.
//
// groupMinimum is first composed freely among the group members, then the
// rest of total is composed freely among all parts and added on top. Group
// members can therefore end up with more than groupMinimum combined.
func GroupBiased(s random.Sampler, total, attributeCount int, groupIndices []int, groupMinimum int) ([]int, error) {
	if attributeCount < 1 {
		return nil, ErrInvalidParts
	}
	if len(groupIndices) == 0 {
		return nil, ErrInvalidGroup
	}
	for _, idx := range groupIndices {
		if idx < 0 || idx >= attributeCount {
			return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidGroup, idx, attributeCount)
		}
	}
	if groupMinimum < 0 || groupMinimum > total {
		return nil, fmt.Errorf("%w: group minimum %d outside [0, %d]", random.ErrInvalidRange, groupMinimum, total)
	}

	result := make([]int, attributeCount)

	groupParts, err := Free(s, groupMinimum, len(groupIndices))
	if err != nil {
		return nil, fmt.Errorf("compose group minimum: %w", err)
	}
	for i, idx := range groupIndices {
		result[idx] += groupParts[i]
	}

	restParts, err := Free(s, total-groupMinimum, attributeCount)
	if err != nil {
		return nil, fmt.Errorf("compose remainder: %w", err)
	}
	for i, v := range restParts {
		result[i] += v
	}
	return result, nil
}

// ceilDiv returns the smallest q with q*d >= n for n >= 0 and d > 0.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}
