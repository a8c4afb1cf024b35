package distribution

import (
	"errors"

	"github.com/netrey95-hub/skills/internal/core/partition"
	apperrors "github.com/netrey95-hub/skills/internal/platform/errors"
	"github.com/netrey95-hub/skills/internal/random"
)

// Generator produces distributions for the configured attribute set.
// It holds no state besides its sampler and is safe for concurrent use when
// the sampler is.
type Generator struct {
	sampler random.Sampler
}

// NewGenerator returns a Generator drawing from sampler.
func NewGenerator(sampler random.Sampler) *Generator {
	return &Generator{sampler: sampler}
}

// Hint describes the guaranteed split of a biased selection.
type Hint struct {
	Group     string
	Minimum   int
	Remaining int
}

// Generate draws a distribution for the named policy.
//
// groupKey is required by biased policies and ignored otherwise.
//
//   - normal: free composition of Total over all attributes.
//   - balance: every attribute within [BalanceMin, BalanceMax].
//   - bias_medium, bias_big: the group receives at least MinForBias units.
//
// Unknown selections return CodePolicyUnknown or CodeGroupUnknown. Generator
// failures carry a distribution code and still match the partition and
// random sentinel errors with errors.Is.
func (g *Generator) Generate(policyKey PolicyKey, groupKey string) (Distribution, error) {
	policy, ok := LookupPolicy(policyKey)
	if !ok {
		return nil, unknownPolicy(policyKey)
	}

	var (
		parts []int
		err   error
	)
	switch policy.Kind {
	case KindFree:
		parts, err = partition.Free(g.sampler, Total, len(attributes))
	case KindBounded:
		parts, err = partition.Bounded(g.sampler, Total, len(attributes), BalanceMin, BalanceMax)
	case KindGroupBiased:
		group, found := LookupGroup(groupKey)
		if !found {
			return nil, unknownGroup(groupKey)
		}
		parts, err = partition.GroupBiased(g.sampler, Total, len(attributes), group.Indices, MinForBias(policy.Strength, group.Key))
	default:
		return nil, unknownPolicy(policyKey)
	}
	if err != nil {
		return nil, wrapGenerateError(policy.Key, groupKey, err)
	}
	return Distribution(parts), nil
}

// GroupHint returns the guaranteed group minimum for a biased selection and
// the units left for open distribution.
func GroupHint(policyKey PolicyKey, groupKey string) (Hint, error) {
	policy, ok := LookupPolicy(policyKey)
	if !ok {
		return Hint{}, unknownPolicy(policyKey)
	}
	if !policy.Biased() {
		return Hint{Remaining: Total}, nil
	}
	group, ok := LookupGroup(groupKey)
	if !ok {
		return Hint{}, unknownGroup(groupKey)
	}
	minimum := MinForBias(policy.Strength, group.Key)
	return Hint{Group: group.Key, Minimum: minimum, Remaining: Total - minimum}, nil
}

func unknownPolicy(key PolicyKey) error {
	return apperrors.WithMetadata(apperrors.CodePolicyUnknown, "unknown policy "+string(key), map[string]string{
		"Policy": string(key),
	})
}

func unknownGroup(key string) error {
	return apperrors.WithMetadata(apperrors.CodeGroupUnknown, "unknown group "+key, map[string]string{
		"Group": key,
	})
}

func wrapGenerateError(policy PolicyKey, groupKey string, err error) error {
	code := apperrors.CodeUnknown
	switch {
	case errors.Is(err, partition.ErrBoundsInfeasible):
		code = apperrors.CodeDistributionBoundsInfeasible
	case errors.Is(err, partition.ErrInvalidParts):
		code = apperrors.CodeDistributionInvalidParts
	case errors.Is(err, partition.ErrInvalidGroup):
		code = apperrors.CodeDistributionInvalidGroup
	case errors.Is(err, random.ErrInvalidRange):
		code = apperrors.CodeDistributionInvalidRange
	}
	return apperrors.WrapWithMetadata(code, "generate "+string(policy), map[string]string{
		"Policy": string(policy),
		"Group":  groupKey,
	}, err)
}
