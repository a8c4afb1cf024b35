// Package distribution maps named generation policies onto the partition
// generators for the fixed skill attribute set.
//
// A Distribution always has one entry per attribute, in attribute order, and
// its entries sum to Total. One unit is 0.1%.
package distribution

// Total is 100% expressed in units.
const Total = 1000

// Attribute keys, in result order.
const (
	AttributeHit    = "hit"
	AttributeEnergy = "energy"
	AttributeRegen  = "regen"
	AttributeCW     = "cw"
	AttributeCCW    = "ccw"
)

// Group keys.
const (
	GroupSpeed   = "speed"
	GroupDefense = "defense"
	GroupAttack  = "attack"
)

// Attribute identifies one skill slot of a distribution.
type Attribute struct {
	Key string
}

// Group is a named subset of attribute indices that a biased policy favors.
type Group struct {
	Key     string
	Indices []int
}

// Distribution holds one share per attribute, in attribute order.
type Distribution []int

// Sum returns the total of all shares.
func (d Distribution) Sum() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// PolicyKey names a generation policy.
type PolicyKey string

const (
	PolicyNormal     PolicyKey = "normal"
	PolicyBalance    PolicyKey = "balance"
	PolicyBiasMedium PolicyKey = "bias_medium"
	PolicyBiasBig    PolicyKey = "bias_big"
)

// Kind selects the generator a policy dispatches to.
type Kind int

const (
	KindFree Kind = iota
	KindBounded
	KindGroupBiased
)

func (k Kind) String() string {
	switch k {
	case KindFree:
		return "free"
	case KindBounded:
		return "bounded"
	case KindGroupBiased:
		return "group-biased"
	default:
		return "unknown"
	}
}

// Strength is how strongly a biased policy favors its group.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthMedium
	StrengthLarge
)

// Policy binds a generator kind to its parameters and cost.
type Policy struct {
	Key      PolicyKey
	Kind     Kind
	Strength Strength
	// Cost is consumed by callers for affordability checks.
	Cost int
}

// Biased reports whether the policy needs a group selection.
func (p Policy) Biased() bool {
	return p.Kind == KindGroupBiased
}
