package distribution

// Share bounds for the balance policy.
const (
	BalanceMin = Total * 15 / 100
	BalanceMax = Total * 40 / 100
)

var attributes = []Attribute{
	{Key: AttributeHit},
	{Key: AttributeEnergy},
	{Key: AttributeRegen},
	{Key: AttributeCW},
	{Key: AttributeCCW},
}

var groups = []Group{
	{Key: GroupSpeed, Indices: []int{3, 4}},
	{Key: GroupDefense, Indices: []int{1, 2}},
	{Key: GroupAttack, Indices: []int{0}},
}

var policies = []Policy{
	{Key: PolicyNormal, Kind: KindFree, Cost: 4000},
	{Key: PolicyBalance, Kind: KindBounded, Cost: 6000},
	{Key: PolicyBiasMedium, Kind: KindGroupBiased, Strength: StrengthMedium, Cost: 5500},
	{Key: PolicyBiasBig, Kind: KindGroupBiased, Strength: StrengthLarge, Cost: 8500},
}

// Attributes returns the attribute set in result order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// Groups returns the configured groups.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Key: g.Key, Indices: append([]int(nil), g.Indices...)}
	}
	return out
}

// Policies returns the policy table in display order.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// LookupPolicy finds a policy by key.
func LookupPolicy(key PolicyKey) (Policy, bool) {
	for _, p := range policies {
		if p.Key == key {
			return p, true
		}
	}
	return Policy{}, false
}

// LookupGroup finds a group by key.
func LookupGroup(key string) (Group, bool) {
	for _, g := range groups {
		if g.Key == key {
			return Group{Key: g.Key, Indices: append([]int(nil), g.Indices...)}, true
		}
	}
	return Group{}, false
}

// MinForBias returns the units a biased policy guarantees to groupKey.
//
// The attack group gets 25% (medium) or 40% (large); every other group gets
// 40% or 70%. StrengthNone guarantees nothing.
func MinForBias(strength Strength, groupKey string) int {
	var percent int
	switch strength {
	case StrengthMedium:
		percent = 40
		if groupKey == GroupAttack {
			percent = 25
		}
	case StrengthLarge:
		percent = 70
		if groupKey == GroupAttack {
			percent = 40
		}
	default:
		return 0
	}
	return Total * percent / 100
}
