package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                      = "UNKNOWN"
	CodeDistributionInvalidRange     = "DISTRIBUTION_INVALID_RANGE"
	CodeDistributionBoundsInfeasible = "DISTRIBUTION_BOUNDS_INFEASIBLE"
	CodeDistributionInvalidParts     = "DISTRIBUTION_INVALID_PARTS"
	CodeDistributionInvalidGroup     = "DISTRIBUTION_INVALID_GROUP"
	CodePolicyUnknown                = "POLICY_UNKNOWN"
	CodeGroupUnknown                 = "GROUP_UNKNOWN"
	CodeBalanceInsufficient          = "BALANCE_INSUFFICIENT"
)

var enUSMessages = map[Code]string{
	CodeUnknown:                      "An unexpected error occurred",
	CodeDistributionInvalidRange:     "Distribution parameters are out of range",
	CodeDistributionBoundsInfeasible: "Share bounds cannot add up to 100%",
	CodeDistributionInvalidParts:     "A distribution needs at least one skill",
	CodeDistributionInvalidGroup:     "Group \"{{.Group}}\" does not list valid skills",
	CodePolicyUnknown:                "Unknown generation type \"{{.Policy}}\"",
	CodeGroupUnknown:                 "Unknown group \"{{.Group}}\"",
	CodeBalanceInsufficient:          "Not enough points: {{.Cost}} needed, {{.Balance}} available",
}
