// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Distribution errors
	CodeDistributionInvalidRange     Code = "DISTRIBUTION_INVALID_RANGE"
	CodeDistributionBoundsInfeasible Code = "DISTRIBUTION_BOUNDS_INFEASIBLE"
	CodeDistributionInvalidParts     Code = "DISTRIBUTION_INVALID_PARTS"
	CodeDistributionInvalidGroup     Code = "DISTRIBUTION_INVALID_GROUP"

	// Selection errors
	CodePolicyUnknown Code = "POLICY_UNKNOWN"
	CodeGroupUnknown  Code = "GROUP_UNKNOWN"

	// Balance errors
	CodeBalanceInsufficient Code = "BALANCE_INSUFFICIENT"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - unknown selections from the caller
	case CodePolicyUnknown,
		CodeGroupUnknown:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeBalanceInsufficient:
		return codes.FailedPrecondition

	// Internal - generator parameters come from static configuration, so a
	// rejection there is a configuration bug rather than bad input.
	case CodeDistributionInvalidRange,
		CodeDistributionBoundsInfeasible,
		CodeDistributionInvalidParts,
		CodeDistributionInvalidGroup:
		return codes.Internal

	default:
		return codes.Internal
	}
}
