// Package check spends from a caller-owned point balance.
//
// Balances are plain values passed in and returned; nothing here keeps state.
package check

import (
	"errors"
	"fmt"
)

// ErrInsufficientBalance indicates a balance below the requested cost.
var ErrInsufficientBalance = errors.New("balance does not cover cost")

// ErrNegativeCost indicates a cost below zero.
var ErrNegativeCost = errors.New("cost must be non-negative")

// ShortfallError reports a cost that the balance could not cover.
// It matches ErrInsufficientBalance with errors.Is.
type ShortfallError struct {
	Balance int
	Cost    int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("%v: need %d, have %d", ErrInsufficientBalance, e.Cost, e.Balance)
}

// Missing returns how many points the balance lacks.
func (e *ShortfallError) Missing() int {
	return e.Cost - e.Balance
}

func (e *ShortfallError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// Spend returns the balance left after paying cost. On failure the balance
// is returned unchanged alongside the error.
func Spend(balance, cost int) (int, error) {
	if cost < 0 {
		return balance, fmt.Errorf("%w: %d", ErrNegativeCost, cost)
	}
	if balance < cost {
		return balance, &ShortfallError{Balance: balance, Cost: cost}
	}
	return balance - cost, nil
}
