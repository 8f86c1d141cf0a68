package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/domain"
)

var (
	// ErrInvalidAmount is returned for a zero or negative withdrawal.
	ErrInvalidAmount = errors.New("withdrawal amount must be positive")
	// ErrInsufficientBalance is returned when a withdrawal exceeds the plan balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Balances holds the current value of each plan a user holds.
type Balances map[domain.Cadence]decimal.Decimal

// ValidateWithdrawal checks a withdrawal request against the balance of the
// plan it draws from. A plan the user does not hold has a zero balance.
func ValidateWithdrawal(balances Balances, cadence domain.Cadence, amount decimal.Decimal) error {
	c, err := domain.ParseCadence(string(cadence))
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	available := balances[c]
	if amount.GreaterThan(available) {
		return fmt.Errorf("%w: can withdraw up to %s", ErrInsufficientBalance, available.StringFixed(2))
	}
	return nil
}
