package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/domain"
)

// ErrLoanOutOfRange is returned when a loan amount falls outside the policy.
var ErrLoanOutOfRange = errors.New("loan amount out of range")

// QuoteLoan prices a loan against an investment under the default policy.
func (ce *CalculationEngine) QuoteLoan(investment, amount decimal.Decimal, autoRepay bool) (domain.LoanQuote, error) {
	return ce.QuoteLoanWithPolicy(domain.DefaultLoanPolicy(), investment, amount, autoRepay)
}

// QuoteLoanWithPolicy prices a loan repaid from the investment's monthly
// returns. Repayment takes one month per policy step borrowed, rounded up.
func (ce *CalculationEngine) QuoteLoanWithPolicy(policy domain.LoanPolicy, investment, amount decimal.Decimal, autoRepay bool) (domain.LoanQuote, error) {
	if amount.LessThan(policy.MinAmount) || amount.GreaterThan(policy.MaxAmount) {
		return domain.LoanQuote{}, fmt.Errorf("%w: %s not between %s and %s", ErrLoanOutOfRange,
			amount.StringFixed(0), policy.MinAmount.StringFixed(0), policy.MaxAmount.StringFixed(0))
	}
	if policy.Step.IsPositive() && !amount.Mod(policy.Step).IsZero() {
		return domain.LoanQuote{}, fmt.Errorf("%w: %s is not a multiple of %s", ErrLoanOutOfRange,
			amount.StringFixed(0), policy.Step.StringFixed(0))
	}

	months := 1
	if policy.Step.IsPositive() {
		months = int(amount.Div(policy.Step).Ceil().IntPart())
	}

	return domain.LoanQuote{
		Investment:      investment,
		Amount:          amount,
		MonthlyReturn:   investment.Mul(ce.Rates.MonthlyRate()),
		RepaymentMonths: months,
		AutoRepay:       autoRepay,
	}, nil
}
