package domain

import "github.com/shopspring/decimal"

// LoanPolicy bounds the amount that can be borrowed against an investment.
type LoanPolicy struct {
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	Step      decimal.Decimal
}

// DefaultLoanPolicy allows ₹1,000 to ₹10,000 in ₹1,000 steps.
func DefaultLoanPolicy() LoanPolicy {
	return LoanPolicy{
		MinAmount: decimal.NewFromInt(1000),
		MaxAmount: decimal.NewFromInt(10000),
		Step:      decimal.NewFromInt(1000),
	}
}

// LoanQuote describes a loan repaid from the monthly returns of an investment.
type LoanQuote struct {
	Investment      decimal.Decimal `json:"investment"`
	Amount          decimal.Decimal `json:"amount"`
	MonthlyReturn   decimal.Decimal `json:"monthly_return"`
	RepaymentMonths int             `json:"repayment_months"`
	AutoRepay       bool            `json:"auto_repay"`
}
