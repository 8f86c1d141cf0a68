package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/domain"
)

// ProjectDailyOrMonthly builds the month-by-month ledger of a recurring plan.
// Each month the contribution is added and the monthly rate is paid on the
// opening balance plus that contribution. periods <= 0 uses Rates.RecurringPeriods.
//
// The engine does not validate contribution; a negative value simply produces
// a shrinking ledger.
func (ce *CalculationEngine) ProjectDailyOrMonthly(contribution decimal.Decimal, periods int) ([]domain.ProjectionPeriod, domain.ProjectionSummary) {
	if periods <= 0 {
		periods = ce.Rates.RecurringPeriods
	}
	rate := ce.Rates.MonthlyRate()

	ledger := make([]domain.ProjectionPeriod, 0, periods)
	balance := decimal.Zero
	for month := 1; month <= periods; month++ {
		interest := balance.Add(contribution).Mul(rate)
		closing := balance.Add(contribution).Add(interest)
		ledger = append(ledger, domain.ProjectionPeriod{
			Index:              month,
			PeriodContribution: contribution,
			OpeningBalance:     balance,
			InterestEarned:     interest,
			ClosingBalance:     closing,
		})
		balance = closing
	}

	withoutReturns := contribution.Mul(decimal.NewFromInt(int64(periods)))
	summary := domain.ProjectionSummary{
		TotalWithReturns:    balance,
		TotalWithoutReturns: withoutReturns,
		TotalInterest:       balance.Sub(withoutReturns),
	}
	return ledger, summary
}

// ProjectDaily converts a daily saving into a monthly contribution
// (Rates.DaysPerMonth days a month) and projects it like a monthly plan.
func (ce *CalculationEngine) ProjectDaily(daily decimal.Decimal) ([]domain.ProjectionPeriod, domain.ProjectionSummary) {
	return ce.ProjectDailyOrMonthly(ce.MonthlyContribution(daily), ce.Rates.RecurringPeriods)
}

// MonthlyContribution returns the amount a daily saver puts aside in a month.
func (ce *CalculationEngine) MonthlyContribution(daily decimal.Decimal) decimal.Decimal {
	return daily.Mul(decimal.NewFromInt(int64(ce.Rates.DaysPerMonth)))
}
