package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/domain"
)

const (
	monthsPerYear = 12
	// MaxLumpSumYears caps the yearly rows of a lump-sum preview.
	MaxLumpSumYears = 3
)

// ProjectLumpSum builds the yearly ledger of a one-time investment. Each row
// folds twelve monthly compoundings; a duration that is not a whole number of
// years is rounded up to the next year, and at most MaxLumpSumYears rows are
// produced. The summary compares the result with a fixed deposit held for
// exactly durationMonths.
func (ce *CalculationEngine) ProjectLumpSum(principal decimal.Decimal, durationMonths int) ([]domain.ProjectionPeriod, domain.ProjectionSummary) {
	years := LumpSumYears(durationMonths)
	growth := decimal.NewFromInt(1).Add(ce.Rates.MonthlyRate())

	ledger := make([]domain.ProjectionPeriod, 0, years)
	balance := principal
	for year := 1; year <= years; year++ {
		closing := balance
		for month := 0; month < monthsPerYear; month++ {
			closing = closing.Mul(growth)
		}
		ledger = append(ledger, domain.ProjectionPeriod{
			Index:              year,
			PeriodContribution: decimal.Zero,
			OpeningBalance:     balance,
			InterestEarned:     closing.Sub(balance),
			ClosingBalance:     closing,
		})
		balance = closing
	}

	summary := domain.ProjectionSummary{
		TotalWithReturns:   balance,
		BaselineComparison: principal.Mul(fixedDepositFactor(ce.Rates.FixedDepositRate(), durationMonths)),
		TotalInterest:      balance.Sub(principal),
	}
	return ledger, summary
}

// LumpSumYears returns the number of yearly rows shown for a lump-sum plan:
// min(MaxLumpSumYears, ceil(durationMonths/12)).
func LumpSumYears(durationMonths int) int {
	if durationMonths <= 0 {
		return 0
	}
	years := (durationMonths + monthsPerYear - 1) / monthsPerYear
	return min(years, MaxLumpSumYears)
}

// fixedDepositFactor returns (1+rate)^(months/12). Whole years are computed
// exactly; a fractional exponent falls back to float64.
func fixedDepositFactor(rate decimal.Decimal, months int) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(rate)
	if months%monthsPerYear == 0 {
		factor := decimal.NewFromInt(1)
		for y := 0; y < months/monthsPerYear; y++ {
			factor = factor.Mul(base)
		}
		return factor
	}
	return decimal.NewFromFloat(math.Pow(base.InexactFloat64(), float64(months)/monthsPerYear))
}
