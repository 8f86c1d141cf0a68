package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/calculation"
	"github.com/twopc/savings-engine/internal/domain"
)

// Prints unrounded ledgers for the reference plans, for checking rounding by hand.
func main() {
	ce := calculation.NewCalculationEngine()

	// Recurring scenario
	rows, summary := ce.ProjectDailyOrMonthly(decimal.NewFromInt(100), 12)
	fmt.Println("Monthly ₹100:")
	for _, r := range rows {
		fmt.Printf("  month %2d: opening %s interest %s closing %s\n", r.Index, r.OpeningBalance, r.InterestEarned, r.ClosingBalance)
	}
	fmt.Printf("  with returns %s, without %s\n", summary.TotalWithReturns, summary.TotalWithoutReturns)

	// Lump sum scenario, including a partial year
	for _, months := range []int{6, 12, 13, 36} {
		rows, summary := ce.ProjectLumpSum(decimal.NewFromInt(10000), months)
		fmt.Printf("Lump sum ₹10,000 over %d months (%d %s rows):\n", months, len(rows), domain.PeriodUnitYear)
		for _, r := range rows {
			fmt.Printf("  year %d: closing %s\n", r.Index, r.ClosingBalance)
		}
		fmt.Printf("  fixed deposit %s\n", summary.BaselineComparison)
	}
}
