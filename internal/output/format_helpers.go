package output

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/domain"
	money "github.com/twopc/savings-engine/pkg/decimal"
)

// FormatCurrency formats a decimal as rupees with 2 decimals and comma grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatWholeCurrency formats a decimal as whole rupees, e.g. "₹5,000".
func FormatWholeCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDuration renders a plan length the way the plan screens label it.
func FormatDuration(months int) string {
	switch months {
	case 6:
		return "6 months"
	case 12:
		return "1 year"
	case 24:
		return "2 years"
	case 36:
		return "3 years"
	default:
		return fmt.Sprintf("%d months", months)
	}
}

// DescribeInput is the one-line plan description shown under a report title.
func DescribeInput(in domain.ProjectionInput) string {
	amount := FormatCurrency(in.ContributionAmount)
	switch in.Cadence {
	case domain.CadenceDaily:
		return amount + " daily"
	case domain.CadenceMonthly:
		return amount + " monthly for " + FormatDuration(in.Duration())
	case domain.CadenceLumpSum:
		return amount + " one-time for " + FormatDuration(in.Duration())
	default:
		return amount
	}
}

// projectionTitle returns the scenario name, or a title derived from the cadence.
func projectionTitle(p *domain.Projection) string {
	if p.Name != "" {
		return p.Name
	}
	switch p.Input.Cadence {
	case domain.CadenceDaily:
		return "Daily savings"
	case domain.CadenceMonthly:
		return "Monthly investment"
	case domain.CadenceLumpSum:
		return "Lump sum investment"
	}
	return "Plan"
}

func intToString(i int) string { return strconv.Itoa(i) }

// pluralize renders "1 year", "12 months".
func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
