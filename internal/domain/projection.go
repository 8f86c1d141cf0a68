package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cadence is the contribution frequency of a plan.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceMonthly Cadence = "monthly"
	CadenceLumpSum Cadence = "lumpsum"
)

// ErrUnknownCadence is returned for a cadence outside daily, monthly and lumpsum.
var ErrUnknownCadence = errors.New("unknown cadence")

// Cadences lists the supported cadences in display order.
var Cadences = []Cadence{CadenceDaily, CadenceMonthly, CadenceLumpSum}

// ParseCadence resolves a user supplied cadence name. Matching is case-insensitive
// and accepts the "lump-sum" / "lump_sum" spellings.
func ParseCadence(s string) (Cadence, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.NewReplacer("-", "", "_", "", " ", "").Replace(n)
	switch Cadence(n) {
	case CadenceDaily, CadenceMonthly, CadenceLumpSum:
		return Cadence(n), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCadence, s)
}

// IsRecurring reports whether contributions repeat every period.
func (c Cadence) IsRecurring() bool {
	return c == CadenceDaily || c == CadenceMonthly
}

// DefaultDurationMonths is used when a plan does not name a duration.
const DefaultDurationMonths = 12

// ValidDurations are the plan lengths offered to the user, in months.
var ValidDurations = []int{6, 12, 24, 36}

// IsValidDuration reports whether months is one of ValidDurations.
func IsValidDuration(months int) bool {
	for _, d := range ValidDurations {
		if d == months {
			return true
		}
	}
	return false
}

// ProjectionInput is an already validated request for a returns preview.
// ContributionAmount is per day for daily plans, per month for monthly plans
// and the one-time principal for lump-sum plans.
type ProjectionInput struct {
	ContributionAmount decimal.Decimal `json:"contribution_amount" yaml:"amount"`
	Cadence            Cadence         `json:"cadence" yaml:"cadence"`
	DurationMonths     int             `json:"duration_months" yaml:"duration_months"`
}

// Duration returns DurationMonths, falling back to DefaultDurationMonths when unset.
func (in ProjectionInput) Duration() int {
	if in.DurationMonths <= 0 {
		return DefaultDurationMonths
	}
	return in.DurationMonths
}

// ProjectionPeriod is one row of the growth ledger: a month for recurring
// plans, a year for lump-sum plans.
type ProjectionPeriod struct {
	Index              int             `json:"index"`
	PeriodContribution decimal.Decimal `json:"period_contribution"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	InterestEarned     decimal.Decimal `json:"interest_earned"`
	ClosingBalance     decimal.Decimal `json:"closing_balance"`
}

// ProjectionSummary compares the projected total against a baseline.
type ProjectionSummary struct {
	TotalWithReturns    decimal.Decimal `json:"total_with_returns"`
	TotalWithoutReturns decimal.Decimal `json:"total_without_returns"` // recurring plans only
	BaselineComparison  decimal.Decimal `json:"baseline_comparison"`   // fixed deposit estimate, lump-sum only
	TotalInterest       decimal.Decimal `json:"total_interest"`
}

// Period units used by Projection.PeriodUnit.
const (
	PeriodUnitMonth = "month"
	PeriodUnitYear  = "year"
)

// Projection is a complete preview for one plan.
type Projection struct {
	Name       string             `json:"name"`
	Input      ProjectionInput    `json:"input"`
	PeriodUnit string             `json:"period_unit"`
	Periods    []ProjectionPeriod `json:"periods"`
	Summary    ProjectionSummary  `json:"summary"`
}

// FinalPeriod returns the last ledger row and false when the ledger is empty.
func (p *Projection) FinalPeriod() (ProjectionPeriod, bool) {
	if len(p.Periods) == 0 {
		return ProjectionPeriod{}, false
	}
	return p.Periods[len(p.Periods)-1], true
}

// Reference returns the amount the projected total is compared against:
// the plain sum of contributions for recurring plans and the fixed deposit
// estimate for lump-sum plans.
func (p *Projection) Reference() decimal.Decimal {
	if p.Input.Cadence == CadenceLumpSum {
		return p.Summary.BaselineComparison
	}
	return p.Summary.TotalWithoutReturns
}

// ProjectionReport groups the previews rendered together by an output formatter.
type ProjectionReport struct {
	Projections []Projection `json:"projections"`
	Assumptions []string     `json:"assumptions"`
}
