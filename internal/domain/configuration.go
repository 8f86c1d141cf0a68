package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates holds the product constants used by the projection engine.
type Rates struct {
	MonthlyRateBps        int `yaml:"monthly_rate_bps" json:"monthly_rate_bps" mapstructure:"monthly_rate_bps"`
	FixedDepositAnnualBps int `yaml:"fixed_deposit_annual_bps" json:"fixed_deposit_annual_bps" mapstructure:"fixed_deposit_annual_bps"`
	DaysPerMonth          int `yaml:"days_per_month" json:"days_per_month" mapstructure:"days_per_month"`
	RecurringPeriods      int `yaml:"recurring_periods" json:"recurring_periods" mapstructure:"recurring_periods"`
}

// DefaultRates returns the 2PC product constants: 2% a month, a 6% a year
// fixed deposit for comparison, 30-day months and a 12 month recurring preview.
func DefaultRates() Rates {
	return Rates{
		MonthlyRateBps:        200,
		FixedDepositAnnualBps: 600,
		DaysPerMonth:          30,
		RecurringPeriods:      12,
	}
}

// WithDefaults fills zero fields from DefaultRates.
func (r Rates) WithDefaults() Rates {
	d := DefaultRates()
	if r.MonthlyRateBps == 0 {
		r.MonthlyRateBps = d.MonthlyRateBps
	}
	if r.FixedDepositAnnualBps == 0 {
		r.FixedDepositAnnualBps = d.FixedDepositAnnualBps
	}
	if r.DaysPerMonth == 0 {
		r.DaysPerMonth = d.DaysPerMonth
	}
	if r.RecurringPeriods == 0 {
		r.RecurringPeriods = d.RecurringPeriods
	}
	return r
}

// Override returns r with every non-zero field of o applied on top.
func (r Rates) Override(o Rates) Rates {
	if o.MonthlyRateBps != 0 {
		r.MonthlyRateBps = o.MonthlyRateBps
	}
	if o.FixedDepositAnnualBps != 0 {
		r.FixedDepositAnnualBps = o.FixedDepositAnnualBps
	}
	if o.DaysPerMonth != 0 {
		r.DaysPerMonth = o.DaysPerMonth
	}
	if o.RecurringPeriods != 0 {
		r.RecurringPeriods = o.RecurringPeriods
	}
	return r
}

var bpsPerUnit = decimal.NewFromInt(10000)

// MonthlyRate returns the monthly growth rate as a fraction (0.02 for 200 bps).
func (r Rates) MonthlyRate() decimal.Decimal {
	return decimal.NewFromInt(int64(r.MonthlyRateBps)).Div(bpsPerUnit)
}

// FixedDepositRate returns the annual fixed deposit rate as a fraction.
func (r Rates) FixedDepositRate() decimal.Decimal {
	return decimal.NewFromInt(int64(r.FixedDepositAnnualBps)).Div(bpsPerUnit)
}

// GenerateAssumptions lists the modelling assumptions shown alongside a report.
func (r Rates) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Returns: %s%% a month, compounded monthly", r.MonthlyRate().Mul(decimal.NewFromInt(100)).String()),
		fmt.Sprintf("Fixed deposit comparison: %s%% a year, compounded annually", r.FixedDepositRate().Mul(decimal.NewFromInt(100)).String()),
		fmt.Sprintf("Daily plans: %d saving days per month", r.DaysPerMonth),
		fmt.Sprintf("Daily and monthly previews: %d months", r.RecurringPeriods),
		"Lump-sum previews: yearly rows, at most 3 years",
	}
}

// Scenario is a named plan in a configuration file.
type Scenario struct {
	Name           string          `yaml:"name" json:"name"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	Cadence        Cadence         `yaml:"cadence" json:"cadence"`
	DurationMonths int             `yaml:"duration_months,omitempty" json:"duration_months,omitempty"`
}

// Input converts the scenario into an engine input.
func (s Scenario) Input() ProjectionInput {
	return ProjectionInput{
		ContributionAmount: s.Amount,
		Cadence:            s.Cadence,
		DurationMonths:     s.DurationMonths,
	}
}

// Configuration is the top-level plan file. Zero rate fields are unset and
// take their value from the runtime settings.
type Configuration struct {
	Rates     Rates      `yaml:"rates" json:"rates"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
