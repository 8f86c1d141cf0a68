package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/twopc/savings-engine/internal/domain"
	money "github.com/twopc/savings-engine/pkg/decimal"
)

// ErrInvalidInput marks a plan request that must not reach the engine:
// a missing, non-numeric or negative amount, or an unsupported duration.
var ErrInvalidInput = errors.New("invalid input")

// Query parameter names used by the preview screens.
const (
	QueryAmount   = "amount"
	QueryDuration = "duration"
	QueryCadence  = "cadence"
)

// InputParser handles parsing and validation of plan requests and plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// ParseQuery builds an engine input from preview query parameters. amount is
// required; duration defaults to 12 months; cadence defaults to fallback when absent.
func (ip *InputParser) ParseQuery(values url.Values, fallback domain.Cadence) (domain.ProjectionInput, error) {
	var in domain.ProjectionInput

	cadence := fallback
	if raw := values.Get(QueryCadence); raw != "" {
		c, err := domain.ParseCadence(raw)
		if err != nil {
			return in, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		cadence = c
	}

	amount, err := ip.ParseAmount(values.Get(QueryAmount))
	if err != nil {
		return in, err
	}

	duration := domain.DefaultDurationMonths
	if raw := strings.TrimSpace(values.Get(QueryDuration)); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			return in, fmt.Errorf("%w: duration %q is not a whole number of months", ErrInvalidInput, raw)
		}
		if !domain.IsValidDuration(duration) {
			return in, fmt.Errorf("%w: duration must be one of %v months, got %d", ErrInvalidInput, domain.ValidDurations, duration)
		}
	}

	in = domain.ProjectionInput{
		ContributionAmount: amount,
		Cadence:            cadence,
		DurationMonths:     duration,
	}
	if err := ip.ValidateInput(in); err != nil {
		return domain.ProjectionInput{}, err
	}
	return in, nil
}

// ParseAmount parses a user typed amount such as "₹1,250.50".
func (ip *InputParser) ParseAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}
	m, err := money.NewMoneyFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, raw)
	}
	if m.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
	}
	return m.Decimal, nil
}

// ValidateInput checks an already parsed request before it is projected.
// A zero DurationMonths means unset, as for a plan file scenario without
// duration_months; ParseQuery rejects an explicit zero before it gets here.
func (ip *InputParser) ValidateInput(in domain.ProjectionInput) error {
	if _, err := domain.ParseCadence(string(in.Cadence)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.ContributionAmount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
	}
	if in.DurationMonths != 0 && !domain.IsValidDuration(in.DurationMonths) {
		return fmt.Errorf("%w: duration must be one of %v months, got %d", ErrInvalidInput, domain.ValidDurations, in.DurationMonths)
	}
	return nil
}

// LoadFromFile loads a plan configuration from a YAML file. Rates the file
// does not set are left zero for the caller to fill in.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates a loaded configuration and normalises
// scenario cadences to their canonical spelling.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ValidateRates(config.Rates); err != nil {
		return fmt.Errorf("rates validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// ValidateRates rejects negative or out of range rate constants. Zero fields
// are accepted as unset.
func ValidateRates(rates domain.Rates) error {
	if rates.MonthlyRateBps < 0 {
		return fmt.Errorf("monthly rate cannot be negative")
	}
	if rates.FixedDepositAnnualBps < 0 {
		return fmt.Errorf("fixed deposit rate cannot be negative")
	}
	if rates.DaysPerMonth < 0 || rates.DaysPerMonth > 31 {
		return fmt.Errorf("days per month must be between 1 and 31")
	}
	if rates.RecurringPeriods < 0 || rates.RecurringPeriods > 120 {
		return fmt.Errorf("recurring periods must be between 1 and 120")
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	cadence, err := domain.ParseCadence(string(scenario.Cadence))
	if err != nil {
		return err
	}
	scenario.Cadence = cadence
	return ip.ValidateInput(scenario.Input())
}

// CreateExampleConfiguration returns one plan of each cadence.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Rates: domain.DefaultRates(),
		Scenarios: []domain.Scenario{
			{
				Name:    "Daily ₹20",
				Amount:  decimal.NewFromInt(20),
				Cadence: domain.CadenceDaily,
			},
			{
				Name:           "Monthly ₹2,500",
				Amount:         decimal.NewFromInt(2500),
				Cadence:        domain.CadenceMonthly,
				DurationMonths: 12,
			},
			{
				Name:           "Lump sum ₹50,000",
				Amount:         decimal.NewFromInt(50000),
				Cadence:        domain.CadenceLumpSum,
				DurationMonths: 36,
			},
		},
	}
}
