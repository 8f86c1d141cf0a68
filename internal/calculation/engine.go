package calculation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/twopc/savings-engine/internal/domain"
)

// CalculationEngine produces returns previews. It holds no per-request state
// and is safe for concurrent use once configured.
type CalculationEngine struct {
	Rates  domain.Rates
	Debug  bool // log every ledger row
	Logger Logger
}

// NewCalculationEngine creates an engine with the default product rates.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRates(domain.DefaultRates())
}

// NewCalculationEngineWithRates creates an engine with custom rates; zero
// fields take their default values.
func NewCalculationEngineWithRates(rates domain.Rates) *CalculationEngine {
	return &CalculationEngine{
		Rates:  rates.WithDefaults(),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Project builds the preview for one plan. Recurring plans always show
// Rates.RecurringPeriods months whatever duration was selected; lump-sum plans
// follow DurationMonths. The input is expected to be validated by the caller.
func (ce *CalculationEngine) Project(ctx context.Context, in domain.ProjectionInput) (*domain.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := &domain.Projection{Input: in}
	p.Input.DurationMonths = in.Duration()

	switch in.Cadence {
	case domain.CadenceDaily:
		p.PeriodUnit = domain.PeriodUnitMonth
		p.Periods, p.Summary = ce.ProjectDaily(in.ContributionAmount)
	case domain.CadenceMonthly:
		p.PeriodUnit = domain.PeriodUnitMonth
		p.Periods, p.Summary = ce.ProjectDailyOrMonthly(in.ContributionAmount, ce.Rates.RecurringPeriods)
	case domain.CadenceLumpSum:
		p.PeriodUnit = domain.PeriodUnitYear
		p.Periods, p.Summary = ce.ProjectLumpSum(in.ContributionAmount, p.Input.DurationMonths)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCadence, in.Cadence)
	}

	ce.Logger.Debugf("projected %s plan of %s over %d %ss: total %s",
		in.Cadence, in.ContributionAmount.StringFixed(2), len(p.Periods), p.PeriodUnit,
		p.Summary.TotalWithReturns.StringFixed(2))
	if ce.Debug {
		for _, row := range p.Periods {
			ce.Logger.Debugf("  %s %d: opening %s + contribution %s + interest %s = %s",
				p.PeriodUnit, row.Index,
				row.OpeningBalance.StringFixed(2), row.PeriodContribution.StringFixed(2),
				row.InterestEarned.StringFixed(2), row.ClosingBalance.StringFixed(2))
		}
	}
	return p, nil
}

// RunScenario projects a single named scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.Projection, error) {
	p, err := ce.Project(ctx, scenario.Input())
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	p.Name = scenario.Name
	return p, nil
}

// RunScenarios projects every scenario of the configuration concurrently and
// returns them in configuration order. The configuration's rates are ignored;
// the engine's own rates apply.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ProjectionReport, error) {
	projections := make([]domain.Projection, len(config.Scenarios))

	g, gctx := errgroup.WithContext(ctx)
	for i := range config.Scenarios {
		g.Go(func() error {
			p, err := ce.RunScenario(gctx, &config.Scenarios[i])
			if err != nil {
				return err
			}
			projections[i] = *p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunScenarios failed: %w", err)
	}

	ce.Logger.Infof("projected %d scenarios", len(projections))
	return &domain.ProjectionReport{
		Projections: projections,
		Assumptions: ce.Rates.GenerateAssumptions(),
	}, nil
}
