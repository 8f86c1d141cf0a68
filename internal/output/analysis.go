package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/domain"
)

// Recommendation names the plan that grows furthest past its reference amount.
type Recommendation struct {
	ScenarioName     string
	TotalWithReturns decimal.Decimal
	Gain             decimal.Decimal
	PercentageGain   decimal.Decimal
}

// AnalyzeProjections ranks the projections by percentage gain over their
// reference (contributions for recurring plans, fixed deposit for lump sums).
// Projections with a zero reference cannot be ranked and are skipped.
func AnalyzeProjections(report *domain.ProjectionReport) Recommendation {
	var ranks []Recommendation
	for i := range report.Projections {
		p := &report.Projections[i]
		ref := p.Reference()
		if ref.IsZero() {
			continue
		}
		gain := p.Summary.TotalWithReturns.Sub(ref)
		ranks = append(ranks, Recommendation{
			ScenarioName:     projectionTitle(p),
			TotalWithReturns: p.Summary.TotalWithReturns,
			Gain:             gain,
			PercentageGain:   gain.Div(ref).Mul(decimal.NewFromInt(100)),
		})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].PercentageGain.GreaterThan(ranks[j].PercentageGain) })
	return ranks[0]
}
