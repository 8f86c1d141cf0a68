package output

import (
	json "github.com/goccy/go-json"

	"github.com/twopc/savings-engine/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON. Amounts are
// rounded to paise, like the console and CSV outputs.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(roundedReport(report), "", "  ")
}

// roundedReport copies report with every amount rounded to 2 decimal places.
func roundedReport(report *domain.ProjectionReport) *domain.ProjectionReport {
	out := &domain.ProjectionReport{
		Projections: make([]domain.Projection, len(report.Projections)),
		Assumptions: report.Assumptions,
	}
	for i, p := range report.Projections {
		p.Input.ContributionAmount = p.Input.ContributionAmount.Round(2)
		p.Summary = domain.ProjectionSummary{
			TotalWithReturns:    p.Summary.TotalWithReturns.Round(2),
			TotalWithoutReturns: p.Summary.TotalWithoutReturns.Round(2),
			BaselineComparison:  p.Summary.BaselineComparison.Round(2),
			TotalInterest:       p.Summary.TotalInterest.Round(2),
		}
		periods := make([]domain.ProjectionPeriod, len(p.Periods))
		for j, row := range p.Periods {
			periods[j] = domain.ProjectionPeriod{
				Index:              row.Index,
				PeriodContribution: row.PeriodContribution.Round(2),
				OpeningBalance:     row.OpeningBalance.Round(2),
				InterestEarned:     row.InterestEarned.Round(2),
				ClosingBalance:     row.ClosingBalance.Round(2),
			}
		}
		p.Periods = periods
		out.Projections[i] = p
	}
	return out
}
