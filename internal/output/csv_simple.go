package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/twopc/savings-engine/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }
func (c CSVSummarizer) Ext() string  { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Cadence", "Amount", "DurationMonths", "Periods", "PeriodUnit", "TotalWithReturns", "TotalWithoutReturns", "BaselineComparison", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	projections := append([]domain.Projection(nil), report.Projections...)
	sort.SliceStable(projections, func(i, j int) bool { return projectionTitle(&projections[i]) < projectionTitle(&projections[j]) })
	for i := range projections {
		p := &projections[i]
		row := []string{
			projectionTitle(p),
			string(p.Input.Cadence),
			p.Input.ContributionAmount.StringFixed(2),
			intToString(p.Input.Duration()),
			intToString(len(p.Periods)),
			p.PeriodUnit,
			p.Summary.TotalWithReturns.StringFixed(2),
			p.Summary.TotalWithoutReturns.StringFixed(2),
			p.Summary.BaselineComparison.StringFixed(2),
			p.Summary.TotalInterest.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
