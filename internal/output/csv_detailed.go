package output

import (
	"bytes"
	"encoding/csv"

	"github.com/twopc/savings-engine/internal/domain"
)

// CSVDetailedExporter writes every ledger row, in report order.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }
func (c CSVDetailedExporter) Ext() string  { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "PeriodUnit", "Index", "Contribution", "OpeningBalance", "InterestEarned", "ClosingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Projections {
		p := &report.Projections[i]
		for _, row := range p.Periods {
			record := []string{
				projectionTitle(p),
				p.PeriodUnit,
				intToString(row.Index),
				row.PeriodContribution.StringFixed(2),
				row.OpeningBalance.StringFixed(2),
				row.InterestEarned.StringFixed(2),
				row.ClosingBalance.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
