package output

import (
	"bytes"
	"fmt"

	"github.com/twopc/savings-engine/internal/domain"
)

// ConsoleFormatter prints one summary line per plan.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETURNS PREVIEW SUMMARY")
	fmt.Fprintln(&buf, "=======================")
	for i := range report.Projections {
		p := &report.Projections[i]
		fmt.Fprintf(&buf, "%s: %s -> %s (reference %s, %s)\n",
			projectionTitle(p),
			DescribeInput(p.Input),
			FormatCurrency(p.Summary.TotalWithReturns),
			FormatCurrency(p.Reference()),
			pluralize(len(p.Periods), p.PeriodUnit),
		)
	}
	rec := AnalyzeProjections(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.Gain), FormatPercentage(rec.PercentageGain))
	}
	return buf.Bytes(), nil
}
