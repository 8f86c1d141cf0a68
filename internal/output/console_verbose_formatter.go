package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/twopc/savings-engine/internal/domain"
)

// ConsoleVerboseFormatter renders every ledger row, laid out like the returns preview screens.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }
func (c ConsoleVerboseFormatter) Ext() string  { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	for i := range report.Projections {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeProjection(&buf, &report.Projections[i])
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}

	if len(report.Projections) > 1 {
		if rec := AnalyzeProjections(report); rec.ScenarioName != "" {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Best growth: %s (+%s, %s)\n", rec.ScenarioName, FormatCurrency(rec.Gain), FormatPercentage(rec.PercentageGain))
		}
	}
	return buf.Bytes(), nil
}

func writeProjection(w io.Writer, p *domain.Projection) {
	title := strings.ToUpper(projectionTitle(p))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintln(w, DescribeInput(p.Input))
	fmt.Fprintln(w)

	if p.PeriodUnit == domain.PeriodUnitYear {
		writeYearlyRows(w, p)
	} else {
		writeMonthlyRows(w, p)
	}
	fmt.Fprintln(w)
	writeSummary(w, p)
}

func writeMonthlyRows(w io.Writer, p *domain.Projection) {
	fmt.Fprintln(w, "Month-by-Month Breakdown")
	fmt.Fprintln(w, strings.Repeat("-", 24))
	for _, row := range p.Periods {
		fmt.Fprintf(w, "Month %-3d %s + interest %s = %s",
			row.Index, FormatCurrency(row.PeriodContribution), FormatCurrency(row.InterestEarned), FormatCurrency(row.ClosingBalance))
		if row.Index > 1 {
			fmt.Fprintf(w, "  (on %s)", FormatCurrency(row.OpeningBalance.Add(row.PeriodContribution)))
		}
		fmt.Fprintln(w)
	}
}

func writeYearlyRows(w io.Writer, p *domain.Projection) {
	fmt.Fprintln(w, "Year-by-Year Growth")
	fmt.Fprintln(w, strings.Repeat("-", 19))
	for _, row := range p.Periods {
		fmt.Fprintf(w, "Year %-3d %s -> %s  (+%s)\n",
			row.Index, FormatCurrency(row.OpeningBalance), FormatCurrency(row.ClosingBalance), FormatCurrency(row.InterestEarned))
	}
}

func writeSummary(w io.Writer, p *domain.Projection) {
	s := p.Summary
	if p.Input.Cadence == domain.CadenceLumpSum {
		fmt.Fprintf(w, "Total after %s\n", FormatDuration(p.Input.Duration()))
		fmt.Fprintf(w, "  With 2PC:            %s\n", FormatCurrency(s.TotalWithReturns))
		fmt.Fprintf(w, "  Fixed deposit:       %s\n", FormatCurrency(s.BaselineComparison))
		fmt.Fprintf(w, "  Returns earned:      %s\n", FormatCurrency(s.TotalInterest))
		fmt.Fprintf(w, "  Extra over deposit:  %s\n", FormatCurrency(s.TotalWithReturns.Sub(s.BaselineComparison)))
		return
	}
	fmt.Fprintf(w, "Total after %d months\n", len(p.Periods))
	fmt.Fprintf(w, "  With 2PC:            %s\n", FormatCurrency(s.TotalWithReturns))
	fmt.Fprintf(w, "  Without returns:     %s\n", FormatCurrency(s.TotalWithoutReturns))
	fmt.Fprintf(w, "  Returns earned:      %s\n", FormatCurrency(s.TotalInterest))
}
