package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/calculation"
	"github.com/twopc/savings-engine/internal/domain"
	"github.com/twopc/savings-engine/internal/output"
)

func TestFormatters(t *testing.T) {
	d1 := stddec.NewFromFloat(1234.5)
	if got := output.FormatCurrency(d1); got != "₹1,234.50" {
		t.Fatalf("FormatCurrency got %s", got)
	}
	// FormatPercentage expects the value already in percentage units (not a 0-1 fraction)
	d2 := stddec.NewFromFloat(12.34)
	if got := output.FormatPercentage(d2); got != "12.34%" {
		t.Fatalf("FormatPercentage got %s", got)
	}
}

func TestRenderAllFormats(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	cfg := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Daily", Amount: stddec.NewFromInt(10), Cadence: domain.CadenceDaily},
		{Name: "Lump", Amount: stddec.NewFromInt(10000), Cadence: domain.CadenceLumpSum, DurationMonths: 13},
	}}
	report, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}

	for _, format := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		if err := output.Render(&buf, report, format); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: empty output", format)
		}
	}

	var buf bytes.Buffer
	if err := output.Render(&buf, report, "detailed-csv"); err != nil {
		t.Fatalf("detailed-csv: %v", err)
	}
	// a 13 month lump sum shows two yearly rows
	if got := strings.Count(buf.String(), "Lump,year,"); got != 2 {
		t.Fatalf("expected 2 yearly rows, got %d\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "16084.37") {
		t.Fatalf("missing second year balance\n%s", buf.String())
	}
}
