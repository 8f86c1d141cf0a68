package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/twopc/savings-engine/internal/calculation"
	"github.com/twopc/savings-engine/internal/domain"
)

func sampleReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	ce := calculation.NewCalculationEngine()
	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Monthly", Amount: decimal.NewFromInt(100), Cadence: domain.CadenceMonthly, DurationMonths: 12},
			{Name: "Lump sum", Amount: decimal.NewFromInt(10000), Cadence: domain.CadenceLumpSum, DurationMonths: 12},
		},
	}
	report, err := ce.RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}
	return report
}

func TestNormalizeFormatName(t *testing.T) {
	cases := map[string]string{
		"":             "console",
		"Table":        "console",
		" lite ":       "console-lite",
		"csv-detailed": "detailed-csv",
		"JSON":         "json",
		"csv":          "csv",
	}
	for in, want := range cases {
		if got := NormalizeFormatName(in); got != want {
			t.Errorf("NormalizeFormatName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		f := GetFormatterByName(name)
		if f == nil {
			t.Fatalf("formatter %q not registered", name)
		}
		if f.Name() != name {
			t.Errorf("GetFormatterByName(%q).Name() = %q", name, f.Name())
		}
	}
	if GetFormatterByName("html") != nil {
		t.Error("expected no html formatter")
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		"MONTHLY",
		"₹100.00 monthly for 1 year",
		"Month 1   ₹100.00 + interest ₹2.00 = ₹102.00",
		"Month 2   ₹100.00 + interest ₹4.04 = ₹206.04  (on ₹202.00)",
		"With 2PC:            ₹1,368.03",
		"Without returns:     ₹1,200.00",
		"LUMP SUM",
		"Year 1   ₹10,000.00 -> ₹12,682.42",
		"Fixed deposit:       ₹10,600.00",
		"KEY ASSUMPTIONS:",
		"Best growth: Lump sum",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("console output missing %q\n%s", want, s)
		}
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "Monthly: ₹100.00 monthly for 1 year -> ₹1,368.03 (reference ₹1,200.00, 12 months)") {
		t.Errorf("unexpected monthly line:\n%s", s)
	}
	if !strings.Contains(s, "Lump sum: ₹10,000.00 one-time for 1 year -> ₹12,682.42 (reference ₹10,600.00, 1 year)") {
		t.Errorf("unexpected lump sum line:\n%s", s)
	}
	if !strings.Contains(s, "Recommended: Lump sum") {
		t.Errorf("missing recommendation:\n%s", s)
	}
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	// rows are sorted by scenario name
	if records[1][0] != "Lump sum" || records[2][0] != "Monthly" {
		t.Fatalf("unexpected row order: %v", records)
	}
	if records[1][6] != "12682.42" || records[1][8] != "10600.00" {
		t.Errorf("lump sum row = %v", records[1])
	}
	if records[2][6] != "1368.03" || records[2][7] != "1200.00" {
		t.Errorf("monthly row = %v", records[2])
	}
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	// header + 12 monthly rows + 1 yearly row
	if len(records) != 14 {
		t.Fatalf("expected 14 records, got %d", len(records))
	}
	second := records[2]
	if second[0] != "Monthly" || second[2] != "2" || second[5] != "4.04" || second[6] != "206.04" {
		t.Errorf("unexpected month 2 row: %v", second)
	}
	last := records[13]
	if last[1] != "year" || last[6] != "12682.42" {
		t.Errorf("unexpected lump sum row: %v", last)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleReport(t))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	var decoded struct {
		Projections []struct {
			Name    string `json:"name"`
			Summary struct {
				TotalWithReturns string `json:"total_with_returns"`
			} `json:"summary"`
			Periods []json.RawMessage `json:"periods"`
		} `json:"projections"`
		Assumptions []string `json:"assumptions"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Projections) != 2 || len(decoded.Projections[0].Periods) != 12 {
		t.Fatalf("unexpected projections: %+v", decoded.Projections)
	}
	got, err := decimal.NewFromString(decoded.Projections[0].Summary.TotalWithReturns)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if got.StringFixed(2) != "1368.03" {
		t.Errorf("total_with_returns = %s", got.StringFixed(2))
	}
	if len(decoded.Assumptions) == 0 {
		t.Error("expected assumptions")
	}
}

func TestJSONFormatterRoundsAmounts(t *testing.T) {
	report := sampleReport(t)
	out, err := JSONFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	var decoded struct {
		Projections []struct {
			Periods []struct {
				ClosingBalance string `json:"closing_balance"`
			} `json:"periods"`
			Summary struct {
				BaselineComparison string `json:"baseline_comparison"`
				TotalInterest      string `json:"total_interest"`
			} `json:"summary"`
		} `json:"projections"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	lump := decoded.Projections[1]
	if got := lump.Periods[0].ClosingBalance; got != "12682.42" {
		t.Errorf("closing_balance = %q, want 12682.42", got)
	}
	if got := lump.Summary.TotalInterest; got != "2682.42" {
		t.Errorf("total_interest = %q, want 2682.42", got)
	}
	if got := decoded.Projections[0].Periods[1].ClosingBalance; got != "206.04" {
		t.Errorf("month 2 closing_balance = %q, want 206.04", got)
	}
	// the report itself keeps full precision
	if report.Projections[1].Periods[0].ClosingBalance.Equal(decimal.RequireFromString("12682.42")) {
		t.Error("formatter must not round the caller's report")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleReport(t), "pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}

func TestGenerateReportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	files, err := GenerateReport(sampleReport(t), "json", dir)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	want := filepath.Join(dir, "returns_preview_20240301_093000.json")
	if len(files) != 1 || files[0] != want {
		t.Fatalf("files = %v, want [%s]", files, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestGenerateReportAll(t *testing.T) {
	files, err := GenerateReport(sampleReport(t), "all", t.TempDir())
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if len(files) != 2 || !strings.HasSuffix(files[0], ".txt") || !strings.HasSuffix(files[1], ".csv") {
		t.Fatalf("unexpected files: %v", files)
	}
}

func TestSaveConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	cfg := &domain.Configuration{
		Rates:     domain.DefaultRates(),
		Scenarios: []domain.Scenario{{Name: "Monthly", Amount: decimal.NewFromInt(2500), Cadence: domain.CadenceMonthly, DurationMonths: 12}},
	}
	if err := SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "Monthly") || !strings.Contains(string(b), "monthly") {
		t.Errorf("unexpected yaml:\n%s", b)
	}
}
