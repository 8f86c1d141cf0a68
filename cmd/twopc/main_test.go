package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twopc/savings-engine/internal/calculation"
	"github.com/twopc/savings-engine/internal/config"
)

// execute runs the root command with args in a clean working directory and
// returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag defaults left over from a previous Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TWOPC_LOGGING_LEVEL", "error")
	return dir
}

func writePlan(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const monthlyPlan = "scenarios:\n" +
	"  - name: \"Monthly ₹100\"\n" +
	"    amount: 100\n" +
	"    cadence: monthly\n"

func TestVersion(t *testing.T) {
	setup(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "twopc dev")
}

func TestProject(t *testing.T) {
	setup(t)
	out, err := execute(t, "project", "--cadence", "monthly", "--amount", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Month 2   ₹100.00 + interest ₹4.04 = ₹206.04")
	assert.Contains(t, out, "With 2PC:            ₹1,368.03")

	out, err = execute(t, "project", "--cadence", "lump-sum", "--amount", "₹10,000", "--duration", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "₹12,682.42")
	assert.Contains(t, out, "Fixed deposit:       ₹10,600.00")
}

func TestProject_RejectsInvalidInput(t *testing.T) {
	setup(t)
	for _, args := range [][]string{
		{"project", "--amount", "100", "--duration", "0"},
		{"project", "--amount", "100", "--duration", "18"},
		{"project", "--amount", "-1"},
		{"project", "--amount", "100", "--cadence", "weekly"},
	} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, config.ErrInvalidInput, strings.Join(args, " "))
	}
}

func TestProject_FormatFromSettings(t *testing.T) {
	setup(t)
	t.Setenv("TWOPC_OUTPUT_FORMAT", "csv")

	out, err := execute(t, "project", "--amount", "100")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Scenario,Cadence,Amount"), out)

	// the flag wins over the settings
	out, err = execute(t, "project", "--amount", "100", "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"1368.03"`)
}

func TestRun_UsesSettingsRatesWhenPlanHasNone(t *testing.T) {
	dir := setup(t)
	t.Setenv("TWOPC_RATES_MONTHLY_RATE_BPS", "100")
	plan := writePlan(t, dir, monthlyPlan)

	projected, err := execute(t, "project", "--amount", "100")
	require.NoError(t, err)
	assert.Contains(t, projected, "₹1,280.93")

	ran, err := execute(t, "run", plan)
	require.NoError(t, err)
	assert.Contains(t, ran, "₹1,280.93")
	assert.NotContains(t, ran, "₹1,368.03")
}

func TestRun_PlanRatesOverrideSettings(t *testing.T) {
	dir := setup(t)
	t.Setenv("TWOPC_RATES_MONTHLY_RATE_BPS", "100")
	plan := writePlan(t, dir, "rates:\n  monthly_rate_bps: 300\n"+monthlyPlan)

	out, err := execute(t, "run", plan)
	require.NoError(t, err)
	assert.Contains(t, out, "₹1,461.78")
}

func TestRun_ExampleConfig(t *testing.T) {
	dir := setup(t)
	plan := filepath.Join(dir, "example.yaml")

	out, err := execute(t, "example-config", plan)
	require.NoError(t, err)
	assert.Contains(t, out, plan)

	out, err = execute(t, "run", plan, "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily ₹20")
	assert.Contains(t, out, "Monthly ₹2,500: ₹2,500.00 monthly for 1 year -> ₹34,200.83")
	assert.Contains(t, out, "Lump sum ₹50,000")
}

func TestSave(t *testing.T) {
	dir := setup(t)
	reports := filepath.Join(dir, "reports")
	require.NoError(t, os.Mkdir(reports, 0755))

	out, err := execute(t, "project", "--amount", "100", "--format", "json", "--save", reports)
	require.NoError(t, err)

	file := strings.TrimSpace(out)
	assert.Equal(t, reports, filepath.Dir(file))
	assert.True(t, strings.HasSuffix(file, ".json"), file)
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"1368.03"`)
}

func TestLoan(t *testing.T) {
	setup(t)
	out, err := execute(t, "loan", "--investment", "50000", "--amount", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "Loan amount:       ₹5,000\n")
	assert.Contains(t, out, "Monthly returns:   ₹1,000.00")
	assert.Contains(t, out, "Repaid in:         5 months")
	assert.Contains(t, out, "Auto-repay:        true")

	_, err = execute(t, "loan", "--investment", "50000", "--amount", "12000")
	assert.ErrorIs(t, err, calculation.ErrLoanOutOfRange)
}

func TestWithdraw(t *testing.T) {
	setup(t)
	out, err := execute(t, "withdraw", "--balance-monthly", "1,000", "--from", "monthly", "--amount", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Withdrawal of ₹500.00 from monthly plan accepted")

	_, err = execute(t, "withdraw", "--balance-monthly", "1000", "--from", "monthly", "--amount", "1500")
	assert.ErrorIs(t, err, calculation.ErrInsufficientBalance)

	_, err = execute(t, "withdraw", "--balance-monthly", "1000", "--from", "daily", "--amount", "1")
	assert.ErrorIs(t, err, calculation.ErrInsufficientBalance)
}
