// twopc previews the growth of 2PC savings plans.
package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/twopc/savings-engine/internal/calculation"
	"github.com/twopc/savings-engine/internal/config"
	"github.com/twopc/savings-engine/internal/domain"
	"github.com/twopc/savings-engine/internal/logging"
	"github.com/twopc/savings-engine/internal/output"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "twopc",
	Short:        "Preview returns of 2PC daily, monthly and lump-sum plans",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settingsFile, _ := cmd.Flags().GetString("settings")
		settings, err = config.LoadSettings(settingsFile)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			settings.Logging.Level = lvl
		}
		logger, err = logging.New(settings.Logging)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		engine = calculation.NewCalculationEngineWithRates(settings.Rates)
		engine.Debug, _ = cmd.Flags().GetBool("debug")
		engine.SetLogger(logger.Sugar())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("settings", "", "settings file (default: ./twopc.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "log every ledger row")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(loanCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(exampleConfigCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "twopc %s (%s)\n", version, commit)
	},
}

// --- Project Command ---

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Preview returns for a single plan",
	Example: `  twopc project --cadence monthly --amount 2500
  twopc project --cadence lumpsum --amount 50000 --duration 36 --format csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cadence, _ := cmd.Flags().GetString("cadence")
		amount, _ := cmd.Flags().GetString("amount")
		duration, _ := cmd.Flags().GetInt("duration")

		values := url.Values{}
		values.Set(config.QueryCadence, cadence)
		values.Set(config.QueryAmount, amount)
		values.Set(config.QueryDuration, strconv.Itoa(duration))

		in, err := config.NewInputParser().ParseQuery(values, domain.CadenceMonthly)
		if err != nil {
			return err
		}
		logger.Debug("projecting plan", zap.String("op", "project"), zap.String("cadence", string(in.Cadence)),
			zap.String("amount", in.ContributionAmount.String()), zap.Int("duration_months", in.Duration()))

		p, err := engine.Project(cmd.Context(), in)
		if err != nil {
			return err
		}
		report := &domain.ProjectionReport{
			Projections: []domain.Projection{*p},
			Assumptions: engine.Rates.GenerateAssumptions(),
		}
		return emit(cmd, report)
	},
}

func init() {
	projectCmd.Flags().String("cadence", string(domain.CadenceMonthly), "plan cadence (daily, monthly, lumpsum)")
	projectCmd.Flags().String("amount", "", "amount per day, per month, or one-time")
	projectCmd.Flags().Int("duration", domain.DefaultDurationMonths, "plan duration in months (6, 12, 24, 36)")
	addOutputFlags(projectCmd)
	_ = projectCmd.MarkFlagRequired("amount")
}

// --- Run Command ---

var runCmd = &cobra.Command{
	Use:   "run [plans.yaml]",
	Short: "Preview every plan of a plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		logger.Info("running plan file", zap.String("op", "run"), zap.String("file", args[0]), zap.Int("scenarios", len(cfg.Scenarios)))

		// rates set in the plan file override the settings
		runEngine := calculation.NewCalculationEngineWithRates(settings.Rates.Override(cfg.Rates))
		runEngine.Debug = engine.Debug
		runEngine.SetLogger(logger.Sugar())

		report, err := runEngine.RunScenarios(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return emit(cmd, report)
	},
}

func init() {
	addOutputFlags(runCmd)
}

// --- Loan Command ---

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Quote a loan repaid from monthly returns",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		rawInvestment, _ := cmd.Flags().GetString("investment")
		rawAmount, _ := cmd.Flags().GetString("amount")
		autoRepay, _ := cmd.Flags().GetBool("auto-repay")

		investment, err := parser.ParseAmount(rawInvestment)
		if err != nil {
			return err
		}
		amount, err := parser.ParseAmount(rawAmount)
		if err != nil {
			return err
		}
		quote, err := engine.QuoteLoan(investment, amount, autoRepay)
		if err != nil {
			logger.Warn("loan rejected", zap.String("op", "loan"), zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Loan amount:       %s\n", output.FormatWholeCurrency(quote.Amount))
		fmt.Fprintf(out, "Monthly returns:   %s\n", output.FormatCurrency(quote.MonthlyReturn))
		fmt.Fprintf(out, "Repaid in:         %d months\n", quote.RepaymentMonths)
		fmt.Fprintf(out, "Auto-repay:        %t\n", quote.AutoRepay)
		return nil
	},
}

func init() {
	loanCmd.Flags().String("investment", "", "current investment the loan is drawn against")
	loanCmd.Flags().String("amount", "", "loan amount (1,000 to 10,000 in steps of 1,000)")
	loanCmd.Flags().Bool("auto-repay", true, "repay automatically from monthly returns")
	_ = loanCmd.MarkFlagRequired("investment")
	_ = loanCmd.MarkFlagRequired("amount")
}

// --- Withdraw Command ---

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Check a withdrawal against plan balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		balances := calculation.Balances{}
		for _, c := range domain.Cadences {
			raw, _ := cmd.Flags().GetString("balance-" + string(c))
			if raw == "" {
				continue
			}
			b, err := parser.ParseAmount(raw)
			if err != nil {
				return err
			}
			balances[c] = b
		}

		from, _ := cmd.Flags().GetString("from")
		rawAmount, _ := cmd.Flags().GetString("amount")
		amount, err := parser.ParseAmount(rawAmount)
		if err != nil {
			return err
		}
		if err := calculation.ValidateWithdrawal(balances, domain.Cadence(from), amount); err != nil {
			logger.Warn("withdrawal rejected", zap.String("op", "withdraw"), zap.String("from", from), zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Withdrawal of %s from %s plan accepted\n", output.FormatCurrency(amount), from)
		return nil
	},
}

func init() {
	withdrawCmd.Flags().String("from", string(domain.CadenceMonthly), "plan to withdraw from (daily, monthly, lumpsum)")
	withdrawCmd.Flags().String("amount", "", "amount to withdraw")
	for _, c := range domain.Cadences {
		withdrawCmd.Flags().String("balance-"+string(c), "", "current "+string(c)+" plan balance")
	}
	_ = withdrawCmd.MarkFlagRequired("amount")
}

// --- Example Config Command ---

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [file]",
	Short: "Write an example plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "plans.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		cfg := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(cfg, filename); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example plan file written to %s\n", filename)
		return nil
	},
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "output format (console, console-lite, csv, detailed-csv, json, all when saving)")
	cmd.Flags().String("save", "", "save the report in this directory instead of printing it")
}

func emit(cmd *cobra.Command, report *domain.ProjectionReport) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.Output.Format
	}
	if dir, _ := cmd.Flags().GetString("save"); dir != "" {
		files, err := output.GenerateReport(report, format, dir)
		for _, f := range files {
			logger.Info("report saved", zap.String("op", cmd.Name()), zap.String("file", f))
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return err
	}
	return output.Render(cmd.OutOrStdout(), report, format)
}
