package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/twopc/savings-engine/internal/domain"
	"github.com/twopc/savings-engine/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. TWOPC_LOGGING_LEVEL=debug.
const EnvPrefix = "TWOPC"

// DefaultSettingsName is looked up in the working directory when no settings file is given.
const DefaultSettingsName = "twopc"

// Settings are the runtime options of the CLI.
type Settings struct {
	Logging logging.Config `mapstructure:"logging"`
	Output  OutputSettings `mapstructure:"output"`
	Rates   domain.Rates   `mapstructure:"rates"`
}

// OutputSettings selects the default report format.
type OutputSettings struct {
	Format string `mapstructure:"format"`
}

// LoadSettings reads runtime settings from path (any format viper supports),
// or from ./twopc.{yaml,json,toml} when path is empty and such a file exists.
// Environment variables override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultSettingsName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading settings file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.Rates = s.Rates.WithDefaults()
	if err := ValidateRates(s.Rates); err != nil {
		return nil, fmt.Errorf("invalid rates in settings: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	rates := domain.DefaultRates()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("rates.monthly_rate_bps", rates.MonthlyRateBps)
	v.SetDefault("rates.fixed_deposit_annual_bps", rates.FixedDepositAnnualBps)
	v.SetDefault("rates.days_per_month", rates.DaysPerMonth)
	v.SetDefault("rates.recurring_periods", rates.RecurringPeriods)
}
