package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/synth"
)

type profileFile struct {
	Seed              int64          `mapstructure:"seed"`
	ReferenceDate     string         `mapstructure:"reference_date"`
	Currency          string         `mapstructure:"currency"`
	AnomalyMultiplier float64        `mapstructure:"anomaly_multiplier"`
	DatabasePath      string         `mapstructure:"database_path"`
	Scenarios         []scenarioFile `mapstructure:"scenarios"`
}

type scenarioFile struct {
	Name           string        `mapstructure:"name"`
	TotalResources int           `mapstructure:"total_resources"`
	WindowDays     int           `mapstructure:"window_days"`
	UsageInterval  time.Duration `mapstructure:"usage_interval"`
}

// LoadProfile reads a generation profile from the given YAML file and
// validates it eagerly: unknown scenario names, malformed dates and
// non-positive counts are rejected before any generation starts.
func LoadProfile(path string) (*domain.GenerationProfile, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("seed", 42)
	v.SetDefault("currency", synth.DefaultCurrency)
	v.SetDefault("anomaly_multiplier", synth.DefaultAnomalyMultiplier)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var file profileFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse generation profile: %w", err)
	}

	profile := &domain.GenerationProfile{
		Seed:              file.Seed,
		Currency:          file.Currency,
		AnomalyMultiplier: file.AnomalyMultiplier,
		DatabasePath:      file.DatabasePath,
	}

	if file.ReferenceDate != "" {
		refDate, err := time.Parse(time.DateOnly, file.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("reference_date %q must be formatted as YYYY-MM-DD", file.ReferenceDate)
		}
		profile.ReferenceDate = refDate
	}

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("profile %s declares no scenarios", path)
	}

	for _, s := range file.Scenarios {
		if !synth.IsKnownScenario(s.Name) {
			return nil, fmt.Errorf("profile %s: unknown scenario %q, supported scenarios: %v",
				path, s.Name, synth.KnownScenarios())
		}
		if s.TotalResources < 0 || s.WindowDays < 0 || s.UsageInterval < 0 {
			return nil, fmt.Errorf("profile %s: scenario %q has negative counts", path, s.Name)
		}
		profile.Scenarios = append(profile.Scenarios, domain.ScenarioSpec{
			Name:           s.Name,
			TotalResources: s.TotalResources,
			WindowDays:     s.WindowDays,
			UsageInterval:  s.UsageInterval,
		})
	}

	return profile, nil
}
