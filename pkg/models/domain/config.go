package domain

import "time"

// GenerationProfile drives the web entry point: which scenarios to
// materialize at startup and how the generator is seeded.
type GenerationProfile struct {
	Seed              int64
	ReferenceDate     time.Time
	Currency          string
	AnomalyMultiplier float64
	DatabasePath      string
	Scenarios         []ScenarioSpec
}

type ScenarioSpec struct {
	Name           string
	TotalResources int
	WindowDays     int
	UsageInterval  time.Duration
}
