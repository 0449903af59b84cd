package store

import "time"

// DailyCostAggregate is one row of the per-provider/service/date fold the
// cost-summary endpoint is contracted to reproduce.
type DailyCostAggregate struct {
	Scenario  string
	Provider  string
	Service   string
	Date      time.Time
	TotalCost float64
	Currency  string
}

// DatasetStats summarizes what has been loaded for one scenario.
type DatasetStats struct {
	Scenario      string
	ResourceCount int64
	CostEntries   int64
	UsageSamples  int64
	TotalCost     float64
}
