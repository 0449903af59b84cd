package domain

import "time"

// CostEntry is one day's simulated spend attributable to one resource.
// Provider, service and region are denormalized from the referenced resource.
type CostEntry struct {
	ID         string            `json:"id"`
	ResourceID string            `json:"resource_id"`
	Provider   Provider          `json:"provider"`
	Service    string            `json:"service"`
	Cost       float64           `json:"cost"`
	Currency   string            `json:"currency"`
	Date       time.Time         `json:"date"`
	Region     string            `json:"region"`
	Tags       map[string]string `json:"tags"`
}

// CostSummary is an aggregation over cost entries, computed by folding the
// generated collection for a requested period.
type CostSummary struct {
	Scenario   string               `json:"scenario"`
	Start      time.Time            `json:"start_date"`
	End        time.Time            `json:"end_date"`
	TotalCost  float64              `json:"total_cost"`
	Currency   string               `json:"currency"`
	ByProvider map[Provider]float64 `json:"cost_by_provider"`
	ByService  map[string]float64   `json:"cost_by_service"`
	Daily      []DailyCost          `json:"daily_costs"`
}

type DailyCost struct {
	Date time.Time `json:"date"`
	Cost float64   `json:"cost"`
}
