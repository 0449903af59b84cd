package domain

// ScenarioDataset is the complete output of one generation run: every cost
// entry and usage pattern references a resource in Resources, and Summary is
// always a pure fold over the three collections.
type ScenarioDataset struct {
	Scenario      string          `json:"scenario"`
	Resources     []CloudResource `json:"resources"`
	CostEntries   []CostEntry     `json:"cost_entries"`
	UsagePatterns []UsagePattern  `json:"usage_patterns"`
	Summary       Summary         `json:"summary"`
}

type Summary struct {
	TotalResources      int                  `json:"total_resources"`
	TotalCost           float64              `json:"total_cost"`
	Currency            string               `json:"currency"`
	ResourcesByProvider map[Provider]int     `json:"resources_by_provider"`
	CostByProvider      map[Provider]float64 `json:"cost_by_provider"`
	ResourceTypes       []ResourceType       `json:"resource_types"`
}
