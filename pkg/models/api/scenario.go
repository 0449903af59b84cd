package api

// ScenarioInfo is the listing shape for a generated dataset. Resource and
// cost collections are exposed through their domain JSON forms directly;
// only the envelope types live here.
type ScenarioInfo struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	TotalResources int     `json:"total_resources"`
	TotalCost      float64 `json:"total_cost"`
	Currency       string  `json:"currency"`
}

type Error struct {
	Error string `json:"error"`
}
