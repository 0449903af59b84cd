package domain

import "time"

// UsagePattern is one sampled utilization snapshot for one resource.
// Utilization percentages are bounded to [0, 100]; magnitudes are
// non-negative. RequestsPerMinute is set only for serverless resources.
type UsagePattern struct {
	ResourceID        string    `json:"resource_id"`
	Date              time.Time `json:"date"`
	CPUUtilization    float64   `json:"cpu_utilization"`
	MemoryUtilization float64   `json:"memory_utilization"`
	NetworkIn         float64   `json:"network_in"`
	NetworkOut        float64   `json:"network_out"`
	StorageUsed       float64   `json:"storage_used"`
	RequestsPerMinute *float64  `json:"requests_per_minute,omitempty"`
}
