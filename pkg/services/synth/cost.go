package synth

import (
	"math"
	"time"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

// GenerateCostEntries produces exactly one entry per calendar day in the
// inclusive [start, end] window. The daily amount is shaped by the resource's
// specifications, a weekend multiplier for workload-driven types, a linear
// trend across the window and bounded noise; it never goes negative.
func (g *Generator) GenerateCostEntries(
	resource domain.CloudResource,
	start, end time.Time,
) ([]domain.CostEntry, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	baseRate := baseDailyRate(resource)

	// One slope per call: the resource either grows or gets rightsized
	// across the window.
	slope := g.floatBetween(-trendMaxSlope, trendMaxSlope)

	entries := make([]domain.CostEntry, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		cost := baseRate
		if weekendSensitive[resource.ResourceType] && isWeekend(date) {
			cost *= weekendMultiplier
		}
		if days > 1 {
			cost *= 1 + slope*float64(i)/float64(days-1)
		}
		cost *= 1 + g.floatBetween(-noiseAmplitude, noiseAmplitude)

		entries = append(entries, domain.CostEntry{
			ID:         g.uuid(),
			ResourceID: resource.ID,
			Provider:   resource.Provider,
			Service:    string(resource.ResourceType),
			Cost:       roundCents(math.Max(0, cost)),
			Currency:   g.cfg.Currency,
			Date:       date,
			Region:     resource.Region,
			Tags:       copyTags(resource.Tags),
		})
	}

	return entries, nil
}

// baseDailyRate scales the per-type base rate by the size of the resource:
// bigger machines, deeper storage and wider pipes cost more.
func baseDailyRate(resource domain.CloudResource) float64 {
	rate := baseDailyRates[resource.ResourceType]

	switch specs := resource.Specifications.(type) {
	case domain.ComputeSpecs:
		rate *= float64(specs.VCPUs) / 2.0
	case domain.DatabaseSpecs:
		rate *= float64(specs.StorageGB) / 100.0
	case domain.StorageSpecs:
		rate *= float64(specs.CapacityGB) / 500.0
	case domain.NetworkSpecs:
		rate *= float64(specs.ThroughputMbps) / 500.0
	case domain.ContainerSpecs:
		rate *= float64(specs.NodeCount*specs.VCPUsPerNode) / 4.0
	case domain.ServerlessSpecs:
		rate *= float64(specs.MemoryMB) / 256.0
	}

	return rate
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func copyTags(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
