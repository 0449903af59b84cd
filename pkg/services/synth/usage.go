package synth

import (
	"time"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

// GenerateUsagePatterns samples utilization for the resource at every
// interval tick in the inclusive [start, end] window. Utilization follows a
// diurnal curve with jitter and is clipped to [0, 100]; serverless resources
// additionally report a request rate.
func (g *Generator) GenerateUsagePatterns(
	resource domain.CloudResource,
	start, end time.Time,
	interval time.Duration,
) ([]domain.UsagePattern, error) {
	if interval <= 0 {
		return nil, &InvalidRangeError{Start: start, End: end, Interval: interval}
	}
	if end.Before(start) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	baseline, ok := usageBaselines[resource.ResourceType]
	if !ok {
		baseline = defaultUsageBaseline
	}

	var patterns []domain.UsagePattern
	for tick := start; !tick.After(end); tick = tick.Add(interval) {
		factor := g.diurnalFactor(tick.Hour())

		cpu := clamp(g.floatBetween(baseline.cpuLow, baseline.cpuHigh)*factor+g.floatBetween(-10, 10), 0, 100)
		mem := clamp(g.floatBetween(baseline.memLow, baseline.memHigh)*factor+g.floatBetween(-10, 10), 0, 100)
		netBase := g.floatBetween(baseline.netLow, baseline.netHigh) * factor

		p := domain.UsagePattern{
			ResourceID:        resource.ID,
			Date:              tick,
			CPUUtilization:    cpu,
			MemoryUtilization: mem,
			NetworkIn:         clampMin(netBase+g.floatBetween(-5, 5), 0),
			NetworkOut:        clampMin(netBase+g.floatBetween(-5, 5), 0),
			StorageUsed:       clampMin(g.floatBetween(baseline.storageLow, baseline.storageHigh)+g.floatBetween(-5, 5), 0),
		}

		if resource.ResourceType == domain.ResourceTypeServerless {
			rpm := clampMin(g.floatBetween(10, 600)*factor, 0)
			p.RequestsPerMinute = &rpm
		}

		patterns = append(patterns, p)
	}

	return patterns, nil
}

// diurnalFactor shapes utilization around the working day: business hours
// run hot, evenings taper, nights idle.
func (g *Generator) diurnalFactor(hour int) float64 {
	switch {
	case hour >= 9 && hour <= 17:
		return g.floatBetween(1.2, 1.5)
	case hour >= 18 && hour <= 22:
		return g.floatBetween(0.8, 1.1)
	default:
		return g.floatBetween(0.3, 0.7)
	}
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func clampMin(v, low float64) float64 {
	if v < low {
		return low
	}
	return v
}
