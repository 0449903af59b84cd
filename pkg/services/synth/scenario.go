package synth

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

const (
	ScenarioBalanced    = "balanced"
	ScenarioAWSHeavy    = "aws_heavy"
	ScenarioCostAnomaly = "cost_anomaly"
	ScenarioMinimal     = "minimal"
)

// ScenarioConfig describes the requested shape of one generated dataset.
// Zero values fall back to the scenario's defaults.
type ScenarioConfig struct {
	Name           string
	TotalResources int
	WindowDays     int
	UsageInterval  time.Duration
}

var scenarioDescriptions = map[string]string{
	ScenarioBalanced:    "resources spread evenly across AWS, GCP and Azure",
	ScenarioAWSHeavy:    "70% AWS with the remainder split between GCP and Azure",
	ScenarioCostAnomaly: "balanced mix plus a few deliberately oversized cost outliers",
	ScenarioMinimal:     "small balanced dataset for quick smoke tests",
}

func KnownScenarios() []string {
	names := lo.Keys(scenarioDescriptions)
	sort.Strings(names)
	return names
}

func ScenarioDescription(name string) string {
	return scenarioDescriptions[name]
}

func IsKnownScenario(name string) bool {
	_, ok := scenarioDescriptions[name]
	return ok
}

func (c ScenarioConfig) withDefaults() ScenarioConfig {
	if c.TotalResources <= 0 {
		if c.Name == ScenarioMinimal {
			c.TotalResources = 5
		} else {
			c.TotalResources = 30
		}
	}
	if c.WindowDays <= 0 {
		if c.Name == ScenarioMinimal {
			c.WindowDays = 7
		} else {
			c.WindowDays = 30
		}
	}
	if c.UsageInterval <= 0 {
		c.UsageInterval = time.Hour
	}
	return c
}

// GenerateScenario produces a complete dataset for a named scenario:
// resources shaped by the scenario's provider mix, one cost entry per
// resource per day in the window, usage samples at the configured interval,
// and a summary folded from the generated collections.
func (g *Generator) GenerateScenario(cfg ScenarioConfig) (*domain.ScenarioDataset, error) {
	if !IsKnownScenario(cfg.Name) {
		return nil, &UnknownScenarioError{Name: cfg.Name}
	}
	cfg = cfg.withDefaults()

	resources, outliers, err := g.scenarioResources(cfg)
	if err != nil {
		return nil, err
	}

	end := truncateToDay(g.cfg.ReferenceDate)
	start := end.AddDate(0, 0, -(cfg.WindowDays - 1))
	usageEnd := start.Add(time.Duration(cfg.WindowDays)*24*time.Hour - cfg.UsageInterval)

	var (
		costEntries   []domain.CostEntry
		usagePatterns []domain.UsagePattern
	)
	for _, resource := range resources {
		entries, err := g.GenerateCostEntries(resource, start, end)
		if err != nil {
			return nil, err
		}
		if outliers[resource.ID] {
			for i := range entries {
				entries[i].Cost = roundCents(entries[i].Cost * g.cfg.AnomalyMultiplier)
			}
		}
		costEntries = append(costEntries, entries...)

		patterns, err := g.GenerateUsagePatterns(resource, start, usageEnd, cfg.UsageInterval)
		if err != nil {
			return nil, err
		}
		usagePatterns = append(usagePatterns, patterns...)
	}

	return &domain.ScenarioDataset{
		Scenario:      cfg.Name,
		Resources:     resources,
		CostEntries:   costEntries,
		UsagePatterns: usagePatterns,
		Summary:       summarize(resources, costEntries, g.cfg.Currency),
	}, nil
}

// scenarioResources materializes the provider mix. Counts are assigned
// deterministically so that the shaping invariants (e.g. aws_heavy majority)
// hold for any seed; only the individual resources are random.
func (g *Generator) scenarioResources(cfg ScenarioConfig) ([]domain.CloudResource, map[string]bool, error) {
	outliers := map[string]bool{}

	total := cfg.TotalResources
	anomalies := 0
	if cfg.Name == ScenarioCostAnomaly {
		anomalies = total / 20
		if anomalies == 0 {
			anomalies = 1
		}
		total -= anomalies
	}

	var counts map[domain.Provider]int
	switch cfg.Name {
	case ScenarioAWSHeavy:
		aws := (total*7 + 9) / 10
		rest := total - aws
		counts = map[domain.Provider]int{
			domain.ProviderAWS:   aws,
			domain.ProviderGCP:   rest - rest/2,
			domain.ProviderAzure: rest / 2,
		}
	default:
		third := total / 3
		counts = map[domain.Provider]int{
			domain.ProviderAWS:   third + boolToInt(total%3 > 0),
			domain.ProviderGCP:   third + boolToInt(total%3 > 1),
			domain.ProviderAzure: third,
		}
	}

	types := domain.AllResourceTypes()
	resources := make([]domain.CloudResource, 0, cfg.TotalResources)
	typeIdx := 0
	for _, provider := range domain.AllProviders() {
		for i := 0; i < counts[provider]; i++ {
			resource, err := g.GenerateResource(provider, types[typeIdx%len(types)], "")
			if err != nil {
				return nil, nil, err
			}
			typeIdx++
			resources = append(resources, resource)
		}
	}

	for i := 0; i < anomalies; i++ {
		resource, err := g.GenerateResource(domain.ProviderAWS, domain.ResourceTypeCompute, "")
		if err != nil {
			return nil, nil, err
		}
		resource.Specifications = domain.ComputeSpecs{
			InstanceType: "p3.16xlarge",
			VCPUs:        96,
			MemoryGB:     768,
			StorageGB:    2000,
		}
		outliers[resource.ID] = true
		resources = append(resources, resource)
	}

	return resources, outliers, nil
}

// summarize folds the generated collections; the summary is never tracked
// independently of the data it describes.
func summarize(
	resources []domain.CloudResource,
	costEntries []domain.CostEntry,
	currency string,
) domain.Summary {
	byProviderEntries := lo.GroupBy(costEntries, func(e domain.CostEntry) domain.Provider {
		return e.Provider
	})
	costByProvider := make(map[domain.Provider]float64, len(byProviderEntries))
	for provider, entries := range byProviderEntries {
		costByProvider[provider] = roundCents(lo.SumBy(entries, func(e domain.CostEntry) float64 {
			return e.Cost
		}))
	}

	resourceTypes := lo.Uniq(lo.Map(resources, func(r domain.CloudResource, _ int) domain.ResourceType {
		return r.ResourceType
	}))
	sort.Slice(resourceTypes, func(i, j int) bool { return resourceTypes[i] < resourceTypes[j] })

	return domain.Summary{
		TotalResources: len(resources),
		TotalCost: roundCents(lo.SumBy(costEntries, func(e domain.CostEntry) float64 {
			return e.Cost
		})),
		Currency: currency,
		ResourcesByProvider: lo.CountValuesBy(resources, func(r domain.CloudResource) domain.Provider {
			return r.Provider
		}),
		CostByProvider: costByProvider,
		ResourceTypes:  resourceTypes,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
