package synth

import (
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

func TestGenerateScenario_Balanced(t *testing.T) {
	g := NewGenerator(testConfig())

	dataset, err := g.GenerateScenario(ScenarioConfig{
		Name:           ScenarioBalanced,
		TotalResources: 15,
		WindowDays:     7,
	})
	require.NoError(t, err)

	assert.Len(t, dataset.Resources, 15)
	assert.Len(t, dataset.CostEntries, 15*7)
	assert.Equal(t, 15, dataset.Summary.TotalResources)

	counts := dataset.Summary.ResourcesByProvider
	assert.Equal(t, 5, counts[domain.ProviderAWS])
	assert.Equal(t, 5, counts[domain.ProviderGCP])
	assert.Equal(t, 5, counts[domain.ProviderAzure])
}

func TestGenerateScenario_Determinism(t *testing.T) {
	cfg := ScenarioConfig{Name: ScenarioBalanced, TotalResources: 15, WindowDays: 7}

	first, err := NewGenerator(testConfig()).GenerateScenario(cfg)
	require.NoError(t, err)
	second, err := NewGenerator(testConfig()).GenerateScenario(cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Resources, second.Resources)
	assert.Equal(t, first.CostEntries, second.CostEntries)
	assert.Equal(t, first.UsagePatterns, second.UsagePatterns)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestGenerateScenario_DifferentSeedsDiffer(t *testing.T) {
	cfg := ScenarioConfig{Name: ScenarioBalanced, TotalResources: 9, WindowDays: 3}

	first, err := NewGenerator(Config{Seed: 1}).GenerateScenario(cfg)
	require.NoError(t, err)
	second, err := NewGenerator(Config{Seed: 2}).GenerateScenario(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first.Resources, second.Resources)
}

func TestGenerateScenario_ReferentialIntegrity(t *testing.T) {
	g := NewGenerator(testConfig())

	dataset, err := g.GenerateScenario(ScenarioConfig{Name: ScenarioCostAnomaly, TotalResources: 20, WindowDays: 10})
	require.NoError(t, err)

	ids := lo.SliceToMap(dataset.Resources, func(r domain.CloudResource) (string, domain.Provider) {
		return r.ID, r.Provider
	})

	for _, e := range dataset.CostEntries {
		provider, ok := ids[e.ResourceID]
		require.True(t, ok, "orphan cost entry %s", e.ID)
		assert.Equal(t, provider, e.Provider)
	}
	for _, p := range dataset.UsagePatterns {
		_, ok := ids[p.ResourceID]
		require.True(t, ok, "orphan usage pattern for %s", p.ResourceID)
	}
}

func TestGenerateScenario_ResourceIDsUnique(t *testing.T) {
	g := NewGenerator(testConfig())

	// Large enough that the narrow id formats (e.g. aws storage buckets draw
	// from a three-digit pool) would collide without the per-run redraw.
	dataset, err := g.GenerateScenario(ScenarioConfig{
		Name:           ScenarioBalanced,
		TotalResources: 3000,
		WindowDays:     1,
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range dataset.Resources {
		key := string(r.Provider) + "/" + r.ResourceID
		require.False(t, seen[key], "duplicate (provider, resource_id) pair %s", key)
		seen[key] = true
	}
}

func TestGenerateScenario_CoverageNoGapsNoDuplicates(t *testing.T) {
	g := NewGenerator(testConfig())

	const windowDays = 12
	dataset, err := g.GenerateScenario(ScenarioConfig{Name: ScenarioBalanced, TotalResources: 9, WindowDays: windowDays})
	require.NoError(t, err)

	byResource := lo.GroupBy(dataset.CostEntries, func(e domain.CostEntry) string {
		return e.ResourceID
	})
	require.Len(t, byResource, 9)

	for id, entries := range byResource {
		assert.Len(t, entries, windowDays, "resource %s", id)
		dates := lo.Map(entries, func(e domain.CostEntry, _ int) string {
			return e.Date.Format("2006-01-02")
		})
		assert.Len(t, lo.Uniq(dates), windowDays, "duplicate dates for %s", id)
	}
}

func TestGenerateScenario_SummaryIsAFold(t *testing.T) {
	g := NewGenerator(testConfig())

	dataset, err := g.GenerateScenario(ScenarioConfig{Name: ScenarioAWSHeavy, TotalResources: 18, WindowDays: 5})
	require.NoError(t, err)

	total := lo.SumBy(dataset.CostEntries, func(e domain.CostEntry) float64 { return e.Cost })
	assert.InDelta(t, total, dataset.Summary.TotalCost, 0.01)
	assert.Equal(t, len(dataset.Resources), dataset.Summary.TotalResources)

	actualCounts := lo.CountValuesBy(dataset.Resources, func(r domain.CloudResource) domain.Provider {
		return r.Provider
	})
	assert.Equal(t, actualCounts, dataset.Summary.ResourcesByProvider)
}

func TestGenerateScenario_AWSHeavyShaping(t *testing.T) {
	g := NewGenerator(testConfig())

	dataset, err := g.GenerateScenario(ScenarioConfig{Name: ScenarioAWSHeavy, TotalResources: 20, WindowDays: 3})
	require.NoError(t, err)

	counts := dataset.Summary.ResourcesByProvider
	assert.Greater(t, counts[domain.ProviderAWS], counts[domain.ProviderGCP])
	assert.Greater(t, counts[domain.ProviderAWS], counts[domain.ProviderAzure])
}

func TestGenerateScenario_CostAnomalyOutlier(t *testing.T) {
	g := NewGenerator(testConfig())

	dataset, err := g.GenerateScenario(ScenarioConfig{Name: ScenarioCostAnomaly, TotalResources: 21, WindowDays: 14})
	require.NoError(t, err)
	assert.Len(t, dataset.Resources, 21)

	byResource := lo.GroupBy(dataset.CostEntries, func(e domain.CostEntry) string {
		return e.ResourceID
	})
	totals := lo.Map(lo.Values(byResource), func(entries []domain.CostEntry, _ int) float64 {
		return lo.SumBy(entries, func(e domain.CostEntry) float64 { return e.Cost })
	})
	sort.Float64s(totals)

	median := totals[len(totals)/2]
	max := totals[len(totals)-1]
	assert.Greater(t, max, DefaultAnomalyMultiplier*median)
}

func TestGenerateScenario_UnknownScenario(t *testing.T) {
	g := NewGenerator(testConfig())

	_, err := g.GenerateScenario(ScenarioConfig{Name: "mars_heavy"})
	var unknownErr *UnknownScenarioError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "mars_heavy", unknownErr.Name)
}

func TestKnownScenarios(t *testing.T) {
	names := KnownScenarios()
	assert.Contains(t, names, ScenarioBalanced)
	assert.Contains(t, names, ScenarioAWSHeavy)
	assert.Contains(t, names, ScenarioCostAnomaly)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		assert.NotEmpty(t, ScenarioDescription(name))
	}
}
