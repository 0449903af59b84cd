package datafiles

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/synth"
)

func TestWriteAndLoadDataset(t *testing.T) {
	g := synth.NewGenerator(synth.Config{
		Seed:          42,
		ReferenceDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	ds, err := g.GenerateScenario(synth.ScenarioConfig{
		Name:           synth.ScenarioBalanced,
		TotalResources: 6,
		WindowDays:     3,
		UsageInterval:  12 * time.Hour,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).WriteDataset(ds))

	for _, name := range []string{
		"balanced_resources.json",
		"balanced_cost_entries.json",
		"balanced_usage_patterns.json",
		"balanced_summary.json",
		"balanced_complete.json",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	loaded, err := NewLoader(dir).LoadDataset(synth.ScenarioBalanced)
	require.NoError(t, err)

	assert.Equal(t, ds.Scenario, loaded.Scenario)
	assert.Equal(t, ds.Summary, loaded.Summary)
	require.Len(t, loaded.Resources, len(ds.Resources))
	assert.Equal(t, ds.Resources[0].Specifications, loaded.Resources[0].Specifications)
	assert.Len(t, loaded.CostEntries, len(ds.CostEntries))
	assert.Len(t, loaded.UsagePatterns, len(ds.UsagePatterns))
}

func TestLoadDataset_Missing(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadDataset("balanced")
	assert.Error(t, err)
}

func TestWriteDataset_UnwritableDir(t *testing.T) {
	g := synth.NewGenerator(synth.Config{Seed: 1})
	ds, err := g.GenerateScenario(synth.ScenarioConfig{Name: synth.ScenarioMinimal, TotalResources: 3, WindowDays: 2})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	// A regular file where the directory should be makes MkdirAll fail.
	err = NewWriter(filepath.Join(file, "out")).WriteDataset(ds)
	assert.Error(t, err)
}
