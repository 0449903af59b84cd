package dataset

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/synth"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/duckdb"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: store}
}

func generateDataset(t *testing.T) *domain.ScenarioDataset {
	t.Helper()

	g := synth.NewGenerator(synth.Config{
		Seed:          42,
		ReferenceDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	ds, err := g.GenerateScenario(synth.ScenarioConfig{
		Name:           synth.ScenarioBalanced,
		TotalResources: 6,
		WindowDays:     5,
		UsageInterval:  6 * time.Hour,
	})
	require.NoError(t, err)
	return ds
}

func TestDatasetStore_AddDataset(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	ds := generateDataset(t)

	require.NoError(t, f.store.AddDataset(ctx, ds))

	var resources, entries, samples int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM resources WHERE scenario = ?", ds.Scenario).Scan(&resources))
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM cost_entries WHERE scenario = ?", ds.Scenario).Scan(&entries))
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM usage_patterns WHERE scenario = ?", ds.Scenario).Scan(&samples))

	assert.Equal(t, len(ds.Resources), resources)
	assert.Equal(t, len(ds.CostEntries), entries)
	assert.Equal(t, len(ds.UsagePatterns), samples)
}

func TestDatasetStore_GetStats(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	ds := generateDataset(t)

	require.NoError(t, f.store.AddDataset(ctx, ds))

	stats, err := f.store.GetStats(ctx, ds.Scenario)
	require.NoError(t, err)
	assert.Equal(t, int64(len(ds.Resources)), stats.ResourceCount)
	assert.Equal(t, int64(len(ds.CostEntries)), stats.CostEntries)
	assert.InDelta(t, ds.Summary.TotalCost, stats.TotalCost, 0.01)

	empty, err := f.store.GetStats(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, empty.ResourceCount)
}

func TestDatasetStore_GetDailyCosts(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	ds := generateDataset(t)

	require.NoError(t, f.store.AddDataset(ctx, ds))

	start := ds.CostEntries[0].Date
	end := start.AddDate(0, 0, 5)

	aggregates, err := f.store.GetDailyCosts(ctx, ds.Scenario, start, end)
	require.NoError(t, err)
	require.NotEmpty(t, aggregates)

	var total float64
	for _, a := range aggregates {
		assert.Equal(t, ds.Scenario, a.Scenario)
		assert.GreaterOrEqual(t, a.TotalCost, 0.0)
		total += a.TotalCost
	}
	assert.InDelta(t, ds.Summary.TotalCost, total, 0.01)

	t.Run("window filters out entries", func(t *testing.T) {
		none, err := f.store.GetDailyCosts(ctx, ds.Scenario, end.AddDate(0, 0, 1), end.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestDatasetStore_DuplicateInsertFails(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	ds := generateDataset(t)

	require.NoError(t, f.store.AddDataset(ctx, ds))
	assert.Error(t, f.store.AddDataset(ctx, ds))
}
