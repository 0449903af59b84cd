package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/store"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/store/duckdb"
)

// Store persists generated scenario datasets in DuckDB so that downstream
// tooling can query them with plain SQL instead of re-reading JSON files.
type Store interface {
	AddDataset(ctx context.Context, ds *domain.ScenarioDataset) error
	GetDailyCosts(ctx context.Context, scenario string, start, end time.Time) ([]store.DailyCostAggregate, error)
	GetStats(ctx context.Context, scenario string) (*store.DatasetStats, error)
}

type datasetStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &datasetStore{db: db}, nil
}

func (s *datasetStore) AddDataset(ctx context.Context, ds *domain.ScenarioDataset) error {
	if err := s.addResources(ctx, ds.Scenario, ds.Resources); err != nil {
		return err
	}
	if err := s.addCostEntries(ctx, ds.Scenario, ds.CostEntries); err != nil {
		return err
	}
	return s.addUsagePatterns(ctx, ds.Scenario, ds.UsagePatterns)
}

func (s *datasetStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.PrepareContext(ctx, query)
	}
	return s.db.PrepareContext(ctx, query)
}

func (s *datasetStore) addResources(ctx context.Context, scenario string, resources []domain.CloudResource) error {
	if len(resources) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT INTO resources (
			id, scenario, provider, resource_id, resource_type, name,
			region, tags, specifications, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare resources statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range resources {
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}
		specs, err := json.Marshal(r.Specifications)
		if err != nil {
			return fmt.Errorf("marshal specifications: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			r.ID, scenario, string(r.Provider), r.ResourceID, string(r.ResourceType),
			r.Name, r.Region, tags, specs, r.CreatedAt, r.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert resource %s: %w", r.ID, err)
		}
	}
	return nil
}

func (s *datasetStore) addCostEntries(ctx context.Context, scenario string, entries []domain.CostEntry) error {
	if len(entries) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT INTO cost_entries (
			id, scenario, resource_id, provider, service, region,
			cost, currency, entry_date, tags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cost entries statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		tags, err := json.Marshal(e.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			e.ID, scenario, e.ResourceID, string(e.Provider), e.Service,
			e.Region, e.Cost, e.Currency, e.Date, tags,
		)
		if err != nil {
			return fmt.Errorf("insert cost entry %s: %w", e.ID, err)
		}
	}
	return nil
}

func (s *datasetStore) addUsagePatterns(ctx context.Context, scenario string, patterns []domain.UsagePattern) error {
	if len(patterns) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT INTO usage_patterns (
			scenario, resource_id, sampled_at, cpu_utilization, memory_utilization,
			network_in, network_out, storage_used, requests_per_minute
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare usage patterns statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range patterns {
		var rpm sql.NullFloat64
		if p.RequestsPerMinute != nil {
			rpm = sql.NullFloat64{Float64: *p.RequestsPerMinute, Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			scenario, p.ResourceID, p.Date, p.CPUUtilization, p.MemoryUtilization,
			p.NetworkIn, p.NetworkOut, p.StorageUsed, rpm,
		)
		if err != nil {
			return fmt.Errorf("insert usage pattern for %s: %w", p.ResourceID, err)
		}
	}
	return nil
}

func (s *datasetStore) GetDailyCosts(
	ctx context.Context,
	scenario string,
	start, end time.Time,
) ([]store.DailyCostAggregate, error) {
	query := `
		SELECT scenario, provider, service, entry_date, SUM(cost) AS total_cost, MAX(currency) AS currency
		FROM cost_entries
		WHERE scenario = ? AND entry_date >= ? AND entry_date <= ?
		GROUP BY scenario, provider, service, entry_date
		ORDER BY entry_date, provider, service
	`
	rows, err := s.db.QueryContext(ctx, query, scenario, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily costs: %w", err)
	}
	defer rows.Close()

	aggregates := make([]store.DailyCostAggregate, 0)
	for rows.Next() {
		var a store.DailyCostAggregate
		if err := rows.Scan(&a.Scenario, &a.Provider, &a.Service, &a.Date, &a.TotalCost, &a.Currency); err != nil {
			return nil, err
		}
		aggregates = append(aggregates, a)
	}
	return aggregates, rows.Err()
}

func (s *datasetStore) GetStats(ctx context.Context, scenario string) (*store.DatasetStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM resources WHERE scenario = ?) AS resource_count,
			(SELECT COUNT(*) FROM cost_entries WHERE scenario = ?) AS cost_entries,
			(SELECT COUNT(*) FROM usage_patterns WHERE scenario = ?) AS usage_samples,
			(SELECT COALESCE(SUM(cost), 0) FROM cost_entries WHERE scenario = ?) AS total_cost
	`
	stats := store.DatasetStats{Scenario: scenario}
	err := s.db.QueryRowContext(ctx, query, scenario, scenario, scenario, scenario).
		Scan(&stats.ResourceCount, &stats.CostEntries, &stats.UsageSamples, &stats.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("get dataset stats: %w", err)
	}
	return &stats, nil
}
