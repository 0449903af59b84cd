package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrResourceNotFound = errors.New("resource not found")
)

// Service answers read-only queries over generated scenario datasets. It is
// the seam the mock API layer binds to: all aggregations are folds over the
// immutable collections produced by one generation run.
type Service interface {
	Scenarios(ctx context.Context) []string
	Summary(ctx context.Context, scenario string) (*domain.Summary, error)
	Resources(ctx context.Context, scenario string) ([]domain.CloudResource, error)
	CostSummary(ctx context.Context, scenario string, start, end time.Time) (*domain.CostSummary, error)
	ResourceUsage(ctx context.Context, scenario, resourceID string) ([]domain.UsagePattern, error)
}

type service struct {
	datasets map[string]*domain.ScenarioDataset
}

func NewService(datasets []*domain.ScenarioDataset) Service {
	byName := make(map[string]*domain.ScenarioDataset, len(datasets))
	for _, ds := range datasets {
		byName[ds.Scenario] = ds
	}
	return &service{datasets: byName}
}

func (s *service) Scenarios(_ context.Context) []string {
	names := lo.Keys(s.datasets)
	sort.Strings(names)
	return names
}

func (s *service) dataset(name string) (*domain.ScenarioDataset, error) {
	ds, ok := s.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrScenarioNotFound)
	}
	return ds, nil
}

func (s *service) Summary(_ context.Context, scenario string) (*domain.Summary, error) {
	ds, err := s.dataset(scenario)
	if err != nil {
		return nil, err
	}
	summary := ds.Summary
	return &summary, nil
}

// Resources returns a copy; generated collections are immutable and callers
// must not be handed the shared backing slice.
func (s *service) Resources(_ context.Context, scenario string) ([]domain.CloudResource, error) {
	ds, err := s.dataset(scenario)
	if err != nil {
		return nil, err
	}
	resources := make([]domain.CloudResource, len(ds.Resources))
	copy(resources, ds.Resources)
	return resources, nil
}

// CostSummary folds cost entries within [start, end] into the aggregate
// shape the dashboard's cost-summary query expects. Zero start/end leave the
// corresponding bound open.
func (s *service) CostSummary(
	_ context.Context,
	scenario string,
	start, end time.Time,
) (*domain.CostSummary, error) {
	ds, err := s.dataset(scenario)
	if err != nil {
		return nil, err
	}

	entries := lo.Filter(ds.CostEntries, func(e domain.CostEntry, _ int) bool {
		if !start.IsZero() && e.Date.Before(start) {
			return false
		}
		if !end.IsZero() && e.Date.After(end) {
			return false
		}
		return true
	})

	byProvider := map[domain.Provider]float64{}
	byService := map[string]float64{}
	byDate := map[time.Time]float64{}
	var total float64
	for _, e := range entries {
		byProvider[e.Provider] += e.Cost
		byService[e.Service] += e.Cost
		byDate[e.Date] += e.Cost
		total += e.Cost
	}

	daily := lo.MapToSlice(byDate, func(date time.Time, cost float64) domain.DailyCost {
		return domain.DailyCost{Date: date, Cost: round2(cost)}
	})
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })

	for p, c := range byProvider {
		byProvider[p] = round2(c)
	}
	for svc, c := range byService {
		byService[svc] = round2(c)
	}

	return &domain.CostSummary{
		Scenario:   scenario,
		Start:      start,
		End:        end,
		TotalCost:  round2(total),
		Currency:   ds.Summary.Currency,
		ByProvider: byProvider,
		ByService:  byService,
		Daily:      daily,
	}, nil
}

func (s *service) ResourceUsage(_ context.Context, scenario, resourceID string) ([]domain.UsagePattern, error) {
	ds, err := s.dataset(scenario)
	if err != nil {
		return nil, err
	}

	if !lo.ContainsBy(ds.Resources, func(r domain.CloudResource) bool { return r.ID == resourceID }) {
		return nil, fmt.Errorf("%q: %w", resourceID, ErrResourceNotFound)
	}

	return lo.Filter(ds.UsagePatterns, func(p domain.UsagePattern, _ int) bool {
		return p.ResourceID == resourceID
	}), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
