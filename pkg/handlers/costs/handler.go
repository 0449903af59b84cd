package costs

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/api"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/dataset"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/synth"
)

type Handler struct {
	datasets dataset.Service
}

func NewHandler(datasets dataset.Service) *Handler {
	return &Handler{datasets: datasets}
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var response []api.ScenarioInfo
	for _, name := range h.datasets.Scenarios(ctx) {
		summary, err := h.datasets.Summary(ctx, name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response = append(response, api.ScenarioInfo{
			Name:           name,
			Description:    synth.ScenarioDescription(name),
			TotalResources: summary.TotalResources,
			TotalCost:      summary.TotalCost,
			Currency:       summary.Currency,
		})
	}

	writeJSON(w, r, response)
}

func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scenario := chi.URLParam(r, "scenario")

	resources, err := h.datasets.Resources(ctx, scenario)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, resources)
}

func (h *Handler) GetCostSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scenario := chi.URLParam(r, "scenario")

	start, err := parseDateParam(r, "start_date")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}
	end, err := parseDateParam(r, "end_date")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		writeBadRequest(w, r, errors.New("end_date is before start_date"))
		return
	}

	summary, err := h.datasets.CostSummary(ctx, scenario, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, summary)
}

func (h *Handler) GetResourceUsage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scenario := chi.URLParam(r, "scenario")
	resourceID := chi.URLParam(r, "resource")

	patterns, err := h.datasets.ResourceUsage(ctx, scenario, resourceID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, patterns)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errors.New(name + " must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	status := http.StatusInternalServerError
	if errors.Is(err, dataset.ErrScenarioNotFound) || errors.Is(err, dataset.ErrResourceNotFound) {
		status = http.StatusNotFound
	} else {
		logger.Error().Err(err).Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
