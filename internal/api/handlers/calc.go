package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/lightpath/cband/internal/planner"
	"github.com/lightpath/cband/internal/spectrum"
	"github.com/lightpath/cband/pkg/models"
)

// CalcHandler handles channel placement HTTP requests
type CalcHandler struct {
	planner planner.Service
}

// NewCalcHandler creates a new calc handler
func NewCalcHandler(svc planner.Service) *CalcHandler {
	return &CalcHandler{planner: svc}
}

// CalcByCenter places a channel around a free-text center value.
func (h *CalcHandler) CalcByCenter(ctx context.Context, req *models.CalcByCenterRequest) (*models.CalcByCenterResponse, error) {
	plan, err := h.planner.PlanByCenter(req.Body.Slices, req.Body.Value)
	if err != nil {
		return nil, mapPlanError(err, req.Body.Value)
	}

	log.Info().
		Int("slices", plan.Slices).
		Float64("center_thz", plan.CenterTHz).
		Floats64("band", plan.Band[:]).
		Msg("Planned channel by center")
	return &models.CalcByCenterResponse{Body: *plan}, nil
}

// CalcByStart places a channel from a requested start frequency.
func (h *CalcHandler) CalcByStart(ctx context.Context, req *models.CalcByStartRequest) (*models.CalcByStartResponse, error) {
	plan, err := h.planner.PlanByStart(req.Body.Slices, req.Body.StartTHz)
	if err != nil {
		return nil, mapPlanError(err, "")
	}

	log.Info().
		Int("slices", plan.Slices).
		Float64("start_thz", req.Body.StartTHz).
		Float64("center_thz", plan.CenterTHz).
		Msg("Planned channel by start")
	return &models.CalcByStartResponse{Body: *plan}, nil
}

// mapPlanError translates engine errors into client errors. A bad request
// never takes the process down or leaks as a 500.
func mapPlanError(err error, value string) error {
	switch {
	case errors.Is(err, spectrum.ErrNoNumericValue):
		return huma.Error400BadRequest("No numeric center value found in input", err)
	case errors.Is(err, spectrum.ErrNonPositiveValue):
		return huma.Error400BadRequest("Frequency or wavelength must be positive", err)
	default:
		log.Error().Err(err).Str("value", value).Msg("Channel placement failed")
		return huma.Error500InternalServerError("Failed to compute channel placement", err)
	}
}
