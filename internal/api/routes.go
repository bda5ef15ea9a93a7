package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lightpath/cband/internal/api/handlers"
	"github.com/lightpath/cband/internal/planner"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, plannerSvc planner.Service) {
	calcHandler := handlers.NewCalcHandler(plannerSvc)

	huma.Register(api, huma.Operation{
		OperationID: "calcByCenter",
		Method:      http.MethodPost,
		Path:        "/api/calc/center",
		Summary:     "Place a channel around a center",
		Description: "Computes a 12.5 GHz-grid band around a center given as wavelength or frequency text",
		Tags:        []string{"Calc"},
	}, calcHandler.CalcByCenter)

	huma.Register(api, huma.Operation{
		OperationID: "calcByStart",
		Method:      http.MethodPost,
		Path:        "/api/calc/start",
		Summary:     "Place a channel from a band start",
		Description: "Computes a 12.5 GHz-grid band from a requested start frequency in THz",
		Tags:        []string{"Calc"},
	}, calcHandler.CalcByStart)
}
