package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// BandPlan is the result of a channel placement computation. Band edges sit
// on the 12.5 GHz grid, the center on the 6.25 GHz grid; all frequency and
// wavelength values carry five fractional digits.
type BandPlan struct {
	Slices    int        `json:"slices" doc:"Slice count after normalization"`
	Band      [2]float64 `json:"band" doc:"Band start and end frequency in THz, on the 12.5 GHz grid"`
	CenterTHz float64    `json:"center_thz" doc:"Center frequency in THz, on the 6.25 GHz grid"`
	CenterNM  float64    `json:"center_nm" doc:"Center wavelength in nm"`
	WidthGHz  float64    `json:"width_ghz" doc:"Nominal channel width in GHz"`
}

// CalcByCenterRequest places a channel around a requested center. The value
// is free text: "1550.12 nm", "193,1 thz", or a bare number with the unit
// inferred from magnitude.
type CalcByCenterRequest struct {
	Body struct {
		Slices int    `json:"slices" required:"true" doc:"Requested slice count (7 or coerced to 6)"`
		Value  string `json:"value" minLength:"1" maxLength:"64" required:"true" doc:"Channel center as wavelength or frequency text"`
	}
}

// CalcByCenterResponse carries the computed band plan.
type CalcByCenterResponse struct {
	Body BandPlan
}

// CalcByStartRequest places a channel from a requested band start frequency.
type CalcByStartRequest struct {
	Body struct {
		Slices   int     `json:"slices" required:"true" doc:"Requested slice count (7 or coerced to 6)"`
		StartTHz float64 `json:"start_thz" required:"true" doc:"Requested band start frequency in THz"`
	}
}

// CalcByStartResponse carries the computed band plan.
type CalcByStartResponse struct {
	Body BandPlan
}
