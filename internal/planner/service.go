// Package planner computes channel band placement from a requested center
// or band start.
package planner

import (
	"github.com/shopspring/decimal"

	"github.com/lightpath/cband/internal/grid"
	"github.com/lightpath/cband/internal/spectrum"
	"github.com/lightpath/cband/pkg/models"
)

// Service places channels on the flexible grid.
type Service interface {
	PlanByCenter(slices int, value string) (*models.BandPlan, error)
	PlanByStart(slices int, startTHz float64) (*models.BandPlan, error)
}

type plannerService struct {
	table spectrum.Table
}

// NewService creates a planner using the given wavelength reference table.
func NewService(table spectrum.Table) Service {
	return &plannerService{table: table}
}

// normalizeSlices coerces every requested count except 7 to 6. Invalid
// counts are silently absorbed rather than rejected; see DESIGN.md.
func normalizeSlices(slices int) int {
	if slices != 7 {
		return 6
	}
	return 7
}

// PlanByCenter parses the free-text center, snaps it to the 6.25 GHz grid,
// and lays half of the channel width to each side before snapping the edges
// to the 12.5 GHz grid.
func (s *plannerService) PlanByCenter(slices int, value string) (*models.BandPlan, error) {
	slices = normalizeSlices(slices)

	centerTHz, err := s.table.ParseCenter(value)
	if err != nil {
		return nil, err
	}

	center := grid.FromFloat(centerTHz)
	half := grid.Width(slices).Div(decimal.NewFromInt(2))
	start := grid.Snap(center.Sub(half), grid.Step12G5)
	end := grid.Snap(center.Add(half), grid.Step12G5)

	centerNM, err := s.table.WavelengthOf(centerTHz)
	if err != nil {
		return nil, err
	}

	return &models.BandPlan{
		Slices:    slices,
		Band:      [2]float64{grid.Round5(start), grid.Round5(end)},
		CenterTHz: grid.Round5(center),
		CenterNM:  centerNM,
		WidthGHz:  grid.WidthGHz(slices),
	}, nil
}

// PlanByStart snaps the requested start to the 12.5 GHz grid, derives the
// end from the channel width, and snaps the midpoint to the 6.25 GHz grid.
func (s *plannerService) PlanByStart(slices int, startTHz float64) (*models.BandPlan, error) {
	slices = normalizeSlices(slices)

	start := grid.Snap(grid.FromFloat(startTHz), grid.Step12G5)
	end := grid.Snap(start.Add(grid.Width(slices)), grid.Step12G5)
	center := grid.Snap(start.Add(end).Div(decimal.NewFromInt(2)), grid.Step6G25)

	centerNM, err := s.table.WavelengthOf(grid.Round5(center))
	if err != nil {
		return nil, err
	}

	return &models.BandPlan{
		Slices:    slices,
		Band:      [2]float64{grid.Round5(start), grid.Round5(end)},
		CenterTHz: grid.Round5(center),
		CenterNM:  centerNM,
		WidthGHz:  grid.WidthGHz(slices),
	}, nil
}
