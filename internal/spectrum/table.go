// Package spectrum converts between C-band wavelengths and frequencies and
// parses human-entered channel centers. Conversions prefer an empirical
// reference table when one was loaded and fall back to the physical relation
// f = c/λ otherwise.
package spectrum

import (
	"errors"
	"math"
	"sort"

	"github.com/lightpath/cband/internal/grid"
)

// SpeedOfLight is c expressed in nm·THz, so that THz = SpeedOfLight / nm.
const SpeedOfLight = 299792.458

// ErrNonPositiveValue reports a wavelength or frequency that cannot be
// converted (zero, negative, or not finite).
var ErrNonPositiveValue = errors.New("wavelength or frequency must be a positive finite number")

// Entry is one reference pair from a wavelength table.
type Entry struct {
	NM  float64
	THz float64
}

// Table is an ordered wavelength↔frequency reference, ascending by
// wavelength. It is built once at startup and never mutated, so concurrent
// readers need no synchronization. The zero value (empty table) is valid and
// routes every conversion through the physical formula.
type Table struct {
	entries []Entry
}

// NewTable builds a table from entries. The caller's slice is copied; the
// table sorts it ascending by wavelength.
func NewTable(entries []Entry) Table {
	s := make([]Entry, len(entries))
	copy(s, entries)
	sortEntries(s)
	return Table{entries: s}
}

// Len reports the number of reference pairs.
func (t Table) Len() int { return len(t.entries) }

// FrequencyOf converts a wavelength in nm to a frequency in THz, snapped to
// the 6.25 GHz grid and rounded to five digits. With a non-empty table the
// entry nearest by wavelength wins; on a distance tie the first entry in
// ascending-wavelength order is kept.
func (t Table) FrequencyOf(nm float64) (float64, error) {
	if err := checkPositive(nm); err != nil {
		return 0, err
	}
	thz := SpeedOfLight / nm
	if len(t.entries) > 0 {
		thz = t.nearest(nm, func(e Entry) float64 { return e.NM }).THz
	}
	return grid.Round5(grid.Snap(grid.FromFloat(thz), grid.Step6G25)), nil
}

// WavelengthOf converts a frequency in THz to a wavelength in nm, rounded to
// five digits. Wavelengths have no grid, so no snap is applied.
func (t Table) WavelengthOf(thz float64) (float64, error) {
	if err := checkPositive(thz); err != nil {
		return 0, err
	}
	nm := SpeedOfLight / thz
	if len(t.entries) > 0 {
		nm = t.nearest(thz, func(e Entry) float64 { return e.THz }).NM
	}
	return grid.Round5(grid.FromFloat(nm)), nil
}

// nearest returns the entry minimizing |col(e) − v|. Strict comparison keeps
// the first of two equidistant entries, which pins the tie-break to table
// order.
func (t Table) nearest(v float64, col func(Entry) float64) Entry {
	best := t.entries[0]
	bestDist := math.Abs(col(best) - v)
	for _, e := range t.entries[1:] {
		if d := math.Abs(col(e) - v); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func checkPositive(v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonPositiveValue
	}
	return nil
}

func sortEntries(s []Entry) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].NM < s[j].NM })
}
