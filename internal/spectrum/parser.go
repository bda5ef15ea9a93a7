package spectrum

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/lightpath/cband/internal/grid"
)

// ErrNoNumericValue reports center text that contains no parsable number.
var ErrNoNumericValue = errors.New("no numeric center value found")

var (
	unitRe   = regexp.MustCompile(`(?i)(nm|thz)`)
	numberRe = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)
)

// ParseCenter interprets free-form center text and returns the center
// frequency in THz, snapped to the 6.25 GHz grid and rounded to five digits.
//
// An explicit "nm" or "thz" token (first occurrence, any case) fixes the
// unit. Without one, a magnitude of 1000 or more reads as nanometers:
// C-band frequencies sit near 190 THz while the matching wavelengths sit
// near 1550 nm, so the ranges never overlap. A decimal comma is accepted in
// place of a point.
func (t Table) ParseCenter(text string) (float64, error) {
	raw := strings.TrimSpace(text)

	unit := ""
	if m := unitRe.FindString(raw); m != "" {
		unit = strings.ToLower(m)
	}

	num := numberRe.FindString(raw)
	if num == "" {
		return 0, ErrNoNumericValue
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", "."), 64)
	if err != nil {
		return 0, ErrNoNumericValue
	}

	if unit == "nm" || (unit == "" && val >= 1000) {
		return t.FrequencyOf(val)
	}
	return grid.Round5(grid.Snap(grid.FromFloat(val), grid.Step6G25)), nil
}
