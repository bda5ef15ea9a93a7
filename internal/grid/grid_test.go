package grid

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeHalfUp(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int32
		want   string
	}{
		{"already exact", 193.975, 5, "193.975"},
		{"tie rounds up", 193.975015, 5, "193.97502"},
		{"half at last digit", 0.000005, 5, "0.00001"},
		{"binary artifact regression", 2.675, 2, "2.68"},
		{"negative tie away from zero", -2.675, 2, "-2.68"},
		{"no-op below precision", 193.1, 5, "193.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantize(FromFloat(tt.value), tt.places)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Quantize(%v, %d) = %s, want %s", tt.value, tt.places, got, tt.want)
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		step  decimal.Decimal
		want  string
	}{
		{"on 6.25 grid stays", 193.1, Step6G25, "193.1"},
		{"on 12.5 grid stays", 193.0625, Step12G5, "193.0625"},
		{"below midpoint down", 193.1017, Step6G25, "193.1"},
		{"above midpoint up", 193.104, Step6G25, "193.10625"},
		{"exact half-step rounds up", 193.10625, Step12G5, "193.1125"},
		{"exact half-step rounds up 6.25", 193.103125, Step6G25, "193.10625"},
		{"negative value", -0.009, Step6G25, "-0.00625"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(FromFloat(tt.value), tt.step)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Snap(%v) = %s, want %s", tt.value, got, tt.want)
		})
	}
}

func TestSnapIdempotent(t *testing.T) {
	values := []float64{190.0, 191.35, 193.1, 193.10317, 195.99999, 196.275, 1552.52}
	for _, step := range []decimal.Decimal{Step6G25, Step12G5} {
		for _, v := range values {
			once := Snap(FromFloat(v), step)
			twice := Snap(once, step)
			require.True(t, once.Equal(twice), "snap not idempotent for %v step %s", v, step)
		}
	}
}

func TestSnapGridMembership(t *testing.T) {
	values := []float64{190.0071, 191.35, 193.1017, 196.2}
	steps := map[string]decimal.Decimal{"6.25": Step6G25, "12.5": Step12G5}
	for name, step := range steps {
		for _, v := range values {
			snapped := Snap(FromFloat(v), step)
			ratio, _ := snapped.Div(step).Float64()
			assert.InDelta(t, math.Round(ratio), ratio, 1e-9,
				"value %v not on %s GHz grid after snap", v, name)
		}
	}
}

func TestWidth(t *testing.T) {
	assert.True(t, Width(6).Equal(decimal.RequireFromString("0.075")))
	assert.True(t, Width(7).Equal(decimal.RequireFromString("0.0875")))
	assert.Equal(t, 75.0, WidthGHz(6))
	assert.Equal(t, 87.5, WidthGHz(7))
}

func TestRound5(t *testing.T) {
	assert.Equal(t, 193.975, Round5(FromFloat(193.975)))
	assert.Equal(t, 193.41449, Round5(FromFloat(193.414489)))
	assert.Equal(t, 193.41449, Round5(FromFloat(193.414485)))
}
