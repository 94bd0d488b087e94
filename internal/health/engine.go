// Package health derives body metrics from raw visitor measurements.
package health

import "math"

// Gender selects the formula variant for the derived metrics.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Weight status classifications relative to the ideal weight.
const (
	StatusUnder = "Under Ideal Weight"
	StatusIdeal = "Ideal Weight"
	StatusOver  = "Over Ideal Weight"
)

// Measurement is the raw visitor input. It is ephemeral; only the derived
// report is ever persisted.
type Measurement struct {
	Name   string  `json:"name"`
	Height float64 `json:"height"` // cm
	Weight float64 `json:"weight"` // kg
	Age    int     `json:"age"`    // years
	Gender Gender  `json:"gender"`
	Phone  string  `json:"phone"`
}

// Metrics holds the derived values, rounded to two decimals. A nil field
// means the inputs that metric requires were not all strictly positive;
// no partial or garbage value is ever exposed.
type Metrics struct {
	IdealWeight  *float64 `json:"idealWeight,omitempty"`
	BMI          *float64 `json:"bmi,omitempty"`
	BMR          *float64 `json:"bmr,omitempty"`
	BodyFatPct   *float64 `json:"bodyFat,omitempty"`
	WeightStatus string   `json:"weightStatus,omitempty"`
}

// Compute derives every metric whose inputs are available. Metrics needing
// only height and weight are produced when both are positive; BMR and body
// fat additionally require a positive age. Partial input yields a subset of
// defined metrics, never an error.
func Compute(m Measurement) Metrics {
	var out Metrics
	h, w, a := m.Height, m.Weight, float64(m.Age)

	if h > 0 && w > 0 {
		ideal := (h - 100) * 0.90
		if m.Gender == GenderFemale {
			ideal = (h - 100) * 0.85
		}
		out.IdealWeight = ptr(round2(ideal))
		// Classified against the unrounded ideal. The exact-equality
		// branch is kept as-is even though user-entered weights rarely
		// hit it.
		switch {
		case w < ideal:
			out.WeightStatus = StatusUnder
		case w == ideal:
			out.WeightStatus = StatusIdeal
		default:
			out.WeightStatus = StatusOver
		}
		out.BMI = ptr(round2(w / math.Pow(h/100, 2)))
	}

	if h > 0 && w > 0 && a > 0 {
		bmr := 10*w + 6.25*h - 5*a + 5
		fat := 1.20*(w/math.Pow(h/100, 2)) + 0.23*a - 16.2
		if m.Gender == GenderFemale {
			bmr = 10*w + 6.25*h - 5*a - 161
			fat = 1.20*(w/math.Pow(h/100, 2)) + 0.23*a - 5.4
		}
		out.BMR = ptr(round2(bmr))
		out.BodyFatPct = ptr(round2(fat))
	}

	return out
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}
