package health

// Advisory band labels for metrics outside their typical range. Bands are a
// pure display derivation recomputed from stored values, never persisted.
const (
	BandLow  = "Low"
	BandHigh = "High"
)

// BMIBand flags a BMI outside the normal range. Returns "" when in range.
func BMIBand(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BandLow
	case bmi > 24.9:
		return BandHigh
	}
	return ""
}

// BMRBand flags a basal metabolic rate outside the typical range for the
// gender.
func BMRBand(bmr float64, g Gender) string {
	lo, hi := 1500.0, 1900.0
	if g == GenderFemale {
		lo, hi = 1200.0, 1600.0
	}
	switch {
	case bmr < lo:
		return BandLow
	case bmr > hi:
		return BandHigh
	}
	return ""
}

// BodyFatBand flags a body fat percentage outside the typical range for the
// gender.
func BodyFatBand(pct float64, g Gender) string {
	lo, hi := 8.0, 20.0
	if g == GenderFemale {
		lo, hi = 18.0, 30.0
	}
	switch {
	case pct < lo:
		return BandLow
	case pct > hi:
		return BandHigh
	}
	return ""
}
