package fitbit

import "math"

// PoundsPerKg is the conversion factor used to fill in missing WeightKg values.
const PoundsPerKg = 2.20462262

func PoundsToKg(lb float64) float64 {
	return lb / PoundsPerKg
}

// BackfillWeightKg fills in WeightKg from WeightPounds where it is missing.
// Rows with a WeightKg already set are never touched, so running it again is a no-op.
// The input slice is not modified.
func BackfillWeightKg(logs []WeightLog) ([]WeightLog, int) {
	out := make([]WeightLog, len(logs))
	changed := 0
	for i, l := range logs {
		if l.WeightKg == nil && l.WeightPounds != nil {
			kg := PoundsToKg(*l.WeightPounds)
			l.WeightKg = &kg
			changed++
		}
		out[i] = l
	}
	return out, changed
}

// EstimateBodyFat estimates the body fat percentage from BMI, age and gender
// (adult BMI based formula).
func EstimateBodyFat(bmi float64, age int, gender Gender) float64 {
	offset := 16.2
	if gender == GenderFemale {
		offset = 5.4
	}
	return bmi*1.2 + 0.23*float64(age) - offset
}

// BackfillFat fills in the missing Fat values of rows with a known BMI,
// using the demographics assigned to each user. Non-null values are kept.
func BackfillFat(logs []WeightLog, demographics *Demographics) ([]WeightLog, int) {
	out := make([]WeightLog, len(logs))
	changed := 0
	for i, l := range logs {
		if l.Fat == nil && l.BMI != nil && !math.IsNaN(*l.BMI) {
			person := demographics.For(l.UserID)
			fat := EstimateBodyFat(*l.BMI, person.Age, person.Gender)
			l.Fat = &fat
			changed++
		}
		out[i] = l
	}
	return out, changed
}
