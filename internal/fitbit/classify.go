package fitbit

type UserClass string

const (
	UserClassLight    UserClass = "Light"
	UserClassModerate UserClass = "Moderate"
	UserClassHeavy    UserClass = "Heavy"
)

// ClassifyUser buckets a user by the number of daily records they contributed.
func ClassifyUser(recordCount int) UserClass {
	switch {
	case recordCount <= 10:
		return UserClassLight
	case recordCount <= 15:
		return UserClassModerate
	default:
		return UserClassHeavy
	}
}

type WeightCategory string

const (
	Weight50To70   WeightCategory = "50 - 70kg"
	Weight70To90   WeightCategory = "70 - 90kg"
	Weight90To110  WeightCategory = "90 - 110kg"
	Weight110To130 WeightCategory = "110 - 130kg"
)

var WeightCategories = []WeightCategory{Weight50To70, Weight70To90, Weight90To110, Weight110To130}

// ClassifyWeight maps a weight to its 20kg band, lower edges inclusive.
// Anything under 70 falls in the first band and anything from 110 up in the last.
func ClassifyWeight(kg float64) WeightCategory {
	switch {
	case kg >= 110:
		return Weight110To130
	case kg >= 90:
		return Weight90To110
	case kg >= 70:
		return Weight70To90
	default:
		return Weight50To70
	}
}

type IntensityLevel string

const (
	IntensityLow    IntensityLevel = "Low (0-0.2)"
	IntensityMedium IntensityLevel = "Medium (0.2-0.5)"
	IntensityHigh   IntensityLevel = "High (0.5+)"
)

var IntensityLevels = []IntensityLevel{IntensityLow, IntensityMedium, IntensityHigh}

// ClassifyIntensity buckets the hourly average intensity.
func ClassifyIntensity(averageIntensity float64) IntensityLevel {
	switch {
	case averageIntensity < 0.2:
		return IntensityLow
	case averageIntensity < 0.5:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}

type HeartRateZone string

const (
	ZoneRest    HeartRateZone = "Rest (0-70 bpm)"
	ZoneActive  HeartRateZone = "Active (70-120 bpm)"
	ZoneIntense HeartRateZone = "Intense (120+ bpm)"
)

var HeartRateZones = []HeartRateZone{ZoneRest, ZoneActive, ZoneIntense}

func ClassifyHeartRateZone(bpm float64) HeartRateZone {
	switch {
	case bpm < 70:
		return ZoneRest
	case bpm < 120:
		return ZoneActive
	default:
		return ZoneIntense
	}
}
