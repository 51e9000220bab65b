package ingest

import (
	"github.com/2beens/fitbitdash/internal/fitbit"
)

// minTrackedMinutes is the least number of minutes a kept day must account for.
const minTrackedMinutes = 1000

// CleanReport counts the daily activity rows dropped by each cleaning rule.
type CleanReport struct {
	Read                      int `json:"read"`
	Duplicates                int `json:"duplicates"`
	NoActivity                int `json:"noActivity"`
	StepsWithoutActiveMinutes int `json:"stepsWithoutActiveMinutes"`
	Incomplete                int `json:"incomplete"`
	Kept                      int `json:"kept"`
}

func (r CleanReport) Dropped() int {
	return r.Read - r.Kept
}

// CleanDailyActivity applies the cleaning rules in order:
//  1. exact duplicates are dropped, the first occurrence kept
//  2. days with no steps, no logged distance and no lightly active minutes are dropped
//  3. days with steps but no active minutes at all are dropped
//  4. days tracking fewer than 1000 minutes are dropped
//
// The input is not modified and the order of the kept rows is preserved.
func CleanDailyActivity(activities []fitbit.DailyActivity) ([]fitbit.DailyActivity, CleanReport) {
	report := CleanReport{Read: len(activities)}

	seen := make(map[fitbit.DailyActivity]struct{}, len(activities))
	cleaned := make([]fitbit.DailyActivity, 0, len(activities))
	for _, d := range activities {
		if _, ok := seen[d]; ok {
			report.Duplicates++
			continue
		}
		seen[d] = struct{}{}

		switch {
		case d.TotalSteps == 0 && d.LoggedActivitiesDistance == 0 && d.LightlyActiveMinutes == 0:
			report.NoActivity++
		case d.TotalSteps > 0 && d.ActiveMinutes() == 0:
			report.StepsWithoutActiveMinutes++
		case d.TrackedMinutes() < minTrackedMinutes:
			report.Incomplete++
		default:
			cleaned = append(cleaned, d)
		}
	}

	report.Kept = len(cleaned)
	return cleaned, report
}
