package ingest

import (
	"fmt"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
)

// Rows converted by TableSpec hold int64, float64, *float64, bool and time.Time values
// in the order of the table spec columns.

func dailyActivityFromRow(row []any) (d fitbit.DailyActivity, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed daily activity row: %v", r)
		}
	}()

	return fitbit.DailyActivity{
		UserID:                   row[0].(int64),
		ActivityDate:             row[1].(time.Time),
		TotalSteps:               int(row[2].(int64)),
		TotalDistance:            row[3].(float64),
		TrackerDistance:          row[4].(float64),
		LoggedActivitiesDistance: row[5].(float64),
		VeryActiveDistance:       row[6].(float64),
		ModeratelyActiveDistance: row[7].(float64),
		LightActiveDistance:      row[8].(float64),
		SedentaryActiveDistance:  row[9].(float64),
		VeryActiveMinutes:        int(row[10].(int64)),
		FairlyActiveMinutes:      int(row[11].(int64)),
		LightlyActiveMinutes:     int(row[12].(int64)),
		SedentaryMinutes:         int(row[13].(int64)),
		Calories:                 int(row[14].(int64)),
	}, nil
}

func dailyActivityRow(d fitbit.DailyActivity) []any {
	return []any{
		d.UserID,
		d.ActivityDate,
		int64(d.TotalSteps),
		d.TotalDistance,
		d.TrackerDistance,
		d.LoggedActivitiesDistance,
		d.VeryActiveDistance,
		d.ModeratelyActiveDistance,
		d.LightActiveDistance,
		d.SedentaryActiveDistance,
		int64(d.VeryActiveMinutes),
		int64(d.FairlyActiveMinutes),
		int64(d.LightlyActiveMinutes),
		int64(d.SedentaryMinutes),
		int64(d.Calories),
	}
}

func weightLogFromRow(row []any) (w fitbit.WeightLog, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed weight log row: %v", r)
		}
	}()

	return fitbit.WeightLog{
		UserID:         row[0].(int64),
		Date:           row[1].(time.Time),
		WeightKg:       row[2].(*float64),
		WeightPounds:   row[3].(*float64),
		Fat:            row[4].(*float64),
		BMI:            row[5].(*float64),
		IsManualReport: row[6].(bool),
		LogID:          row[7].(int64),
	}, nil
}

func weightLogRow(w fitbit.WeightLog) []any {
	return []any{
		w.UserID,
		w.Date,
		w.WeightKg,
		w.WeightPounds,
		w.Fat,
		w.BMI,
		w.IsManualReport,
		w.LogID,
	}
}
