package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Reconciliation compares the summed hourly steps of each user day with the
// total steps of its daily activity row.
type Reconciliation struct {
	Days            int               `json:"days"`
	MatchingDays    int               `json:"matchingDays"`
	MatchPercentage Result            `json:"matchPercentage"`
	Mismatches      []fitbit.StepsDay `json:"mismatches"`
}

func (a *Analyzer) StepsReconciliation(ctx context.Context, filter fitbit.Filter) (_ Reconciliation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.steps-reconciliation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("steps-reconciliation", time.Now())

	days, err := a.repo.StepsReconciliation(ctx, filter)
	if err != nil {
		return Reconciliation{}, fmt.Errorf("steps reconciliation: %w", err)
	}

	rec := Reconciliation{
		Days:       len(days),
		Mismatches: make([]fitbit.StepsDay, 0),
	}
	for _, d := range days {
		if d.Matches() {
			rec.MatchingDays++
		} else {
			rec.Mismatches = append(rec.Mismatches, d)
		}
	}

	if rec.Days == 0 {
		a.noData("steps-reconciliation")
		rec.MatchPercentage = NoData()
		return rec, nil
	}
	rec.MatchPercentage = Value(float64(rec.MatchingDays) / float64(rec.Days) * 100)
	span.SetAttributes(attribute.Int("mismatches", len(rec.Mismatches)))

	return rec, nil
}
