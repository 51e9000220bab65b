package analytics

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	NotEnoughDataMessage = "Sorry, there is not enough data for this statistic"
	NoDataMessage        = "No data for the selected period"
)

type Kind string

const (
	KindValue     Kind = "value"
	KindNoData    Kind = "no_data"
	KindUndefined Kind = "undefined"
)

// Result is a single number that may be missing. NoData means the filter selected
// no rows; Undefined means there were rows, but the statistic can not be computed
// from them (too few points, zero variance).
type Result struct {
	Kind    Kind
	Value   float64
	Message string
	// Reason says why a statistic is undefined, it is not shown to users
	Reason string
}

// Value wraps a computed number. NaN and infinities are never exposed as values.
func Value(v float64) Result {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined("not a finite number")
	}
	return Result{Kind: KindValue, Value: v}
}

func NoData() Result {
	return Result{Kind: KindNoData, Message: NoDataMessage}
}

func Undefined(reason string) Result {
	return Result{Kind: KindUndefined, Message: NotEnoughDataMessage, Reason: reason}
}

func (r Result) IsValue() bool {
	return r.Kind == KindValue
}

// Float returns the value and whether there is one.
func (r Result) Float() (float64, bool) {
	return r.Value, r.Kind == KindValue
}

func (r Result) String() string {
	switch r.Kind {
	case KindValue:
		return fmt.Sprintf("%g", r.Value)
	case KindNoData, KindUndefined:
		return r.Message
	default:
		return fmt.Sprintf("unknown result kind: %s", r.Kind)
	}
}

type resultJSON struct {
	Kind    Kind     `json:"kind"`
	Value   *float64 `json:"value,omitempty"`
	Message string   `json:"message,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Kind:    r.Kind,
		Message: r.Message,
	}
	if r.Kind == KindValue {
		v := r.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Kind {
	case KindValue:
		if in.Value == nil {
			return fmt.Errorf("result of kind value has no value")
		}
		*r = Value(*in.Value)
	case KindNoData:
		*r = NoData()
	case KindUndefined:
		*r = Undefined("")
	default:
		return fmt.Errorf("unknown result kind: %s", in.Kind)
	}

	return nil
}
