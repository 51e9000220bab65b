package dashboard

import (
	"fmt"
	"sort"

	"github.com/2beens/fitbitdash/internal/analytics"
	"github.com/2beens/fitbitdash/internal/fitbit"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ColorHighlight = "#00B3BD"
	ColorDefault   = "#CFEBEC"
)

var activityColors = map[string]string{
	analytics.CategoryVeryActive:    "#005B8D",
	analytics.CategoryFairlyActive:  "#006166",
	analytics.CategoryLightlyActive: ColorHighlight,
	analytics.CategorySedentary:     ColorDefault,
}

var printer = message.NewPrinter(language.English)

type ChartPoint struct {
	X     any     `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
	Label string  `json:"label,omitempty"`
}

// FitLine holds the endpoints of a fitted regression line over the x range of a scatter.
type FitLine struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type Chart struct {
	Title       string            `json:"title"`
	XLabel      string            `json:"xLabel,omitempty"`
	YLabel      string            `json:"yLabel,omitempty"`
	Points      []ChartPoint      `json:"points"`
	Empty       bool              `json:"empty"`
	Message     string            `json:"message,omitempty"`
	Coefficient *analytics.Result `json:"coefficient,omitempty"`
	Fit         *FitLine          `json:"fit,omitempty"`
}

// MetricBlock is one of the headline numbers on top of a tab.
type MetricBlock struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// highlightTop colors the n largest points, the rest get the default color.
func highlightTop(points []ChartPoint, n int) {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return points[order[a]].Y > points[order[b]].Y
	})
	for rank, i := range order {
		if rank < n && points[i].Y > 0 {
			points[i].Color = ColorHighlight
		} else {
			points[i].Color = ColorDefault
		}
	}
}

func newChart(title, xLabel, yLabel string, points []ChartPoint) Chart {
	c := Chart{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Points: points,
	}
	if len(points) == 0 {
		c.Points = []ChartPoint{}
		c.Empty = true
		c.Message = analytics.NoDataMessage
	}
	return c
}

// HourlyChart renders per hour means as bars labeled HH:00, top 3 hours highlighted.
func HourlyChart(title, yLabel string, buckets []analytics.HourBucket) Chart {
	points := make([]ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, ChartPoint{X: HourLabel(b.Hour), Y: b.Value})
	}
	highlightTop(points, 3)
	return newChart(title, "Hour", yLabel, points)
}

// WeekdayChart renders one column of the weekday buckets, Monday to Sunday.
// Weekdays without data are plotted at zero. The top 2 days are highlighted.
func WeekdayChart(title string, column fitbit.DailyColumn, buckets []analytics.WeekdayBucket) Chart {
	points := make([]ChartPoint, 0, len(buckets))
	populated := 0
	for _, b := range buckets {
		p := ChartPoint{X: b.Day}
		if b.Count > 0 {
			p.Y = b.Values[column]
			populated++
		}
		points = append(points, p)
	}
	highlightTop(points, 2)

	c := newChart(title, "Day", string(column), points)
	if populated == 0 {
		c.Empty = true
		c.Message = analytics.NoDataMessage
	}
	return c
}

func BlockChart(title, yLabel string, buckets []analytics.BlockBucket) Chart {
	points := make([]ChartPoint, 0, len(buckets))
	populated := 0
	for _, b := range buckets {
		points = append(points, ChartPoint{X: string(b.Block), Y: b.Value})
		if b.Count > 0 {
			populated++
		}
	}
	highlightTop(points, 2)

	c := newChart(title, "Block", yLabel, points)
	if populated == 0 {
		c.Empty = true
		c.Message = analytics.NoDataMessage
	}
	return c
}

// CategoryChart renders pie or bar slices. Activity categories keep their fixed colors.
func CategoryChart(title string, buckets []analytics.CategoryBucket) Chart {
	points := make([]ChartPoint, 0, len(buckets))
	total := 0.0
	for _, b := range buckets {
		color, ok := activityColors[b.Category]
		if !ok {
			color = ColorHighlight
		}
		points = append(points, ChartPoint{X: b.Category, Y: b.Value, Color: color, Label: b.Category})
		total += b.Value
	}

	c := newChart(title, "", "", points)
	if total == 0 {
		c.Empty = true
		c.Message = analytics.NoDataMessage
	}
	return c
}

func FrequencyChart(title string, buckets []analytics.FrequencyBucket) Chart {
	points := make([]ChartPoint, 0, len(buckets))
	total := 0
	for _, b := range buckets {
		points = append(points, ChartPoint{X: b.Day, Y: b.Frequency, Label: printer.Sprintf("%d days", b.Count)})
		total += b.Count
	}
	highlightTop(points, 2)

	c := newChart(title, "Day", "Frequency", points)
	if total == 0 {
		c.Empty = true
		c.Message = analytics.NoDataMessage
	}
	return c
}

// ScatterChart renders a correlation, with the fitted line when there is one.
func ScatterChart(title string, corr analytics.Correlation) Chart {
	points := make([]ChartPoint, 0, len(corr.Points))
	minX, maxX := 0.0, 0.0
	for i, p := range corr.Points {
		points = append(points, ChartPoint{X: p.X, Y: p.Y, Color: ColorHighlight, Label: p.Label})
		if i == 0 || p.X < minX {
			minX = p.X
		}
		if i == 0 || p.X > maxX {
			maxX = p.X
		}
	}

	c := newChart(title, corr.XLabel, corr.YLabel, points)
	coefficient := corr.Coefficient
	c.Coefficient = &coefficient
	if corr.FitResult.IsValue() {
		c.Fit = &FitLine{
			X1: minX,
			Y1: corr.Fit.At(minX),
			X2: maxX,
			Y2: corr.Fit.At(maxX),
		}
	}
	return c
}

// FormatResult renders a Result with thousands separators and the given decimals.
func FormatResult(r analytics.Result, decimals int) string {
	v, ok := r.Float()
	if !ok {
		return r.Message
	}
	return printer.Sprintf("%.*f", decimals, v)
}

func SummaryBlocks(s analytics.Summary) []MetricBlock {
	return []MetricBlock{
		{Title: "Users", Value: FormatResult(s.Users, 0)},
		{Title: "Average Steps", Value: FormatResult(s.Steps, 0), Unit: "steps"},
		{Title: "Average Calories", Value: FormatResult(s.Calories, 0), Unit: "kcal"},
		{Title: "Average Distance", Value: FormatResult(s.Distance, 2), Unit: "km"},
		{Title: "Average Active Minutes", Value: FormatResult(s.ActiveMinutes, 0), Unit: "min"},
		{Title: "Average Sedentary Minutes", Value: FormatResult(s.SedentaryMinutes, 0), Unit: "min"},
	}
}
