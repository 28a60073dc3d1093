package dashboard

import "mediexplain/internal/models"

const (
	maxTrendSeries = 4
	minTrendPoints = 2
)

var trendPalette = []string{"#16a34a", "#dc2626", "#2563eb", "#7c3aed"}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type TrendSeries struct {
	Name   string       `json:"name"`
	Unit   string       `json:"unit"`
	Points []TrendPoint `json:"points"`
	Color  string       `json:"color"`
}

type observation struct {
	date  string
	value models.Measurement
}

type testGroup struct {
	name string
	unit string
	obs  []observation
}

// BuildTrends groups observations by test name in order of first
// appearance and keeps the first four groups that have at least two
// observations, all numeric.
func BuildTrends(entries []models.HistoryEntry) []TrendSeries {
	var groups []*testGroup
	byName := make(map[string]*testGroup)

	for _, e := range entries {
		for _, v := range e.Observations() {
			g, ok := byName[v.Test]
			if !ok {
				// unit of the first observation, even when empty
				g = &testGroup{name: v.Test, unit: v.Unit}
				byName[v.Test] = g
				groups = append(groups, g)
			}
			g.obs = append(g.obs, observation{date: e.Date, value: v.Value})
		}
	}

	series := make([]TrendSeries, 0, maxTrendSeries)
	for _, g := range groups {
		if len(series) == maxTrendSeries {
			break
		}
		points, ok := numericPoints(g.obs)
		if !ok {
			continue
		}
		series = append(series, TrendSeries{
			Name:   g.name,
			Unit:   g.unit,
			Points: points,
			Color:  trendPalette[len(series)%len(trendPalette)],
		})
	}
	return series
}

func numericPoints(obs []observation) ([]TrendPoint, bool) {
	if len(obs) < minTrendPoints {
		return nil, false
	}
	points := make([]TrendPoint, 0, len(obs))
	for _, o := range obs {
		v, ok := ParseValue(o.value)
		if !ok {
			return nil, false
		}
		points = append(points, TrendPoint{Date: DateLabel(o.date), Value: v})
	}
	return points, true
}
