package analytics

import (
	"sort"

	"StockLens/internal/domain/models"
)

// AlignCloses intersects the given histories on common trading dates and
// returns those dates (ISO form, ascending) plus one close series per
// history, all of equal length. Histories with disjoint calendars yield
// an empty result.
func AlignCloses(histories ...*models.History) ([]string, [][]float64) {
	if len(histories) == 0 {
		return nil, nil
	}

	// closing price per date, per series
	byDate := make([]map[string]float64, len(histories))
	for i, h := range histories {
		m := make(map[string]float64, len(h.Bars))
		for _, b := range h.Bars {
			m[b.Date.Format("2006-01-02")] = b.Close
		}
		byDate[i] = m
	}

	common := make([]string, 0, len(byDate[0]))
	for date := range byDate[0] {
		shared := true
		for _, m := range byDate[1:] {
			if _, ok := m[date]; !ok {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, date)
		}
	}
	sort.Strings(common)

	series := make([][]float64, len(histories))
	for i, m := range byDate {
		s := make([]float64, len(common))
		for j, date := range common {
			s[j] = m[date]
		}
		series[i] = s
	}
	return common, series
}
