package domain

import "sort"

// Aggregate groups facts by period and sums their counts. The result is
// ordered by (year, quarter) ascending no matter how facts were ordered.
func Aggregate(facts []*RegistrationFact) []PeriodTotal {
	totals := make(map[Period]int64, len(facts))
	for _, f := range facts {
		totals[f.Period] += f.RegistrationCount
	}

	series := make([]PeriodTotal, 0, len(totals))
	for p, total := range totals {
		series = append(series, PeriodTotal{Period: p, Total: total})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Before(series[j].Period)
	})

	return series
}
