package analytics

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/pkordes/fleet-analytics/internal/domain"
)

// MonthlyAverageDistance groups trips by the month they started in and
// returns the mean distance per month.
//
// Trips are ordered by start time first, so buckets appear in the order their
// first trip occurs. Month keys use a two-digit year ("3/24"), which means
// 1924 and 2024 share a bucket; callers that span a century must not rely on
// the labels alone. Months are computed in UTC.
func MonthlyAverageDistance(trips []domain.Trip) domain.MonthlySeries {
	series := domain.MonthlySeries{Labels: []string{}, Averages: []float64{}}
	if len(trips) == 0 {
		return series
	}

	sorted := slices.Clone(trips)
	slices.SortStableFunc(sorted, func(a, b domain.Trip) int {
		return a.StartTime.Compare(b.StartTime)
	})

	type bucket struct {
		total float64
		count int
	}
	index := make(map[string]int)
	var buckets []bucket

	for _, t := range sorted {
		key := MonthKey(t.StartTime)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, bucket{})
			series.Labels = append(series.Labels, key)
		}
		buckets[i].total += t.Distance
		buckets[i].count++
	}

	for _, b := range buckets {
		series.Averages = append(series.Averages, Round2(b.total/float64(b.count)))
	}
	return series
}

// MonthKey formats t as "<month>/<two-digit year>" in UTC, e.g. "11/24".
func MonthKey(t time.Time) string {
	t = t.UTC()
	year := strconv.Itoa(t.Year())
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return strconv.Itoa(int(t.Month())) + "/" + year
}

// Round2 rounds x to two decimal places, halves rounded up.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
