package domain

// RouteCount is the number of trips recorded on one directional route.
type RouteCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// StatusCount is one slice of the trip status chart.
type StatusCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// MonthlySeries holds two parallel slices: Labels[i] is a "M/YY" month key and
// Averages[i] the mean trip distance for that month, rounded to 2 decimals.
type MonthlySeries struct {
	Labels   []string  `json:"labels"`
	Averages []float64 `json:"averages"`
}

// TripAnalytics bundles every aggregate shown on the trip analytics dashboard.
// Degraded is true when the trip set could not be fetched and every aggregate
// was reset to empty.
type TripAnalytics struct {
	Routes       []RouteCount  `json:"routes"`
	Statuses     []StatusCount `json:"statuses"`
	Monthly      MonthlySeries `json:"monthly"`
	LongestTrips []Trip        `json:"longest_trips"`
	TripCount    int           `json:"trip_count"`
	Degraded     bool          `json:"degraded"`
}

// AnalyticsFilter carries dashboard filter values exactly as the user typed
// them. A nil field means "not supplied" and selects the configured default;
// a supplied value is parsed leniently (non-numeric becomes 0).
type AnalyticsFilter struct {
	MinCount *string
	TopN     *string
}
