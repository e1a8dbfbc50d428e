package analytics

import "github.com/pkordes/fleet-analytics/internal/domain"

// Chart colours for the two tallied statuses.
const (
	CompletedColor = "#088395"
	ScheduledColor = "#37B7C3"
)

// StatusDistribution tallies completed and scheduled trips.
// The result always has exactly two entries, Completed first, even when both
// counts are zero. Any other status (including an empty one) is not counted.
func StatusDistribution(trips []domain.Trip) []domain.StatusCount {
	var completed, scheduled int
	for _, t := range trips {
		switch t.Status {
		case domain.TripCompleted:
			completed++
		case domain.TripScheduled:
			scheduled++
		}
	}
	return []domain.StatusCount{
		{Name: string(domain.TripCompleted), Count: completed, Color: CompletedColor},
		{Name: string(domain.TripScheduled), Count: scheduled, Color: ScheduledColor},
	}
}
