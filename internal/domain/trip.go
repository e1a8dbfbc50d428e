// Package domain contains the core data types for the fleet analytics service.
// This package has no infrastructure dependencies and is imported by every other
// internal package (repo, service, analytics, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip as recorded by the trip workflow.
type TripStatus string

const (
	TripScheduled  TripStatus = "Scheduled"
	TripCompleted  TripStatus = "Completed"
	TripInProgress TripStatus = "In Progress"
	TripCancelled  TripStatus = "Cancelled"
)

// Trip is a recorded journey between two named locations.
// Trips are written by an external trip-management workflow; this service only reads them.
type Trip struct {
	ID            uuid.UUID  `json:"id"`
	StartLocation string     `json:"start_location"`
	EndLocation   string     `json:"end_location"`
	StartTime     time.Time  `json:"start_time"`
	Distance      float64    `json:"distance"` // kilometres, non-negative
	Status        TripStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Route returns the directional route label for the trip, e.g. "Lyon → Paris".
// A→B and B→A are different routes.
func (t Trip) Route() string {
	return t.StartLocation + " → " + t.EndLocation
}
