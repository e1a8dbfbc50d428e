package domain

import "time"

// Truck is a vehicle in the fleet. TruckID is assigned once at creation
// (current maximum + 1) and never changes afterwards.
type Truck struct {
	TruckID       int64
	LicensePlate  string
	ChassisNumber string
	Capacity      float64

	// AssignedTruckerID references Trucker.TruckerID by value only.
	// Nothing enforces that the trucker exists.
	AssignedTruckerID *int64

	CreatedAt time.Time
}

// TruckDraft holds the caller-supplied fields of a truck that has not been
// validated yet. Capacity is nil when the field was absent.
// AssignedTruckerID is the raw decoded JSON value (nil when absent) so that
// a present-but-non-numeric value can be told apart from a missing one.
type TruckDraft struct {
	LicensePlate      string
	ChassisNumber     string
	Capacity          *float64
	AssignedTruckerID any
}

// Trucker is a driver who may be assigned to at most one truck.
type Trucker struct {
	TruckerID int64
	Name      string
	CreatedAt time.Time
}

// Assignment pairs a truck with the trucker its AssignedTruckerID points at.
// Trucker is nil when the truck is unassigned or references a trucker that
// does not exist (an orphaned reference).
type Assignment struct {
	Truck   Truck
	Trucker *Trucker
}

// Orphaned reports whether the truck names a trucker that could not be found.
func (a Assignment) Orphaned() bool {
	return a.Truck.AssignedTruckerID != nil && a.Trucker == nil
}
