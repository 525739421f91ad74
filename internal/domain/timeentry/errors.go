package timeentry

import (
	"errors"
	"fmt"
)

// Time entry domain errors
var (
	// Clock event errors
	ErrAlreadyClockedIn = errors.New("you are already clocked in")
	ErrNotClockedIn     = errors.New("you are not clocked in")
	ErrLocationRequired = errors.New("location is required to clock in at the office")

	// General errors
	ErrTimeEntryNotFound = errors.New("time entry not found")
)

// OutOfGeofenceError rejects a presential clock event recorded outside the
// office radius. It carries the measured distance and the configured limit so
// the user understands the rejection.
type OutOfGeofenceError struct {
	DistanceMeters float64
	LimitMeters    int
}

func (e *OutOfGeofenceError) Error() string {
	return fmt.Sprintf("you are %.0fm away from the office, the allowed radius is %dm",
		e.DistanceMeters, e.LimitMeters)
}
