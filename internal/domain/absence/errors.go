package absence

import "errors"

// Absence domain errors
var (
	ErrAbsenceNotFound         = errors.New("absence report not found")
	ErrAbsenceAlreadyProcessed = errors.New("absence report has already been approved or rejected")
	ErrInvalidDateRange        = errors.New("start date must not be after end date")
)
