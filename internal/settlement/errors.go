package settlement

import "errors"

var (
	// ErrUnknownParticipant is returned when an expense references a payer or
	// involved participant that is not on the roster.
	ErrUnknownParticipant = errors.New("unknown participant")

	// ErrInvalidExpense is returned for expenses with a non-positive amount or
	// an empty involved list.
	ErrInvalidExpense = errors.New("invalid expense")

	// ErrInvalidParticipant is returned for participant names that are blank,
	// contain the involved-list delimiter, or are registered twice.
	ErrInvalidParticipant = errors.New("invalid participant")
)
