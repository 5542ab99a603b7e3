package shared

import "errors"

// Domain outcomes that callers are expected to handle. None of these are
// system failures: the API layer maps them to 4xx responses and they are
// never logged at error level.
var (
	// ErrIncompleteProfile means the user has not set both a diet type and a
	// fitness plan, so suggestions and plan generation cannot run.
	ErrIncompleteProfile = errors.New("profile is missing diet type or fitness plan")

	// ErrNoCandidates means the catalog has no meal matching the user's
	// diet, plan and allergy filters.
	ErrNoCandidates = errors.New("no meals match the current diet, plan and allergy filters")

	// ErrNotFound means an id did not resolve to a record.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means a role or ownership check failed.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidTransition means an appointment has already been decided.
	ErrInvalidTransition = errors.New("appointment has already been decided")

	// ErrInvalidDate means a booking date is not strictly after today.
	ErrInvalidDate = errors.New("appointment date must be in the future")

	// ErrValidation means a request body failed a field-level check. It is
	// always wrapped with a message naming the offending field.
	ErrValidation = errors.New("validation failed")
)
