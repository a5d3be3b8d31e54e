package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Lookup errors
	ErrNotFound       = fmt.Errorf("record not found")
	ErrVenueNotFound  = fmt.Errorf("venue not found")
	ErrArtistNotFound = fmt.Errorf("artist not found")
	ErrShowNotFound   = fmt.Errorf("show not found")

	// Persistence errors
	ErrPersistence         = fmt.Errorf("persistence failure")
	ErrConstraintViolation = fmt.Errorf("constraint violation")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
