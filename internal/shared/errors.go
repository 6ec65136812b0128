package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Persistence errors
	ErrNotFound  = fmt.Errorf("record not found")
	ErrDuplicate = fmt.Errorf("record already exists")

	// Rental rules
	ErrVehicleUnavailable = fmt.Errorf("vehicle is not available")
	ErrWrongAgency        = fmt.Errorf("vehicle is not parked at the pickup agency")
	ErrInvalidPeriod      = fmt.Errorf("invalid rental period")
	ErrRentalClosed       = fmt.Errorf("rental already closed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
