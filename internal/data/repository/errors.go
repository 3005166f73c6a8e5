package repository

import "errors"

// ErrBookingConflict is returned by the checked booking insert when an
// existing pending or confirmed booking overlaps the candidate interval.
var ErrBookingConflict = errors.New("booking time slot conflict")
