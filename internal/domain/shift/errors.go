package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrShiftOverlap  = errors.New("guard already has a shift on this date")
)
