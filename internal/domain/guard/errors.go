package guard

import "errors"

var (
	ErrGuardNotFound            = errors.New("guard not found")
	ErrEmailExists              = errors.New("email already registered")
	ErrSupervisorAccessRequired = errors.New("supervisor access required")
	ErrCannotDeleteSupervisor   = errors.New("supervisor accounts cannot be deleted")
)
