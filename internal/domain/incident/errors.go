package incident

import "errors"

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrInvalidStatus    = errors.New("invalid incident status")
	ErrIncidentNotOwned = errors.New("incident does not belong to this guard")
	ErrAlreadyResolved  = errors.New("incident is already resolved")
)
