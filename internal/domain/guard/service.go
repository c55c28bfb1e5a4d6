package guard

import "context"

// GuardService defines roster operations available to supervisors.
type GuardService interface {
	// CreateGuard registers a new security guard
	CreateGuard(ctx context.Context, req CreateGuardRequest) (GuardResponse, error)

	// GetGuard retrieves a single guard
	GetGuard(ctx context.Context, id string) (GuardResponse, error)

	// ListGuards retrieves the security roster
	ListGuards(ctx context.Context) ([]GuardResponse, error)

	// UpdateGuard updates profile and shift schedule fields
	UpdateGuard(ctx context.Context, req UpdateGuardRequest) (GuardResponse, error)

	// DeleteGuard removes a guard and, via cascade, their attendance history
	DeleteGuard(ctx context.Context, id string) error
}
