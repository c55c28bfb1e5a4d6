package guard

import "context"

// GuardRepository defines data access methods for the guard roster.
type GuardRepository interface {
	// Create inserts a new guard record
	Create(ctx context.Context, g Guard) (Guard, error)

	// GetByID retrieves a guard by ID
	GetByID(ctx context.Context, id string) (Guard, error)

	// GetByEmail retrieves a guard by email (login path)
	GetByEmail(ctx context.Context, email string) (Guard, error)

	// ListByRole retrieves all guards with the given role, ordered by name
	ListByRole(ctx context.Context, role Role) ([]Guard, error)

	// Update updates mutable profile and shift fields
	Update(ctx context.Context, g Guard) error

	// Delete removes a guard; attendance rows cascade at the store level
	Delete(ctx context.Context, id string) error
}
