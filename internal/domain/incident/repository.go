package incident

import "context"

// IncidentRepository defines data access for incident reports.
type IncidentRepository interface {
	// Create inserts a new incident report
	Create(ctx context.Context, inc Incident) (Incident, error)

	// GetByID retrieves an incident by ID
	GetByID(ctx context.Context, id string) (Incident, error)

	// List retrieves incidents with guard names joined, newest first
	List(ctx context.Context, filter IncidentFilter) ([]Incident, int64, error)

	// ListByGuard retrieves a guard's own incidents, newest first
	ListByGuard(ctx context.Context, guardID string, filter IncidentFilter) ([]Incident, int64, error)

	// UpdateStatus advances the review state, recording the reviewer when
	// the incident is resolved.
	UpdateStatus(ctx context.Context, id string, status Status, reviewerID string) (Incident, error)
}
