package incident

import "context"

// IncidentService defines business logic for incident reporting.
type IncidentService interface {
	// ReportIncident files a new incident for the authenticated guard
	ReportIncident(ctx context.Context, req CreateIncidentRequest) (IncidentResponse, error)

	// GetIncident retrieves a single incident
	GetIncident(ctx context.Context, id string) (IncidentResponse, error)

	// ListIncidents retrieves all incidents (supervisor)
	ListIncidents(ctx context.Context, filter IncidentFilter) (ListIncidentsResponse, error)

	// ListMyIncidents retrieves the authenticated guard's incidents
	ListMyIncidents(ctx context.Context, filter IncidentFilter) (ListIncidentsResponse, error)

	// UpdateStatus advances an incident's review state (supervisor)
	UpdateStatus(ctx context.Context, req UpdateIncidentStatusRequest) (IncidentResponse, error)
}
