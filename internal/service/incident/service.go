package incident

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/incident"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/notification"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/utils"
	"github.com/guardtrack/guardtrack-backend-go/internal/service/file"
)

type IncidentServiceImpl struct {
	incident.IncidentRepository
	fileService     file.FileService
	notificationSvc notification.Service
}

func NewIncidentService(
	incidentRepo incident.IncidentRepository,
	fileService file.FileService,
	notificationSvc notification.Service,
) incident.IncidentService {
	return &IncidentServiceImpl{
		IncidentRepository: incidentRepo,
		fileService:        fileService,
		notificationSvc:    notificationSvc,
	}
}

func claimsFromContext(ctx context.Context) (guardID string, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	guardID, ok := claims["guard_id"].(string)
	if !ok || guardID == "" {
		return "", "", fmt.Errorf("guard_id claim is missing or invalid")
	}
	role, _ = claims["role"].(string)
	return guardID, role, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func toIncidentResponse(inc incident.Incident) incident.IncidentResponse {
	return incident.IncidentResponse{
		ID:          inc.ID,
		GuardID:     inc.GuardID,
		GuardName:   inc.GuardName,
		Title:       inc.Title,
		Description: inc.Description,
		Location:    inc.Location,
		Latitude:    inc.Latitude,
		Longitude:   inc.Longitude,
		PhotoURL:    inc.PhotoURL,
		Status:      string(inc.Status),
		ResolvedBy:  inc.ResolvedBy,
		ResolvedAt:  timePtrToString(inc.ResolvedAt),
		CreatedAt:   inc.CreatedAt.Format(time.RFC3339),
	}
}

// ReportIncident implements incident.IncidentService.
func (s *IncidentServiceImpl) ReportIncident(ctx context.Context, req incident.CreateIncidentRequest) (incident.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return incident.IncidentResponse{}, err
	}

	guardID, _, err := claimsFromContext(ctx)
	if err != nil {
		return incident.IncidentResponse{}, err
	}

	if req.File != nil && req.FileHeader != nil {
		photoURL, err := s.fileService.UploadIncidentPhoto(ctx, guardID, req.File, req.FileHeader.Filename)
		if err != nil {
			return incident.IncidentResponse{}, fmt.Errorf("failed to upload incident photo: %w", err)
		}
		req.PhotoURL = &photoURL
	}

	location := req.Location
	if location == nil || *location == "" {
		if formatted := utils.FormatCoordinates(req.Latitude, req.Longitude); formatted != "" {
			location = &formatted
		}
	}

	created, err := s.IncidentRepository.Create(ctx, incident.Incident{
		GuardID:     guardID,
		Title:       req.Title,
		Description: req.Description,
		Location:    location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PhotoURL:    req.PhotoURL,
		Status:      incident.StatusPending,
	})
	if err != nil {
		return incident.IncidentResponse{}, fmt.Errorf("failed to create incident: %w", err)
	}

	return toIncidentResponse(created), nil
}

// GetIncident implements incident.IncidentService.
func (s *IncidentServiceImpl) GetIncident(ctx context.Context, id string) (incident.IncidentResponse, error) {
	guardID, role, err := claimsFromContext(ctx)
	if err != nil {
		return incident.IncidentResponse{}, err
	}

	inc, err := s.IncidentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incident.IncidentResponse{}, incident.ErrIncidentNotFound
		}
		return incident.IncidentResponse{}, fmt.Errorf("failed to get incident: %w", err)
	}

	// Guards only see their own reports.
	if role != "supervisor" && inc.GuardID != guardID {
		return incident.IncidentResponse{}, incident.ErrIncidentNotOwned
	}

	return toIncidentResponse(inc), nil
}

func toListResponse(incidents []incident.Incident, total int64, filter incident.IncidentFilter) incident.ListIncidentsResponse {
	responses := make([]incident.IncidentResponse, 0, len(incidents))
	for _, inc := range incidents {
		responses = append(responses, toIncidentResponse(inc))
	}
	return incident.ListIncidentsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Incidents:  responses,
	}
}

// ListIncidents implements incident.IncidentService.
func (s *IncidentServiceImpl) ListIncidents(ctx context.Context, filter incident.IncidentFilter) (incident.ListIncidentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return incident.ListIncidentsResponse{}, err
	}

	incidents, total, err := s.IncidentRepository.List(ctx, filter)
	if err != nil {
		return incident.ListIncidentsResponse{}, fmt.Errorf("failed to list incidents: %w", err)
	}
	return toListResponse(incidents, total, filter), nil
}

// ListMyIncidents implements incident.IncidentService.
func (s *IncidentServiceImpl) ListMyIncidents(ctx context.Context, filter incident.IncidentFilter) (incident.ListIncidentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return incident.ListIncidentsResponse{}, err
	}

	guardID, _, err := claimsFromContext(ctx)
	if err != nil {
		return incident.ListIncidentsResponse{}, err
	}

	incidents, total, err := s.IncidentRepository.ListByGuard(ctx, guardID, filter)
	if err != nil {
		return incident.ListIncidentsResponse{}, fmt.Errorf("failed to list incidents: %w", err)
	}
	return toListResponse(incidents, total, filter), nil
}

// UpdateStatus implements incident.IncidentService.
func (s *IncidentServiceImpl) UpdateStatus(ctx context.Context, req incident.UpdateIncidentStatusRequest) (incident.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return incident.IncidentResponse{}, err
	}

	reviewerID, _, err := claimsFromContext(ctx)
	if err != nil {
		return incident.IncidentResponse{}, err
	}

	current, err := s.IncidentRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incident.IncidentResponse{}, incident.ErrIncidentNotFound
		}
		return incident.IncidentResponse{}, fmt.Errorf("failed to get incident: %w", err)
	}
	if current.Status == incident.StatusResolved {
		return incident.IncidentResponse{}, incident.ErrAlreadyResolved
	}

	updated, err := s.IncidentRepository.UpdateStatus(ctx, req.ID, incident.Status(req.Status), reviewerID)
	if err != nil {
		return incident.IncidentResponse{}, fmt.Errorf("failed to update incident status: %w", err)
	}

	if s.notificationSvc != nil {
		_ = s.notificationSvc.Notify(ctx, notification.CreateNotificationRequest{
			RecipientID: updated.GuardID,
			SenderID:    &reviewerID,
			Type:        notification.TypeIncidentReviewed,
			Title:       "Incident Update",
			Message:     fmt.Sprintf("Your incident %q is now %s", updated.Title, updated.Status),
		})
	}

	return toIncidentResponse(updated), nil
}
