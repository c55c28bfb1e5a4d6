package incident

import (
	"mime/multipart"
	"strings"

	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

type CreateIncidentRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    *string `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`

	PhotoURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if r.Latitude != 0 && !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != 0 && !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader != nil {
		filename := strings.ToLower(r.FileHeader.Filename)
		if !strings.HasSuffix(filename, ".jpg") && !strings.HasSuffix(filename, ".jpeg") && !strings.HasSuffix(filename, ".png") {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "photo must be a .jpg, .jpeg, or .png file",
			})
		}
		if r.FileHeader.Size > 10<<20 {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "photo must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateIncidentStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateIncidentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IncidentFilter struct {
	Status *string `json:"status"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *IncidentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IncidentResponse struct {
	ID          string  `json:"id"`
	GuardID     string  `json:"guard_id"`
	GuardName   *string `json:"guard_name,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    *string `json:"location,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Status      string  `json:"status"`
	ResolvedBy  *string `json:"resolved_by,omitempty"`
	ResolvedAt  *string `json:"resolved_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListIncidentsResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Incidents  []IncidentResponse `json:"incidents"`
}
