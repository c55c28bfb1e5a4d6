package shift

import (
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	GuardID         string  `json:"guard_id"`
	Date            string  `json:"date"`       // YYYY-MM-DD
	StartTime       string  `json:"start_time"` // HH:MM:SS
	EndTime         string  `json:"end_time"`   // HH:MM:SS
	LocationName    string  `json:"location_name"`
	LocationAddress *string `json:"location_address"`
	Notes           *string `json:"notes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GuardID) {
		errs = append(errs, validator.ValidationError{
			Field:   "guard_id",
			Message: "guard_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM:SS format",
		})
	}
	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM:SS format",
		})
	}
	if validator.IsEmpty(r.LocationName) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_name",
			Message: "location_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID              string  `json:"-"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	LocationName    *string `json:"location_name"`
	LocationAddress *string `json:"location_address"`
	Notes           *string `json:"notes"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM:SS format",
			})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM:SS format",
			})
		}
	}
	if r.LocationName != nil && validator.IsEmpty(*r.LocationName) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_name",
			Message: "location_name cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID               string  `json:"id"`
	GuardID          string  `json:"guard_id"`
	GuardName        *string `json:"guard_name,omitempty"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	LocationName     string  `json:"location_name"`
	LocationAddress  *string `json:"location_address,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	AttendanceStatus *string `json:"attendance_status,omitempty"`
	CreatedAt        string  `json:"created_at"`
}
