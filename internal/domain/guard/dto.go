package guard

import (
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

type CreateGuardRequest struct {
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone"`
	Password       string  `json:"password"`
	ShiftStartTime *string `json:"shift_start_time,omitempty"` // HH:MM:SS
	ShiftEndTime   *string `json:"shift_end_time,omitempty"`   // HH:MM:SS
	LocationName   *string `json:"location_name,omitempty"`
}

func (r *CreateGuardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if r.ShiftStartTime != nil && *r.ShiftStartTime != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ShiftStartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start_time",
				Message: "shift_start_time must be in HH:MM:SS format",
			})
		}
	}

	if r.ShiftEndTime != nil && *r.ShiftEndTime != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ShiftEndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end_time",
				Message: "shift_end_time must be in HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateGuardRequest struct {
	ID              string  `json:"-"`
	FullName        *string `json:"full_name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ShiftStartTime  *string `json:"shift_start_time,omitempty"`
	ShiftEndTime    *string `json:"shift_end_time,omitempty"`
	LocationName    *string `json:"location_name,omitempty"`
	LocationAddress *string `json:"location_address,omitempty"`
}

func (r *UpdateGuardRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.ShiftStartTime != nil && *r.ShiftStartTime != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ShiftStartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start_time",
				Message: "shift_start_time must be in HH:MM:SS format",
			})
		}
	}

	if r.ShiftEndTime != nil && *r.ShiftEndTime != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ShiftEndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end_time",
				Message: "shift_end_time must be in HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GuardResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	FullName        string  `json:"full_name"`
	Phone           string  `json:"phone"`
	Role            string  `json:"role"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	ShiftStartTime  *string `json:"shift_start_time,omitempty"`
	ShiftEndTime    *string `json:"shift_end_time,omitempty"`
	LocationName    *string `json:"location_name,omitempty"`
	LocationAddress *string `json:"location_address,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
