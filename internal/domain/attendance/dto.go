package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `json:"location"` // reverse-geocoded address, may be empty
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	Location   string                `json:"location"`
	PhotoURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "check-out photo is required",
		})
	} else {
		filename := r.FileHeader.Filename
		ext := ""
		if idx := strings.LastIndex(filename, "."); idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "check-out photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                string   `json:"id"`
	GuardID           string   `json:"guard_id"`
	GuardName         *string  `json:"guard_name,omitempty"`
	ShiftID           *string  `json:"shift_id,omitempty"`
	Date              string   `json:"date"`
	Status            string   `json:"status"`
	CheckInTime       *string  `json:"check_in_time,omitempty"`
	CheckInLocation   *string  `json:"check_in_location,omitempty"`
	CheckInLatitude   float64  `json:"check_in_latitude"`
	CheckInLongitude  float64  `json:"check_in_longitude"`
	CheckOutTime      *string  `json:"check_out_time,omitempty"`
	CheckOutLocation  *string  `json:"check_out_location,omitempty"`
	CheckOutLatitude  float64  `json:"check_out_latitude"`
	CheckOutLongitude float64  `json:"check_out_longitude"`
	CheckOutPhotoURL  *string  `json:"check_out_photo_url,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// TodayResponse is the home-screen state: the most recent record for the
// local day plus the legal next actions.
type TodayResponse struct {
	Record      *RecordResponse `json:"record,omitempty"`
	CanCheckIn  bool            `json:"can_check_in"`
	CanCheckOut bool            `json:"can_check_out"`
}

type HistoryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, checked_in, late, checked_out, absent",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Showing    string           `json:"showing"`
	Records    []RecordResponse `json:"records"`
}
