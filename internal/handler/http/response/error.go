package response

import (
	"errors"
	"net/http"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/attendance"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/auth"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/incident"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/notification"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/shift"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrCheckInNotAllowed):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveAttendance):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Guard domain errors
	case errors.Is(err, guard.ErrGuardNotFound):
		NotFound(w, "Guard not found")
	case errors.Is(err, guard.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, guard.ErrSupervisorAccessRequired):
		Forbidden(w, "Supervisor access required")
	case errors.Is(err, guard.ErrCannotDeleteSupervisor):
		Forbidden(w, "Supervisor accounts cannot be deleted")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftOverlap):
		Conflict(w, "Guard already has a shift on this date")

	// Incident domain errors
	case errors.Is(err, incident.ErrIncidentNotFound):
		NotFound(w, "Incident not found")
	case errors.Is(err, incident.ErrIncidentNotOwned):
		Forbidden(w, "You can only view your own incidents")
	case errors.Is(err, incident.ErrAlreadyResolved):
		Conflict(w, "Incident is already resolved")
	case errors.Is(err, incident.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNoRecipients):
		BadRequest(w, "No guards to notify", nil)
	case errors.Is(err, notification.ErrInvalidNotificationType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
