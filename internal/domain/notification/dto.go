package notification

import (
	"time"

	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

// AnnouncementRequest is a supervisor broadcast to every guard
type AnnouncementRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (r *AnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateNotificationRequest targets a single recipient
type CreateNotificationRequest struct {
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
}

// MarkAsReadRequest marks specific notifications as read
type MarkAsReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
}

func (r *MarkAsReadRequest) Validate() error {
	if len(r.NotificationIDs) == 0 {
		return validator.ValidationErrors{{
			Field:   "notification_ids",
			Message: "notification_ids must not be empty",
		}}
	}
	return nil
}

// ============= Response DTOs =============

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// UnreadCountResponse represents unread count response
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
