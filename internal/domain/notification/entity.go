package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAnnouncement     NotificationType = "announcement"
	TypeShiftAssigned    NotificationType = "shift_assigned"
	TypeShiftUpdated     NotificationType = "shift_updated"
	TypeIncidentReviewed NotificationType = "incident_reviewed"
	TypeMarkedAbsent     NotificationType = "marked_absent"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case TypeAnnouncement, TypeShiftAssigned, TypeShiftUpdated, TypeIncidentReviewed, TypeMarkedAbsent:
		return true
	}
	return false
}

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeAnnouncement,
		TypeShiftAssigned,
		TypeShiftUpdated,
		TypeIncidentReviewed,
		TypeMarkedAbsent,
	}
}

// Notification represents one recipient's copy of a message
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
