package notification

import "context"

// Service defines the notification service interface
type Service interface {
	// Announce fans a supervisor broadcast out to every guard and, when a
	// Telegram notifier is configured, mirrors it to the channel.
	Announce(ctx context.Context, req AnnouncementRequest) error

	// Notify creates a single-recipient notification
	Notify(ctx context.Context, req CreateNotificationRequest) error

	// Direct operations for the authenticated user
	GetNotifications(ctx context.Context, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, notificationID string) error
}
