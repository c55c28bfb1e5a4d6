package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/notification"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/telegram"
)

type NotificationServiceImpl struct {
	repo      notification.Repository
	guardRepo guard.GuardRepository
	telegram  *telegram.Notifier
}

// NewNotificationService wires the notification service. telegramNotifier
// may be nil when no bot token is configured.
func NewNotificationService(
	repo notification.Repository,
	guardRepo guard.GuardRepository,
	telegramNotifier *telegram.Notifier,
) notification.Service {
	return &NotificationServiceImpl{
		repo:      repo,
		guardRepo: guardRepo,
		telegram:  telegramNotifier,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	guardID, ok := claims["guard_id"].(string)
	if !ok || guardID == "" {
		return "", fmt.Errorf("guard_id claim is missing or invalid")
	}
	return guardID, nil
}

// Announce implements notification.Service.
func (s *NotificationServiceImpl) Announce(ctx context.Context, req notification.AnnouncementRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	senderID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	guards, err := s.guardRepo.ListByRole(ctx, guard.RoleSecurity)
	if err != nil {
		return fmt.Errorf("failed to list recipients: %w", err)
	}
	if len(guards) == 0 {
		return notification.ErrNoRecipients
	}

	now := time.Now().UTC()
	notifications := make([]*notification.Notification, 0, len(guards))
	for _, g := range guards {
		notifications = append(notifications, &notification.Notification{
			ID:          uuid.New().String(),
			RecipientID: g.ID,
			SenderID:    &senderID,
			Type:        notification.TypeAnnouncement,
			Title:       req.Title,
			Message:     req.Message,
			CreatedAt:   now,
		})
	}

	if err := s.repo.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	// Telegram is best effort. The announcement is already persisted.
	if s.telegram != nil {
		if err := s.telegram.Broadcast(req.Title, req.Message); err != nil {
			slog.Error("Failed to mirror announcement to telegram", "error", err)
		}
	}

	return nil
}

// Notify implements notification.Service.
func (s *NotificationServiceImpl) Notify(ctx context.Context, req notification.CreateNotificationRequest) error {
	if !req.Type.Valid() {
		return notification.ErrInvalidNotificationType
	}

	return s.repo.Create(ctx, &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC(),
	})
}

// GetNotifications implements notification.Service.
func (s *NotificationServiceImpl) GetNotifications(ctx context.Context, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := s.repo.GetByRecipient(ctx, userID, page, pageSize, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	unread, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unread count: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}

	return &notification.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetUnreadCount implements notification.Service.
func (s *NotificationServiceImpl) GetUnreadCount(ctx context.Context) (int, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, req notification.MarkAsReadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.MarkAsRead(ctx, req.NotificationIDs, userID)
}

// MarkAllAsRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.MarkAllAsRead(ctx, userID)
}

// Delete implements notification.Service.
func (s *NotificationServiceImpl) Delete(ctx context.Context, notificationID string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, notificationID, userID)
}
