package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/notification"
	"github.com/guardtrack/guardtrack-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	Announce(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// Announce implements NotificationHandler.
func (h *notificationHandlerImpl) Announce(w http.ResponseWriter, r *http.Request) {
	var req notification.AnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.Announce(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement sent successfully", nil)
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	pageSize := 20
	if l := r.URL.Query().Get("page_size"); l != "" {
		if sizeNum, err := strconv.Atoi(l); err == nil && sizeNum > 0 {
			pageSize = sizeNum
		}
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	results, err := h.notificationService.GetNotifications(r.Context(), page, pageSize, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UnreadCount implements NotificationHandler.
func (h *notificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationService.GetUnreadCount(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notification.UnreadCountResponse{UnreadCount: count})
}

// MarkAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var req notification.MarkAsReadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as read", nil)
}

// MarkAllAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.MarkAllAsRead(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// Delete implements NotificationHandler.
func (h *notificationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.notificationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification deleted successfully", nil)
}
