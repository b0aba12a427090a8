package dto

import (
	"time"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// NotificationResponse describes one notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse carries the unread counter.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// NotificationReadRequest flips the read flag.
type NotificationReadRequest struct {
	Read bool `json:"read"`
}

// ToNotificationResponse maps the domain notification to its transport form.
func ToNotificationResponse(n model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses maps a notification slice.
func ToNotificationResponses(list []model.Notification) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, ToNotificationResponse(n))
	}
	return resp
}
