package repository

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
)

// NotificationRepository describes persistence operations for notifications.
// All read/mutate operations are scoped to the owning user.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	SetRead(ctx context.Context, id, userID int64, read bool) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}
