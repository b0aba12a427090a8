package usecase

import (
	"context"

	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

const defaultNotificationLimit = 50

// NotificationUseCase exposes the per-user notification surface. Mutations
// are owner-scoped at the repository level.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List returns the user's notifications, newest first.
func (u *NotificationUseCase) List(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return u.notifications.ListByUser(ctx, userID, unreadOnly, limit)
}

// UnreadCount returns the number of unread notifications.
func (u *NotificationUseCase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return u.notifications.UnreadCount(ctx, userID)
}

// SetRead marks one notification read or unread.
func (u *NotificationUseCase) SetRead(ctx context.Context, userID, id int64, read bool) (*model.Notification, error) {
	return u.notifications.SetRead(ctx, id, userID, read)
}

// MarkAllRead marks every unread notification of the user as read.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID int64) error {
	return u.notifications.MarkAllRead(ctx, userID)
}

// Delete removes one notification owned by the user.
func (u *NotificationUseCase) Delete(ctx context.Context, userID, id int64) error {
	return u.notifications.Delete(ctx, id, userID)
}
