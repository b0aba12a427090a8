package usecase

import "github.com/minhvn/sourcehub/internal/domain/model"

// Notifier delivers best-effort notifications. Implementations must return
// immediately and must never surface failures to the caller; a lost
// notification is acceptable, a blocked or aborted business transition is not.
type Notifier interface {
	Notify(userID int64, t model.NotificationType, title, message, link string)
}
