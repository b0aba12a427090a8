package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/test"
)

func seedNotifications(t *testing.T, repo *test.NotificationRepositoryStub) {
	t.Helper()
	for _, n := range []model.Notification{
		{UserID: 1, Type: model.NotificationRFQReceived, Title: "one"},
		{UserID: 1, Type: model.NotificationOrderCreated, Title: "two", IsRead: true},
		{UserID: 2, Type: model.NotificationSystem, Title: "other user"},
	} {
		if _, err := repo.Create(context.Background(), &n); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
}

func TestNotificationList(t *testing.T) {
	repo := test.NewNotificationRepositoryStub()
	seedNotifications(t, repo)
	uc := NewNotificationUseCase(repo)

	all, err := uc.List(context.Background(), 1, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two notifications for user 1, got %d", len(all))
	}

	unread, err := uc.List(context.Background(), 1, true, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unread) != 1 || unread[0].Title != "one" {
		t.Fatalf("expected the single unread notification, got %+v", unread)
	}
}

func TestNotificationUnreadCount(t *testing.T) {
	repo := test.NewNotificationRepositoryStub()
	seedNotifications(t, repo)
	uc := NewNotificationUseCase(repo)

	count, err := uc.UnreadCount(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one unread, got %d", count)
	}
}

func TestNotificationSetReadOwnerScoped(t *testing.T) {
	repo := test.NewNotificationRepositoryStub()
	seedNotifications(t, repo)
	uc := NewNotificationUseCase(repo)

	updated, err := uc.SetRead(context.Background(), 1, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsRead {
		t.Fatal("expected notification marked read")
	}

	// User 2 cannot touch user 1's notification.
	if _, err := uc.SetRead(context.Background(), 2, 1, true); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign notification, got %v", err)
	}
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := test.NewNotificationRepositoryStub()
	seedNotifications(t, repo)
	uc := NewNotificationUseCase(repo)

	if err := uc.MarkAllRead(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, _ := uc.UnreadCount(context.Background(), 1)
	if count != 0 {
		t.Fatalf("expected zero unread after mark all, got %d", count)
	}
	// Other users are untouched.
	otherCount, _ := uc.UnreadCount(context.Background(), 2)
	if otherCount != 1 {
		t.Fatalf("expected user 2 unread intact, got %d", otherCount)
	}
}

func TestNotificationDeleteOwnerScoped(t *testing.T) {
	repo := test.NewNotificationRepositoryStub()
	seedNotifications(t, repo)
	uc := NewNotificationUseCase(repo)

	if err := uc.Delete(context.Background(), 2, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}
	if err := uc.Delete(context.Background(), 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rest, _ := uc.List(context.Background(), 1, false, 0)
	if len(rest) != 1 {
		t.Fatalf("expected one remaining notification, got %d", len(rest))
	}
}
