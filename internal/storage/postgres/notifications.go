package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/minhvn/sourcehub/internal/domain/errors"
	"github.com/minhvn/sourcehub/internal/domain/model"
)

type notificationRepository struct {
	storage *Storage
}

const notificationColumns = `id, user_id, type, title, message, link, is_read, created_at`

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (user_id, type, title, message, link)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, is_read, created_at`
	created := *n
	err := r.storage.pool.QueryRow(ctx, query, created.UserID, created.Type, created.Title, created.Message, created.Link).
		Scan(&created.ID, &created.IsRead, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id=$1`
	if unreadOnly {
		query += ` AND is_read=FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := r.storage.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id=$1 AND is_read=FALSE`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SetRead is owner-scoped: touching another user's notification reports not
// found, never the row's existence.
func (r *notificationRepository) SetRead(ctx context.Context, id, userID int64, read bool) (*model.Notification, error) {
	const query = `UPDATE notifications SET is_read=$1 WHERE id=$2 AND user_id=$3
                   RETURNING ` + notificationColumns
	var n model.Notification
	err := r.storage.pool.QueryRow(ctx, query, read, id, userID).
		Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	const query = `UPDATE notifications SET is_read=TRUE WHERE user_id=$1 AND is_read=FALSE`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

func (r *notificationRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM notifications WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
