package ports

import (
	"context"
	"time"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// NotificationRepository persists notification records. Writes that the
// backend rejects surface as domain.ErrPersistence.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// InsertMany writes one notification per element in a single batch.
	// On failure none of the batch is considered delivered.
	InsertMany(ctx context.Context, ns []*domain.Notification) error
	// ListByUser returns notifications for a user, newest first.
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	// MarkRead flips the read flag; scoped to the owning user.
	MarkRead(ctx context.Context, id, userID string, at time.Time) error
	// Delete removes a notification; scoped to the owning user.
	Delete(ctx context.Context, id, userID string) error
}
