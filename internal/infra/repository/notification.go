package repository

import (
	"context"
	"time"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

// CreateJob queues an outbox row in the caller's transaction.
func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	sql, args, err := db.Builder.Insert("notification_jobs").
		Columns("kind", "topic", "payload", "run_at", "status").
		Values(kind, topic, payload, runAt, "queued").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification job", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
