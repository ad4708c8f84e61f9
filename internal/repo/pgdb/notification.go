package pgdb

import (
	"context"
	"farmconnect-api/internal/entity"
	"farmconnect-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type NotificationRepo struct {
	*postgres.Postgres
}

func NewNotificationRepo(pgdb *postgres.Postgres) *NotificationRepo {
	return &NotificationRepo{pgdb}
}

func (r *NotificationRepo) CreateNotification(ctx context.Context, input *entity.CreateNotificationInput) (uuid.UUID, error) {
	recipientUuid, err := uuid.Parse(input.RecipientId)
	if err != nil {
		return uuid.Nil, err
	}

	relatedUuid, err := nullableUuid(input.RelatedId)
	if err != nil {
		return uuid.Nil, err
	}

	createNotificationReq, args, _ := r.SqlBuilder.
		Insert("notification").
		Columns("recipient_id", "type", "message", "related_id").
		Values(recipientUuid, input.Type, input.Message, relatedUuid).
		Suffix("RETURNING id").
		ToSql()

	var notificationId uuid.UUID
	err = r.Database.QueryRow(createNotificationReq, args...).Scan(&notificationId)
	if err != nil {
		return uuid.Nil, err
	}

	return notificationId, nil
}

func (r *NotificationRepo) GetNotificationsByRecipientId(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.Notification, error) {
	uuidForm, err := uuid.Parse(recipientId)
	if err != nil {
		return nil, err
	}

	getNotificationsReq, args, _ := r.SqlBuilder.
		Select("id, recipient_id, type, message, related_id, created_at").
		From("notification").
		Where("recipient_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(getNotificationsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]entity.Notification, 0)
	for rows.Next() {
		var notification entity.Notification
		var createdAt time.Time
		if err := rows.Scan(&notification.Id, &notification.RecipientId, &notification.Type,
			&notification.Message, &notification.RelatedId, &createdAt); err != nil {
			return notifications, err
		}
		notification.CreatedAt = createdAt.Format(time.RFC3339)
		notifications = append(notifications, notification)
	}
	if err = rows.Err(); err != nil {
		return notifications, err
	}

	return notifications, nil
}
