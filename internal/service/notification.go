package service

import (
	"context"
	"farmconnect-api/internal/entity"
	"farmconnect-api/internal/repo"
)

type NotificationService struct {
	notificationRepo repo.Notification
}

func NewNotificationService(repos *repo.Repositories) *NotificationService {
	return &NotificationService{notificationRepo: repos.Notification}
}

func (s *NotificationService) GetNotificationsByRecipientId(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.NotificationOutputModel, error) {
	notifications, err := s.notificationRepo.GetNotificationsByRecipientId(ctx, recipientId, pg)
	if err != nil {
		return nil, err
	}

	return mapNotifications(notifications), nil
}
