package repository

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

type NotificationDAO interface {
	Insert(ctx context.Context, notification dao.Notification) (dao.Notification, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]dao.Notification, error)
	InsertPartnerRequest(ctx context.Context, request dao.PartnerRequest) (dao.PartnerRequest, error)
}

type NotificationRepository struct {
	dao NotificationDAO
}

func NewNotificationRepository(dao NotificationDAO) *NotificationRepository {
	return &NotificationRepository{
		dao: dao,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	created, err := r.dao.Insert(ctx, dao.Notification{
		ID:         notification.ID,
		UserID:     notification.UserID,
		Type:       string(notification.Type),
		Message:    notification.Message,
		ActorID:    notification.ActorID,
		ResourceID: notification.ResourceID,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	notification.CreatedAt = created.CreatedAt

	return notification, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.Notification, error) {
	found, err := r.dao.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByUser -> %w", err)
	}

	notifications := make([]domain.Notification, 0, len(found))
	for _, n := range found {
		notifications = append(notifications, domain.Notification{
			ID:         n.ID,
			UserID:     n.UserID,
			Type:       domain.NotificationType(n.Type),
			Message:    n.Message,
			ActorID:    n.ActorID,
			ResourceID: n.ResourceID,
			Read:       n.Read,
			CreatedAt:  n.CreatedAt,
		})
	}

	return notifications, nil
}

func (r *NotificationRepository) CreatePartnerRequest(ctx context.Context, request domain.PartnerRequest) (domain.PartnerRequest, error) {
	created, err := r.dao.InsertPartnerRequest(ctx, dao.PartnerRequest{
		FromID: request.FromID,
		ToID:   request.ToID,
		Status: request.Status,
	})
	if err != nil {
		return domain.PartnerRequest{}, fmt.Errorf("r.dao.InsertPartnerRequest -> %w", err)
	}

	request.ID = created.ID
	request.CreatedAt = created.CreatedAt
	request.UpdatedAt = created.UpdatedAt

	return request, nil
}
