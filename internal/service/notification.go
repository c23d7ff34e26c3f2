package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]domain.Notification, error)
	CreatePartnerRequest(ctx context.Context, request domain.PartnerRequest) (domain.PartnerRequest, error)
}

// NotificationService creates notification documents for domain events. All
// dispatch paths are best-effort: failures log and never propagate.
type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{
		repo: repo,
	}
}

func (s *NotificationService) List(ctx context.Context, userID uint, limit int) ([]domain.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	return notifications, nil
}

func (s *NotificationService) NotifyLike(ctx context.Context, thought domain.Thought, likerID uint) {
	if thought.AuthorID == likerID {
		return
	}

	s.dispatch(ctx, domain.Notification{
		UserID:     thought.AuthorID,
		Type:       domain.NotificationLike,
		Message:    "Someone liked your thought",
		ActorID:    likerID,
		ResourceID: fmt.Sprintf("thoughts/%d", thought.ID),
	})
}

func (s *NotificationService) SendPartnerRequest(ctx context.Context, fromID, toID uint) (domain.PartnerRequest, error) {
	request, err := s.repo.CreatePartnerRequest(ctx, domain.PartnerRequest{
		FromID: fromID,
		ToID:   toID,
		Status: "pending",
	})
	if err != nil {
		return domain.PartnerRequest{}, fmt.Errorf("s.repo.CreatePartnerRequest -> %w", err)
	}

	s.dispatch(ctx, domain.Notification{
		UserID:     toID,
		Type:       domain.NotificationPartnerRequest,
		Message:    "You have a new partner request",
		ActorID:    fromID,
		ResourceID: fmt.Sprintf("partnerRequests/%d", request.ID),
	})

	return request, nil
}

func (s *NotificationService) NotifyVerificationSubmitted(ctx context.Context, userID uint) {
	s.dispatch(ctx, domain.Notification{
		UserID:  userID,
		Type:    domain.NotificationVerificationSubmitted,
		Message: "Your verification was submitted and is under review",
	})
}

// NotifyInviteClaimed sends the two claim notifications: the welcome to the
// claimer and the heads-up to the host.
func (s *NotificationService) NotifyInviteClaimed(ctx context.Context, invitational domain.Invitational, claimerID uint) {
	s.dispatch(ctx, domain.Notification{
		UserID:     claimerID,
		Type:       domain.NotificationInviteWelcome,
		Message:    fmt.Sprintf("Welcome to %s", invitational.Name),
		ResourceID: fmt.Sprintf("invitationals/%d", invitational.ID),
	})
	s.dispatch(ctx, domain.Notification{
		UserID:     invitational.HostID,
		Type:       domain.NotificationInviteClaimed,
		Message:    "A roster spot on your invitational was claimed",
		ActorID:    claimerID,
		ResourceID: fmt.Sprintf("invitationals/%d", invitational.ID),
	})
}

func (s *NotificationService) dispatch(ctx context.Context, notification domain.Notification) {
	notification.ID = uuid.NewString()

	if _, err := s.repo.Create(ctx, notification); err != nil {
		zap.L().Warn("notifications: dispatch failed",
			zap.Uint("user_id", notification.UserID),
			zap.String("type", string(notification.Type)),
			zap.Error(err))
	}
}
