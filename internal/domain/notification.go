package domain

import "time"

type NotificationType string

const (
	NotificationLike                  NotificationType = "like"
	NotificationPartnerRequest        NotificationType = "partner_request"
	NotificationVerificationSubmitted NotificationType = "verification_submitted"
	NotificationVerificationApproved  NotificationType = "verification_approved"
	NotificationInviteClaimed         NotificationType = "invite_claimed"
	NotificationInviteWelcome         NotificationType = "invite_welcome"
)

type Notification struct {
	ID         string           `json:"id"`
	UserID     uint             `json:"user_id"`
	Type       NotificationType `json:"type"`
	Message    string           `json:"message"`
	ActorID    uint             `json:"actor_id,omitempty"`
	ResourceID string           `json:"resource_id,omitempty"`
	Read       bool             `json:"read"`
	CreatedAt  time.Time        `json:"created_at"`
}

type PartnerRequest struct {
	ID        uint      `json:"id"`
	FromID    uint      `json:"from_id"`
	ToID      uint      `json:"to_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
