package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID         string `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	Type       string `gorm:"not null"`
	Message    string `gorm:"not null"`
	ActorID    uint
	ResourceID string
	Read       bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"index;not null"`
}

type PartnerRequest struct {
	ID     uint   `gorm:"primaryKey"`
	FromID uint   `gorm:"index;not null"`
	ToID   uint   `gorm:"index;not null"`
	Status string `gorm:"not null;default:'pending'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		db: db,
	}
}

func (d *NotificationDAO) Insert(ctx context.Context, notification Notification) (Notification, error) {
	result := d.db.WithContext(ctx).Create(&notification)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return notification, nil
}

func (d *NotificationDAO) ListByUser(ctx context.Context, userID uint, limit int) ([]Notification, error) {
	var notifications []Notification

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

func (d *NotificationDAO) InsertPartnerRequest(ctx context.Context, request PartnerRequest) (PartnerRequest, error) {
	result := d.db.WithContext(ctx).Create(&request)
	if result.Error != nil {
		return PartnerRequest{}, result.Error
	}

	return request, nil
}
