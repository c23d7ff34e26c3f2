package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInvitationalNotFound = errors.New("invitational not found")

type RosterEntry struct {
	UserID      uint   `json:"user_id,omitempty"`
	DisplayName string `json:"display_name"`
	InviteCode  string `json:"invite_code,omitempty"`
	Ghost       bool   `json:"ghost"`
}

type Invitational struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	HostID uint   `gorm:"index;not null"`
	Status string `gorm:"index;not null;default:'open'"`

	Roster []RosterEntry `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type InvitationalDAO struct {
	db *gorm.DB
}

func NewInvitationalDAO(db *gorm.DB) *InvitationalDAO {
	return &InvitationalDAO{
		db: db,
	}
}

func (d *InvitationalDAO) Insert(ctx context.Context, invitational Invitational) (Invitational, error) {
	result := d.db.WithContext(ctx).Create(&invitational)
	if result.Error != nil {
		return Invitational{}, result.Error
	}

	return invitational, nil
}

func (d *InvitationalDAO) FindByID(ctx context.Context, id uint) (Invitational, error) {
	var invitational Invitational

	result := d.db.WithContext(ctx).First(&invitational, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invitational{}, ErrInvitationalNotFound
		}

		return Invitational{}, result.Error
	}

	return invitational, nil
}

// FindByStatuses returns every invitational in one of the given states. Claim
// lookups scan open and active ones for a matching ghost code.
func (d *InvitationalDAO) FindByStatuses(ctx context.Context, statuses []string) ([]Invitational, error) {
	var invitationals []Invitational

	result := d.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Find(&invitationals)
	if result.Error != nil {
		return nil, result.Error
	}

	return invitationals, nil
}

func (d *InvitationalDAO) UpdateRoster(ctx context.Context, id uint, roster []RosterEntry) error {
	return d.db.WithContext(ctx).
		Model(&Invitational{}).
		Where("id = ?", id).
		Update("roster", roster).Error
}
