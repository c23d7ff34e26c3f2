package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists  = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrDisplayNameTaken = errors.New("display name already taken")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	UserType    string `gorm:"index"` // "Golfer", "Pro" or "Course"; empty until chosen
	DisplayName string `gorm:"uniqueIndex:uni_users_display_name,where:display_name <> ''"`
	Handicap    *float64

	LockerCompleted         bool `gorm:"not null;default:false"`
	AcceptedTerms           bool `gorm:"not null;default:false"`
	VerificationSubmittedAt *time.Time
	HasSeenWelcomeTour      bool `gorm:"not null;default:false"`

	ChallengeBadges []string      `gorm:"type:jsonb;serializer:json"`
	GameIdentity    string        `gorm:"not null;default:''"`
	Badges          []BadgeRecord `gorm:"type:jsonb;serializer:json"`

	ExpoPushToken string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BadgeRecord is the jsonb shape of one badge on the user row.
type BadgeRecord struct {
	Type        string    `json:"type"`
	CourseID    string    `json:"course_id,omitempty"`
	CourseName  string    `json:"course_name,omitempty"`
	AchievedAt  time.Time `json:"achieved_at"`
	Score       *int      `json:"score,omitempty"`
	DisplayName string    `json:"display_name"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			if strings.Contains(err.Message, `"uni_users_email"`) {
				return User{}, ErrUserEmailExists
			}
			if strings.Contains(err.Message, `"uni_users_display_name"`) {
				return User{}, ErrDisplayNameTaken
			}
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByDisplayName(ctx context.Context, displayName string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "display_name = ?", displayName)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `"uni_users_display_name"`) {
			return User{}, ErrDisplayNameTaken
		}

		return User{}, result.Error
	}

	return user, nil
}
