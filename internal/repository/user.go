package repository

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

var (
	ErrUserEmailExists  = dao.ErrUserEmailExists
	ErrUserNotFound     = dao.ErrUserNotFound
	ErrDisplayNameTaken = dao.ErrDisplayNameTaken
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindByDisplayName(ctx context.Context, displayName string) (dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.UserProfile) (domain.UserProfile, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(user))
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.UserProfile, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByDisplayName(ctx context.Context, displayName string) (domain.UserProfile, error) {
	found, err := r.dao.FindByDisplayName(ctx, displayName)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("r.dao.FindByDisplayName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.UserProfile) (domain.UserProfile, error) {
	daoUser := r.domainToDAO(user)
	daoUser.ID = user.ID
	daoUser.CreatedAt = user.CreatedAt

	updated, err := r.dao.Update(ctx, daoUser)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.UserProfile {
	badges := make([]domain.Badge, 0, len(u.Badges))
	for _, b := range u.Badges {
		badges = append(badges, domain.Badge{
			Type:        domain.BadgeType(b.Type),
			CourseID:    b.CourseID,
			CourseName:  b.CourseName,
			AchievedAt:  b.AchievedAt,
			Score:       b.Score,
			DisplayName: b.DisplayName,
		})
	}

	return domain.UserProfile{
		ID:                      u.ID,
		Email:                   u.Email,
		Password:                u.Password,
		UserType:                domain.UserType(u.UserType),
		DisplayName:             u.DisplayName,
		Handicap:                u.Handicap,
		LockerCompleted:         u.LockerCompleted,
		AcceptedTerms:           u.AcceptedTerms,
		VerificationSubmittedAt: u.VerificationSubmittedAt,
		HasSeenWelcomeTour:      u.HasSeenWelcomeTour,
		ChallengeBadges:         u.ChallengeBadges,
		GameIdentity:            u.GameIdentity,
		Badges:                  badges,
		ExpoPushToken:           u.ExpoPushToken,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}
}

func (r *UserRepository) domainToDAO(u domain.UserProfile) dao.User {
	badges := make([]dao.BadgeRecord, 0, len(u.Badges))
	for _, b := range u.Badges {
		badges = append(badges, dao.BadgeRecord{
			Type:        string(b.Type),
			CourseID:    b.CourseID,
			CourseName:  b.CourseName,
			AchievedAt:  b.AchievedAt,
			Score:       b.Score,
			DisplayName: b.DisplayName,
		})
	}

	return dao.User{
		Email:                   u.Email,
		Password:                u.Password,
		UserType:                string(u.UserType),
		DisplayName:             u.DisplayName,
		Handicap:                u.Handicap,
		LockerCompleted:         u.LockerCompleted,
		AcceptedTerms:           u.AcceptedTerms,
		VerificationSubmittedAt: u.VerificationSubmittedAt,
		HasSeenWelcomeTour:      u.HasSeenWelcomeTour,
		ChallengeBadges:         u.ChallengeBadges,
		GameIdentity:            u.GameIdentity,
		Badges:                  badges,
		ExpoPushToken:           u.ExpoPushToken,
	}
}
