package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

var (
	ErrThoughtNotFound = dao.ErrThoughtNotFound
	ErrAlreadyLiked    = dao.ErrAlreadyLiked
	ErrNotLiked        = dao.ErrNotLiked
)

type ThoughtDAO interface {
	Insert(ctx context.Context, thought dao.Thought) (dao.Thought, error)
	FindByID(ctx context.Context, id uint) (dao.Thought, error)
	ListRecent(ctx context.Context, limit int) ([]dao.Thought, error)
	FindRecentIDsByAuthor(ctx context.Context, authorID uint, limit int) ([]uint, error)
	UpdateAuthorFields(ctx context.Context, ids []uint, badges []string, gameIdentity string) error
	InsertLike(ctx context.Context, like dao.Like) (dao.Like, error)
	DeleteLike(ctx context.Context, thoughtID, userID uint) error
	CountRecentLikesByUser(ctx context.Context, userID uint, window time.Duration) (int64, error)
}

type FeedRepository struct {
	dao ThoughtDAO
}

func NewFeedRepository(dao ThoughtDAO) *FeedRepository {
	return &FeedRepository{
		dao: dao,
	}
}

func (r *FeedRepository) Create(ctx context.Context, thought domain.Thought) (domain.Thought, error) {
	created, err := r.dao.Insert(ctx, dao.Thought{
		AuthorID:              thought.AuthorID,
		Body:                  thought.Body,
		AuthorDisplayName:     thought.AuthorDisplayName,
		AuthorChallengeBadges: thought.AuthorChallengeBadges,
		AuthorGameIdentity:    thought.AuthorGameIdentity,
	})
	if err != nil {
		return domain.Thought{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FeedRepository) FindByID(ctx context.Context, id uint) (domain.Thought, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Thought{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FeedRepository) ListRecent(ctx context.Context, limit int) ([]domain.Thought, error) {
	found, err := r.dao.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRecent -> %w", err)
	}

	thoughts := make([]domain.Thought, 0, len(found))
	for _, t := range found {
		thoughts = append(thoughts, r.daoToDomain(t))
	}

	return thoughts, nil
}

func (r *FeedRepository) FindRecentIDsByAuthor(ctx context.Context, authorID uint, limit int) ([]uint, error) {
	ids, err := r.dao.FindRecentIDsByAuthor(ctx, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecentIDsByAuthor -> %w", err)
	}

	return ids, nil
}

func (r *FeedRepository) UpdateAuthorFields(ctx context.Context, ids []uint, badges []string, gameIdentity string) error {
	if err := r.dao.UpdateAuthorFields(ctx, ids, badges, gameIdentity); err != nil {
		return fmt.Errorf("r.dao.UpdateAuthorFields -> %w", err)
	}

	return nil
}

func (r *FeedRepository) CreateLike(ctx context.Context, thoughtID, userID uint) (domain.Like, error) {
	created, err := r.dao.InsertLike(ctx, dao.Like{
		ThoughtID: thoughtID,
		UserID:    userID,
	})
	if err != nil {
		return domain.Like{}, fmt.Errorf("r.dao.InsertLike -> %w", err)
	}

	return domain.Like{
		ID:        created.ID,
		ThoughtID: created.ThoughtID,
		UserID:    created.UserID,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *FeedRepository) DeleteLike(ctx context.Context, thoughtID, userID uint) error {
	if err := r.dao.DeleteLike(ctx, thoughtID, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteLike -> %w", err)
	}

	return nil
}

func (r *FeedRepository) CountRecentLikesByUser(ctx context.Context, userID uint, window time.Duration) (int64, error) {
	count, err := r.dao.CountRecentLikesByUser(ctx, userID, window)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountRecentLikesByUser -> %w", err)
	}

	return count, nil
}

func (r *FeedRepository) daoToDomain(t dao.Thought) domain.Thought {
	return domain.Thought{
		ID:                    t.ID,
		AuthorID:              t.AuthorID,
		Body:                  t.Body,
		AuthorDisplayName:     t.AuthorDisplayName,
		AuthorChallengeBadges: t.AuthorChallengeBadges,
		AuthorGameIdentity:    t.AuthorGameIdentity,
		LikeCount:             t.LikeCount,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}
