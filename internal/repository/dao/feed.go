package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrThoughtNotFound = errors.New("thought not found")
	ErrAlreadyLiked    = errors.New("thought already liked")
	ErrNotLiked        = errors.New("thought not liked")
)

type Thought struct {
	ID       uint   `gorm:"primaryKey"`
	AuthorID uint   `gorm:"index;not null"`
	Body     string `gorm:"not null"`

	AuthorDisplayName     string
	AuthorChallengeBadges []string `gorm:"type:jsonb;serializer:json"`
	AuthorGameIdentity    string   `gorm:"not null;default:''"`

	LikeCount int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"index;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Like struct {
	ID        uint      `gorm:"primaryKey"`
	ThoughtID uint      `gorm:"uniqueIndex:uni_likes_thought_user;not null"`
	UserID    uint      `gorm:"uniqueIndex:uni_likes_thought_user;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type ThoughtDAO struct {
	db *gorm.DB
}

func NewThoughtDAO(db *gorm.DB) *ThoughtDAO {
	return &ThoughtDAO{
		db: db,
	}
}

func (d *ThoughtDAO) Insert(ctx context.Context, thought Thought) (Thought, error) {
	result := d.db.WithContext(ctx).Create(&thought)
	if result.Error != nil {
		return Thought{}, result.Error
	}

	return thought, nil
}

func (d *ThoughtDAO) FindByID(ctx context.Context, id uint) (Thought, error) {
	var thought Thought

	result := d.db.WithContext(ctx).First(&thought, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Thought{}, ErrThoughtNotFound
		}

		return Thought{}, result.Error
	}

	return thought, nil
}

func (d *ThoughtDAO) ListRecent(ctx context.Context, limit int) ([]Thought, error) {
	var thoughts []Thought

	result := d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&thoughts)
	if result.Error != nil {
		return nil, result.Error
	}

	return thoughts, nil
}

// FindRecentIDsByAuthor returns ids of the author's newest thoughts, capped at
// limit. The cap bounds how far back the fan-out rewrites history.
func (d *ThoughtDAO) FindRecentIDsByAuthor(ctx context.Context, authorID uint, limit int) ([]uint, error) {
	var ids []uint

	result := d.db.WithContext(ctx).
		Model(&Thought{}).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

// UpdateAuthorFields rewrites the denormalized author columns on the given
// thought ids inside a single transaction.
func (d *ThoughtDAO) UpdateAuthorFields(ctx context.Context, ids []uint, badges []string, gameIdentity string) error {
	if len(ids) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&Thought{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"author_challenge_badges": badges,
				"author_game_identity":    gameIdentity,
			}).Error
	})
}

func (d *ThoughtDAO) InsertLike(ctx context.Context, like Like) (Like, error) {
	result := d.db.WithContext(ctx).Create(&like)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Like{}, ErrAlreadyLiked
		}

		return Like{}, result.Error
	}

	if err := d.db.WithContext(ctx).
		Model(&Thought{}).
		Where("id = ?", like.ThoughtID).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
		return Like{}, err
	}

	return like, nil
}

func (d *ThoughtDAO) DeleteLike(ctx context.Context, thoughtID, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("thought_id = ? AND user_id = ?", thoughtID, userID).
		Delete(&Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotLiked
	}

	return d.db.WithContext(ctx).
		Model(&Thought{}).
		Where("id = ? AND like_count > 0", thoughtID).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
}

// CountRecentLikesByUser counts likes the user created inside the window.
// Used by the like rate limiter.
func (d *ThoughtDAO) CountRecentLikesByUser(ctx context.Context, userID uint, window time.Duration) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Like{}).
		Where("user_id = ? AND created_at > ?", userID, time.Now().Add(-window)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
