package dao

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type MessageThread struct {
	ID uint `gorm:"primaryKey"`

	ParticipantIDs    []uint            `gorm:"type:jsonb;serializer:json"`
	ParticipantBadges map[uint][]string `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type League struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LeagueMember struct {
	ID       uint `gorm:"primaryKey"`
	LeagueID uint `gorm:"uniqueIndex:uni_league_members_league_user;not null"`
	UserID   uint `gorm:"uniqueIndex:uni_league_members_league_user;index;not null"`

	DisplayName     string
	ChallengeBadges []string `gorm:"type:jsonb;serializer:json"`

	JoinedAt time.Time `gorm:"not null"`
}

type SocialDAO struct {
	db *gorm.DB
}

func NewSocialDAO(db *gorm.DB) *SocialDAO {
	return &SocialDAO{
		db: db,
	}
}

// FindThreadsByParticipant scans every thread whose participant list contains
// the user. Participant counts per thread are small, so no bound is applied.
func (d *SocialDAO) FindThreadsByParticipant(ctx context.Context, userID uint) ([]MessageThread, error) {
	var threads []MessageThread

	result := d.db.WithContext(ctx).
		Where("participant_ids @> ?", jsonbUint(userID)).
		Find(&threads)
	if result.Error != nil {
		return nil, result.Error
	}

	return threads, nil
}

func (d *SocialDAO) UpdateThreadParticipantBadges(ctx context.Context, threadID uint, badges map[uint][]string) error {
	return d.db.WithContext(ctx).
		Model(&MessageThread{}).
		Where("id = ?", threadID).
		Update("participant_badges", badges).Error
}

func (d *SocialDAO) InsertThread(ctx context.Context, thread MessageThread) (MessageThread, error) {
	result := d.db.WithContext(ctx).Create(&thread)
	if result.Error != nil {
		return MessageThread{}, result.Error
	}

	return thread, nil
}

// FindMembershipsByUser is the cross-league lookup the fan-out uses: every
// league member row belonging to the user, across all leagues.
func (d *SocialDAO) FindMembershipsByUser(ctx context.Context, userID uint) ([]LeagueMember, error) {
	var members []LeagueMember

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *SocialDAO) UpdateMemberBadges(ctx context.Context, memberID uint, badges []string) error {
	return d.db.WithContext(ctx).
		Model(&LeagueMember{}).
		Where("id = ?", memberID).
		Update("challenge_badges", badges).Error
}

func (d *SocialDAO) InsertLeague(ctx context.Context, league League) (League, error) {
	result := d.db.WithContext(ctx).Create(&league)
	if result.Error != nil {
		return League{}, result.Error
	}

	return league, nil
}

func (d *SocialDAO) InsertMember(ctx context.Context, member LeagueMember) (LeagueMember, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		return LeagueMember{}, result.Error
	}

	return member, nil
}

// jsonbUint renders a single-element jsonb array for containment queries.
func jsonbUint(id uint) string {
	return "[" + strconv.FormatUint(uint64(id), 10) + "]"
}
