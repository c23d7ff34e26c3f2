package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Thought{},
		&Like{},
		&MessageThread{},
		&League{},
		&LeagueMember{},
		&Leaderboard{},
		&CourseLeader{},
		&Score{},
		&Notification{},
		&PartnerRequest{},
		&Invitational{},
	)
}
