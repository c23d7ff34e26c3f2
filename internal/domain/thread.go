package domain

import "time"

// MessageThread groups participants of a conversation. ParticipantBadges maps
// a participant's user id to the denormalized copy of their challenge badges.
type MessageThread struct {
	ID                uint              `json:"id"`
	ParticipantIDs    []uint            `json:"participant_ids"`
	ParticipantBadges map[uint][]string `json:"participant_badges"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
